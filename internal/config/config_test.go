package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("OPENAI_BASE_URL", "")
	t.Setenv("OPENAI_MODEL", "")
	t.Setenv("MAX_FILE_SIZE", "")
	t.Setenv("MAX_CONTEXT_CHARS", "")
	t.Setenv("MAX_DEFECT_CHARS", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "https://api.openai.com/v1", cfg.OpenAI.BaseURL)
	assert.Equal(t, "gpt-4o-mini-2024-07-18", cfg.OpenAI.Model)
	assert.Equal(t, int64(5*1024*1024), cfg.Upload.MaxFileSize)
	assert.Equal(t, 500, cfg.Upload.MaxContextChars)
	assert.Equal(t, 1000, cfg.Upload.MaxDefectChars)
	assert.Contains(t, cfg.Upload.AllowedTypes, "image/jpeg")
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("OPENAI_MODEL", "gpt-4o")
	t.Setenv("MAX_FILE_SIZE", "1048576")
	t.Setenv("MAX_CONTEXT_CHARS", "200")
	t.Setenv("WRITE_TIMEOUT", "45s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "sk-test", cfg.OpenAI.APIKey)
	assert.Equal(t, "gpt-4o", cfg.OpenAI.Model)
	assert.Equal(t, int64(1048576), cfg.Upload.MaxFileSize)
	assert.Equal(t, 200, cfg.Upload.MaxContextChars)
	assert.Equal(t, 45*time.Second, cfg.Server.WriteTimeout)
}

func TestLoadIgnoresUnparsableValues(t *testing.T) {
	t.Setenv("MAX_FILE_SIZE", "plenty")
	t.Setenv("READ_TIMEOUT", "soonish")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, int64(5*1024*1024), cfg.Upload.MaxFileSize)
	assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
}

func TestValidateRequiresAPIKey(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")

	cfg, err := Load()
	require.NoError(t, err)

	err = cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "OPENAI_API_KEY")
}

func TestValidatePassesWithAPIKey(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")

	cfg, err := Load()
	require.NoError(t, err)

	assert.NoError(t, cfg.Validate())
}
