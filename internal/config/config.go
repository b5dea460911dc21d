package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server ServerConfig
	OpenAI OpenAIConfig
	Upload UploadConfig
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type OpenAIConfig struct {
	APIKey  string
	BaseURL string
	Model   string
}

type UploadConfig struct {
	MaxFileSize     int64
	AllowedTypes    []string
	MaxContextChars int
	MaxDefectChars  int
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:        getEnv("PORT", "8080"),
			ReadTimeout: getDuration("READ_TIMEOUT", 30*time.Second),
			// Generous write timeout: a response cannot be written until the
			// synchronous inference call has returned.
			WriteTimeout: getDuration("WRITE_TIMEOUT", 120*time.Second),
		},
		OpenAI: OpenAIConfig{
			APIKey:  getEnv("OPENAI_API_KEY", ""),
			BaseURL: getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1"),
			Model:   getEnv("OPENAI_MODEL", "gpt-4o-mini-2024-07-18"),
		},
		Upload: UploadConfig{
			MaxFileSize:     getEnvAsInt64("MAX_FILE_SIZE", 5*1024*1024), // 5MB
			AllowedTypes:    []string{"image/jpeg", "image/png", "image/webp"},
			MaxContextChars: getEnvAsInt("MAX_CONTEXT_CHARS", 500),
			MaxDefectChars:  getEnvAsInt("MAX_DEFECT_CHARS", 1000),
		},
	}

	return cfg, nil
}

// Validate reports configuration the server cannot start without.
func (c *Config) Validate() error {
	if c.OpenAI.APIKey == "" {
		return fmt.Errorf("OPENAI_API_KEY is required")
	}
	return nil
}

func getEnv(key, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultVal
}

func getEnvAsInt64(key string, defaultVal int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intVal
		}
	}
	return defaultVal
}

func getDuration(key string, defaultVal time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultVal
}
