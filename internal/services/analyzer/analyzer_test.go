package analyzer

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/jpeg"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"home-inspection-assistant/internal/config"
	"home-inspection-assistant/internal/models"
	"home-inspection-assistant/internal/services/inference"
	"home-inspection-assistant/internal/services/processor"
)

const completionBody = `{"id":"chatcmpl-test","object":"chat.completion","created":1700000000,"model":"gpt-4o-mini-2024-07-18","choices":[{"index":0,"message":{"role":"assistant","content":"Deteriorated shingles with granule loss."},"finish_reason":"stop"}]}`

func newTestService(t *testing.T, handler http.HandlerFunc) *AnalyzerService {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := inference.NewClient(config.OpenAIConfig{
		APIKey:  "test-key",
		BaseURL: server.URL + "/v1",
		Model:   "gpt-4o-mini-2024-07-18",
	}, zap.NewNop())
	require.NoError(t, err)

	return NewAnalyzerService(processor.NewImageProcessor(), client, zap.NewNop())
}

func smallJPEG(t *testing.T) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 64, 48))
	for y := 0; y < 48; y++ {
		for x := 0; x < 64; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 4), G: uint8(y * 5), B: 90, A: 255})
		}
	}

	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, img, &jpeg.Options{Quality: 90}))
	return buf.Bytes()
}

func TestAnalyzeImageSuccess(t *testing.T) {
	service := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(completionBody))
	})

	result := service.AnalyzeImage(context.Background(), smallJPEG(t), "two-story roof, south slope")

	require.True(t, result.OK())
	assert.Equal(t, "Deteriorated shingles with granule loss.", result.Text)
}

func TestAnalyzeImageDecodeFailureSkipsInference(t *testing.T) {
	var calls int32

	service := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(completionBody))
	})

	result := service.AnalyzeImage(context.Background(), []byte("definitely not an image"), "")

	require.False(t, result.OK())
	assert.Equal(t, models.FailureImageDecode, result.Failure.Kind)
	assert.Contains(t, result.Failure.Reason, "failed to decode image")
	assert.Equal(t, int32(0), atomic.LoadInt32(&calls))
}

func TestAnalyzeDefectSuccess(t *testing.T) {
	service := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(completionBody))
	})

	result := service.AnalyzeDefect(context.Background(), "GFCI outlet not tripping in garage")

	require.True(t, result.OK())
	assert.NotEmpty(t, result.Text)
}

func TestHealthReportsInference(t *testing.T) {
	service := newTestService(t, func(w http.ResponseWriter, r *http.Request) {})

	health := service.Health()
	assert.Equal(t, "healthy", health["inference"])
}
