package handlers

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"home-inspection-assistant/internal/models"
	"home-inspection-assistant/pkg/utils"
)

// === REQUEST PARSING ===

// readUploadedImage enforces the upload constraints (presence, size cap,
// allowed content types) before any image work happens. On failure the error
// response has already been written.
func (h *AnalysisHandler) readUploadedImage(c *gin.Context) ([]byte, bool) {
	file, header, err := c.Request.FormFile(imageParamKey)
	if err != nil {
		h.respondError(c, http.StatusBadRequest, "No image file provided")
		return nil, false
	}
	defer file.Close()

	maxSize := h.config.Upload.MaxFileSize
	if header.Size > maxSize {
		h.respondError(c, http.StatusBadRequest, fmt.Sprintf(
			"The uploaded image exceeds the %dMB size limit. Please upload a smaller image.",
			maxSize/(1024*1024),
		))
		return nil, false
	}

	raw, err := io.ReadAll(file)
	if err != nil {
		h.logger.Error("Failed to read uploaded file", zap.Error(err))
		h.respondError(c, http.StatusInternalServerError, "Failed to read uploaded file")
		return nil, false
	}

	contentType := http.DetectContentType(raw)
	if !utils.IsAllowedImageType(contentType, h.config.Upload.AllowedTypes) {
		h.respondError(c, http.StatusBadRequest, fmt.Sprintf("Unsupported image type: %s", contentType))
		return nil, false
	}

	return raw, true
}

// === RESPONSE HANDLING ===

func (h *AnalysisHandler) respondError(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, models.APIResponse{
		Success: false,
		Error:   message,
	})
}

// respondResult renders an analysis result; failure reasons are surfaced to
// the caller as-is.
func (h *AnalysisHandler) respondResult(c *gin.Context, kind models.RequestKind, result models.AnalysisResult) {
	if !result.OK() {
		statusCode := http.StatusBadGateway
		if result.Failure.Kind == models.FailureImageDecode {
			statusCode = http.StatusBadRequest
		}
		h.respondError(c, statusCode, result.Failure.Reason)
		return
	}

	c.JSON(http.StatusOK, models.APIResponse{
		Success: true,
		Data: models.AnalysisData{
			ID:         uuid.New().String(),
			Kind:       kind,
			Analysis:   result.Text,
			AnalyzedAt: time.Now(),
		},
	})
}

// === UTILITY METHODS ===

func (h *AnalysisHandler) calculateOverallHealth(services map[string]string) string {
	for _, status := range services {
		if status != "healthy" && status != "not configured" {
			return "unhealthy"
		}
	}
	return "healthy"
}
