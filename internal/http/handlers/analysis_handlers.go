package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"home-inspection-assistant/internal/config"
	"home-inspection-assistant/internal/models"
	"home-inspection-assistant/internal/services/analyzer"
	"home-inspection-assistant/pkg/utils"
)

const (
	imageParamKey   = "image"
	contextParamKey = "context"
)

type AnalysisHandler struct {
	analyzer *analyzer.AnalyzerService
	logger   *zap.Logger
	config   *config.Config
}

func NewAnalysisHandler(
	analyzer *analyzer.AnalyzerService,
	logger *zap.Logger,
	config *config.Config,
) *AnalysisHandler {
	return &AnalysisHandler{
		analyzer: analyzer,
		logger:   logger,
		config:   config,
	}
}

// === MAIN API ENDPOINTS ===

func (h *AnalysisHandler) AnalyzeImage(c *gin.Context) {
	raw, ok := h.readUploadedImage(c)
	if !ok {
		return
	}

	contextText := utils.TruncateRunes(c.PostForm(contextParamKey), h.config.Upload.MaxContextChars)

	result := h.analyzer.AnalyzeImage(c.Request.Context(), raw, contextText)
	h.respondResult(c, models.KindImageAnalysis, result)
}

func (h *AnalysisHandler) AnalyzeDefect(c *gin.Context) {
	var req models.DefectAnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if strings.TrimSpace(req.DefectText) == "" {
		h.respondError(c, http.StatusBadRequest, "Please enter a defect description to analyze.")
		return
	}

	defectText := utils.TruncateRunes(req.DefectText, h.config.Upload.MaxDefectChars)

	result := h.analyzer.AnalyzeDefect(c.Request.Context(), defectText)
	h.respondResult(c, models.KindDefectAnalysis, result)
}

// HealthCheck
func (h *AnalysisHandler) HealthCheck(c *gin.Context) {
	services := h.analyzer.Health()
	overall := h.calculateOverallHealth(services)

	statusCode := http.StatusOK
	if overall == "unhealthy" {
		statusCode = http.StatusServiceUnavailable
	}

	c.JSON(statusCode, models.APIResponse{
		Success: overall == "healthy",
		Data: models.HealthCheck{
			Status:    overall,
			Timestamp: time.Now(),
			Services:  services,
		},
	})
}
