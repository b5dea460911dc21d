package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"home-inspection-assistant/internal/http/handlers"
	"home-inspection-assistant/internal/http/middleware"
)

type Router struct {
	analysisHandler *handlers.AnalysisHandler
	logger          *zap.Logger
}

func NewRouter(
	analysisHandler *handlers.AnalysisHandler,
	logger *zap.Logger,
) *Router {
	return &Router{
		analysisHandler: analysisHandler,
		logger:          logger,
	}
}

func (r *Router) SetupRoutes() *gin.Engine {
	router := gin.New()

	router.Use(middleware.Logger(r.logger))
	router.Use(middleware.ErrorHandler(r.logger))
	router.Use(middleware.CORS())
	router.Use(middleware.SecurityHeaders())

	// API version 1
	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", r.analysisHandler.HealthCheck)

		analysis := v1.Group("/analysis")
		{
			analysis.POST("/image",
				middleware.RequireContentType("multipart/form-data"),
				r.analysisHandler.AnalyzeImage)
			analysis.POST("/defect",
				middleware.RequireContentType("application/json"),
				r.analysisHandler.AnalyzeDefect)
		}
	}

	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{
			"status":  "OK",
			"message": "Home inspection assistant is running",
		})
	})

	return router
}
