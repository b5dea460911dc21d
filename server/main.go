package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"home-inspection-assistant/internal/config"
	"home-inspection-assistant/internal/http/handlers"
	"home-inspection-assistant/internal/http/routes"
	"home-inspection-assistant/internal/services/analyzer"
	"home-inspection-assistant/internal/services/inference"
	"home-inspection-assistant/internal/services/processor"
)

func main() {
	// Initialize logger
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}
	defer logger.Sync()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatal("Invalid configuration", zap.Error(err))
	}

	// Initialize services
	imageProcessor := processor.NewImageProcessor()

	client, err := inference.NewClient(cfg.OpenAI, logger)
	if err != nil {
		logger.Fatal("Failed to initialize inference client", zap.Error(err))
	}

	analyzerService := analyzer.NewAnalyzerService(imageProcessor, client, logger)

	// Initialize handlers
	analysisHandler := handlers.NewAnalysisHandler(analyzerService, logger, cfg)

	router := routes.NewRouter(analysisHandler, logger)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		Handler:      router.SetupRoutes(),
	}

	// Start server
	go func() {
		logger.Info("Starting server",
			zap.String("addr", server.Addr),
			zap.String("model", cfg.OpenAI.Model),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}
