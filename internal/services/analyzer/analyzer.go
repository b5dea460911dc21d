package analyzer

import (
	"context"

	"go.uber.org/zap"

	"home-inspection-assistant/internal/models"
	"home-inspection-assistant/internal/services/inference"
	"home-inspection-assistant/internal/services/processor"
	"home-inspection-assistant/internal/services/prompt"
)

// AnalyzerService runs one analysis per user action: normalize the input,
// build the request, send it. All failures come back as result values.
type AnalyzerService struct {
	processor *processor.ImageProcessor
	client    *inference.Client
	logger    *zap.Logger
}

func NewAnalyzerService(
	processor *processor.ImageProcessor,
	client *inference.Client,
	logger *zap.Logger,
) *AnalyzerService {
	return &AnalyzerService{
		processor: processor,
		client:    client,
		logger:    logger,
	}
}

// AnalyzeImage normalizes an uploaded photo, pairs it with the optional
// context text and asks the model for a condition analysis.
func (s *AnalyzerService) AnalyzeImage(ctx context.Context, raw []byte, contextText string) models.AnalysisResult {
	normalized, err := s.processor.Normalize(raw)
	if err != nil {
		s.logger.Warn("Image normalization failed", zap.Error(err))
		return models.Failed(models.FailureImageDecode, err.Error())
	}

	s.logger.Info("Image normalized",
		zap.Int("width", normalized.Width),
		zap.Int("height", normalized.Height),
		zap.String("source_format", normalized.SourceFormat),
		zap.Int64("encoded_bytes", normalized.EncodedSize),
	)

	request := prompt.BuildImageRequest(normalized.Base64, contextText, prompt.ImageAnalysisPrompt)
	return s.client.Send(ctx, request)
}

// AnalyzeDefect asks the model for a detailed breakdown of a written
// defect comment.
func (s *AnalyzerService) AnalyzeDefect(ctx context.Context, defectText string) models.AnalysisResult {
	request := prompt.BuildDefectRequest(defectText, prompt.DefectAnalysisPrompt)
	return s.client.Send(ctx, request)
}

// Health reports per-dependency status for the health endpoint.
func (s *AnalyzerService) Health() map[string]string {
	return map[string]string{
		"inference": s.client.Health(),
	}
}
