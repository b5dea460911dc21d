package prompt

import (
	"fmt"

	"home-inspection-assistant/internal/models"
)

const (
	// maxResponseTokens caps the model's output length for both request kinds.
	maxResponseTokens = 1000

	imageDataURIFormat = "data:image/jpeg;base64,%s"
)

// BuildImageRequest assembles an image analysis request. Context text is
// bounded by the caller; it is forwarded exactly as given.
func BuildImageRequest(imageBase64, contextText, promptText string) *models.AnalysisRequest {
	return &models.AnalysisRequest{
		Kind:         models.KindImageAnalysis,
		Message:      fmt.Sprintf("%s\n\nContext: %s", promptText, contextText),
		ImageDataURI: fmt.Sprintf(imageDataURIFormat, imageBase64),
		MaxTokens:    maxResponseTokens,
	}
}

// BuildDefectRequest assembles a text-only defect analysis request.
func BuildDefectRequest(defectText, promptText string) *models.AnalysisRequest {
	return &models.AnalysisRequest{
		Kind:      models.KindDefectAnalysis,
		Message:   fmt.Sprintf("%s\n\nDefect Comment: %s", promptText, defectText),
		MaxTokens: maxResponseTokens,
	}
}
