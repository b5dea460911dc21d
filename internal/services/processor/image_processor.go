package processor

import (
	"encoding/base64"

	"home-inspection-assistant/internal/models"
)

const (
	maxWidth    = 800
	maxHeight   = 800
	jpegQuality = 70
)

type ImageProcessor struct{}

func NewImageProcessor() *ImageProcessor {
	return &ImageProcessor{}
}

// Normalize decodes an uploaded image, bounds its dimensions without
// upscaling, re-encodes it as JPEG and returns the transport-ready payload.
func (p *ImageProcessor) Normalize(raw []byte) (*models.NormalizedImage, error) {
	// Decode image
	img, format, err := p.decodeImage(raw)
	if err != nil {
		return nil, err
	}

	// Bound dimensions
	resized := p.fitWithinBounds(img)

	// Encode to compressed JPEG
	encoded, err := p.encodeJPEG(resized)
	if err != nil {
		return nil, err
	}

	bounds := resized.Bounds()

	return &models.NormalizedImage{
		Base64:       base64.StdEncoding.EncodeToString(encoded),
		Width:        bounds.Dx(),
		Height:       bounds.Dy(),
		SourceFormat: format,
		EncodedSize:  int64(len(encoded)),
	}, nil
}
