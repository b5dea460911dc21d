package processor

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
)

// encodeJPEG compresses at a fixed quality to bound the payload size
// regardless of the input format.
func (p *ImageProcessor) encodeJPEG(img image.Image) ([]byte, error) {
	buffer := &bytes.Buffer{}
	if err := jpeg.Encode(buffer, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}
	return buffer.Bytes(), nil
}
