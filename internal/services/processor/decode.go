package processor

import (
	"bytes"
	"fmt"
	"image"

	// Decoders accepted for uploaded photos.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// DecodeError marks an upload that could not be read as a raster image.
type DecodeError struct {
	Cause error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode image: %v", e.Cause)
}

func (e *DecodeError) Unwrap() error {
	return e.Cause
}

func (p *ImageProcessor) decodeImage(raw []byte) (image.Image, string, error) {
	img, format, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, "", &DecodeError{Cause: err}
	}
	return img, format, nil
}
