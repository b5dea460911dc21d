package processor

import (
	"image"

	"github.com/disintegration/imaging"
)

// fitWithinBounds scales the image down so neither dimension exceeds
// maxWidth x maxHeight, preserving aspect ratio. Images already within
// bounds are returned unchanged; nothing is ever upscaled.
func (p *ImageProcessor) fitWithinBounds(img image.Image) image.Image {
	bounds := img.Bounds()
	if bounds.Dx() <= maxWidth && bounds.Dy() <= maxHeight {
		return img
	}
	return imaging.Fit(img, maxWidth, maxHeight, imaging.Lanczos)
}
