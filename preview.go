package mirrorsvg

import (
	"image"
	"math"

	"github.com/disintegration/imaging"
	"github.com/esimov/mirrorsvg/utils"
	"github.com/pkg/errors"
)

// Default preview box, in pixels.
const (
	PreviewWidth  = 200
	PreviewHeight = 200
)

// Preview loads the image found at path and scales it down, retaining the
// aspect ratio, until it fits into a maxW x maxH box. Images already fitting
// into the box are returned at their original size.
// The preview is meant for display only and never feeds the conversion.
func Preview(path string, maxW, maxH int) (*image.NRGBA, error) {
	if maxW <= 0 || maxH <= 0 {
		return nil, errors.Errorf("invalid preview size %dx%d", maxW, maxH)
	}
	src, err := Load(path)
	if err != nil {
		return nil, err
	}
	return thumbnail(src.Pix, maxW, maxH), nil
}

func thumbnail(img image.Image, maxW, maxH int) *image.NRGBA {
	width, height := img.Bounds().Dx(), img.Bounds().Dy()

	ratio := utils.Min(
		float64(maxW)/float64(width),
		float64(maxH)/float64(height),
	)
	if ratio >= 1 {
		return imaging.Clone(img)
	}

	newWidth := utils.Max(1, int(math.Round(float64(width)*ratio)))
	newHeight := utils.Max(1, int(math.Round(float64(height)*ratio)))

	return imaging.Resize(img, newWidth, newHeight, imaging.Lanczos)
}
