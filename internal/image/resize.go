package image

import (
	"image"

	"github.com/disintegration/imaging"
)

// DefaultMaxDimension is the default bound on the longer side of an image
// before quantisation. Downsampling first keeps clustering cost proportional
// to the palette, not the source resolution.
const DefaultMaxDimension = 128

// Downsample resizes img so its longer side is at most maxDim, preserving
// aspect ratio. Images already within the bound, or a maxDim <= 0, pass
// through untouched.
func Downsample(img image.Image, maxDim int) image.Image {
	if maxDim <= 0 {
		return img
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= maxDim && h <= maxDim {
		return img
	}

	if w >= h {
		return imaging.Resize(img, maxDim, 0, imaging.Lanczos)
	}
	return imaging.Resize(img, 0, maxDim, imaging.Lanczos)
}
