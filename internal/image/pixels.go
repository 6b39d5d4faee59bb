package image

import (
	"image"
	"image/color"
)

// Pixels flattens an image into an interleaved R,G,B,A byte buffer with
// straight (non-premultiplied) alpha, the format the quantiser consumes.
// Pixels are emitted row by row, top-left to bottom-right.
func Pixels(img image.Image) []byte {
	bounds := img.Bounds()
	buf := make([]byte, 0, bounds.Dx()*bounds.Dy()*4)

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			buf = append(buf, c.R, c.G, c.B, c.A)
		}
	}

	return buf
}
