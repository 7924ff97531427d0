package icon

import (
	"image"
	"image/color"
)

// Gradient returns a size×size image whose rows interpolate linearly from
// c1 at the top to c2 at the bottom. Rows are fully opaque.
func Gradient(size int, c1, c2 color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		c := lerp(c1, c2, float64(y)/float64(size))
		for x := 0; x < size; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func lerp(c1, c2 color.NRGBA, t float64) color.NRGBA {
	return color.NRGBA{
		R: uint8(float64(c1.R)*(1-t) + float64(c2.R)*t),
		G: uint8(float64(c1.G)*(1-t) + float64(c2.G)*t),
		B: uint8(float64(c1.B)*(1-t) + float64(c2.B)*t),
		A: 255,
	}
}

// highlight returns the white band that fades out over the top third of
// the icon. Alpha starts at 80 on the first row.
func highlight(size int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	band := size / 3
	for y := 0; y < band; y++ {
		a := uint8(80 * (1 - float64(y)/float64(band)))
		for x := 0; x < size; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: 255, G: 255, B: 255, A: a})
		}
	}
	return img
}
