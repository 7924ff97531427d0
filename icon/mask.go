package icon

import (
	"image"
	"image/color"
)

// Mask returns the rounded-rectangle alpha mask for an icon of the given
// size: 255 inside, 0 in the clipped corners. The corner radius is size/5.
func Mask(size int) *image.Alpha {
	m := image.NewAlpha(image.Rect(0, 0, size, size))
	r := size / 5
	// Corner circle centers sit r pixels inside the [0,size-1] box.
	lo, hi := r, size-1-r
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			// Clamp to the inner rect; straight edges clamp to distance 0.
			cx, cy := x, y
			if cx < lo {
				cx = lo
			} else if cx > hi {
				cx = hi
			}
			if cy < lo {
				cy = lo
			} else if cy > hi {
				cy = hi
			}
			dx, dy := x-cx, y-cy
			if dx*dx+dy*dy <= r*r {
				m.SetAlpha(x, y, color.Alpha{A: 255})
			}
		}
	}
	return m
}

// applyMask replaces the alpha channel of img with the mask values.
func applyMask(img *image.NRGBA, m *image.Alpha) {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			img.Pix[img.PixOffset(x, y)+3] = m.AlphaAt(x, y).A
		}
	}
}
