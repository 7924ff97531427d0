package icon

import "image"

// Sizes is the extension icon set; LogoSize is the standalone square logo.
var Sizes = []int{16, 48, 128}

const LogoSize = 256

// Render produces the finished mark at the given size: gradient background,
// rounded-corner mask, crab silhouette, then the highlight band composited
// on top. Pure and deterministic: same size, same pixels.
func Render(size int) *image.NRGBA {
	img := Gradient(size, BlueLight, BlueDark)
	applyMask(img, Mask(size))
	Crab(img, size, White)
	return overComposite(img, highlight(size))
}

// overComposite alpha-composites src over base into a new image
// (Porter-Duff over on non-premultiplied channels).
func overComposite(base, src *image.NRGBA) *image.NRGBA {
	b := base.Bounds()
	out := image.NewNRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			bi := base.PixOffset(x, y)
			si := src.PixOffset(x, y)
			oi := out.PixOffset(x, y)
			sa := int(src.Pix[si+3])
			ba := int(base.Pix[bi+3])
			oa := sa + ba*(255-sa)/255
			out.Pix[oi+3] = uint8(oa)
			if oa == 0 {
				continue
			}
			for ch := 0; ch < 3; ch++ {
				sc := int(src.Pix[si+ch])
				bc := int(base.Pix[bi+ch])
				out.Pix[oi+ch] = uint8((sc*sa + bc*ba*(255-sa)/255) / oa)
			}
		}
	}
	return out
}
