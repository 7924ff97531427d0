package icon

import (
	"bytes"
	"image/color"
	"testing"
)

func TestRenderDimensions(t *testing.T) {
	for _, size := range append(append([]int{}, Sizes...), LogoSize) {
		img := Render(size)
		b := img.Bounds()
		if b.Dx() != size || b.Dy() != size {
			t.Errorf("Render(%d) bounds = %v", size, b)
		}
	}
}

func TestRenderDeterministic(t *testing.T) {
	a := Render(48)
	b := Render(48)
	if !bytes.Equal(a.Pix, b.Pix) {
		t.Error("two renders at the same size differ")
	}
}

func TestRenderCornerAlpha(t *testing.T) {
	img := Render(128)

	// Top corners keep only the highlight band's alpha (80 at row 0).
	if a := img.NRGBAAt(0, 0).A; a != 80 {
		t.Errorf("top-left alpha = %d, want 80", a)
	}
	if a := img.NRGBAAt(127, 0).A; a != 80 {
		t.Errorf("top-right alpha = %d, want 80", a)
	}

	// Bottom corners are outside both mask and highlight band.
	if a := img.NRGBAAt(0, 127).A; a != 0 {
		t.Errorf("bottom-left alpha = %d, want 0", a)
	}
	if a := img.NRGBAAt(127, 127).A; a != 0 {
		t.Errorf("bottom-right alpha = %d, want 0", a)
	}
}

func TestRenderCenterIsBody(t *testing.T) {
	img := Render(128)
	want := color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	if c := img.NRGBAAt(64, 64); c != want {
		t.Errorf("center = %v, want %v", c, want)
	}
}

func TestHighlightBand(t *testing.T) {
	h := highlight(128)

	if a := h.NRGBAAt(64, 0).A; a != 80 {
		t.Errorf("row 0 alpha = %d, want 80", a)
	}
	// Band covers rows 0..size/3-1 and fades to zero.
	if a := h.NRGBAAt(64, 41).A; a == 0 || a >= 80 {
		t.Errorf("row 41 alpha = %d, want in (0,80)", a)
	}
	if a := h.NRGBAAt(64, 42).A; a != 0 {
		t.Errorf("row 42 alpha = %d, want 0", a)
	}
}

func TestOverComposite(t *testing.T) {
	base := Gradient(4, BlueLight, BlueLight)
	src := highlight(4) // rows 0 only: 4/3 = 1

	out := overComposite(base, src)
	if out.NRGBAAt(0, 3) != BlueLight {
		t.Errorf("uncovered pixel changed: %v", out.NRGBAAt(0, 3))
	}
	c := out.NRGBAAt(0, 0)
	if c.A != 255 {
		t.Errorf("composited alpha = %d, want 255", c.A)
	}
	if c.R <= BlueLight.R {
		t.Errorf("highlight did not lighten: R = %d", c.R)
	}
}
