package icon

import "testing"

func TestGradientTopRowIsLight(t *testing.T) {
	img := Gradient(128, BlueLight, BlueDark)
	for x := 0; x < 128; x++ {
		if c := img.NRGBAAt(x, 0); c != BlueLight {
			t.Fatalf("pixel (%d,0) = %v, want %v", x, c, BlueLight)
		}
	}
}

func TestGradientBottomRowNearDark(t *testing.T) {
	img := Gradient(128, BlueLight, BlueDark)
	c := img.NRGBAAt(64, 127)
	// last row sits one interpolation step short of the end color
	if diff(c.R, BlueDark.R) > 2 || diff(c.G, BlueDark.G) > 2 || diff(c.B, BlueDark.B) > 2 {
		t.Errorf("bottom row = %v, want within 2 of %v", c, BlueDark)
	}
}

func TestGradientMonotone(t *testing.T) {
	img := Gradient(48, BlueLight, BlueDark)
	prev := img.NRGBAAt(0, 0)
	for y := 1; y < 48; y++ {
		c := img.NRGBAAt(0, y)
		if c.R > prev.R || c.G > prev.G || c.B > prev.B {
			t.Fatalf("row %d = %v brighter than row %d = %v", y, c, y-1, prev)
		}
		prev = c
	}
}

func TestGradientOpaque(t *testing.T) {
	img := Gradient(16, BlueLight, BlueDark)
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			if a := img.NRGBAAt(x, y).A; a != 255 {
				t.Fatalf("pixel (%d,%d) alpha = %d, want 255", x, y, a)
			}
		}
	}
}

func diff(a, b uint8) uint8 {
	if a > b {
		return a - b
	}
	return b - a
}
