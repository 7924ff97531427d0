package icon

import (
	"image"
	"testing"
)

func TestCrabUsesOnlyFillColor(t *testing.T) {
	dst := image.NewNRGBA(image.Rect(0, 0, 128, 128))
	Crab(dst, 128, White)

	zero := 0
	for y := 0; y < 128; y++ {
		for x := 0; x < 128; x++ {
			c := dst.NRGBAAt(x, y)
			if c.A == 0 {
				zero++
				continue
			}
			if c != White {
				t.Fatalf("pixel (%d,%d) = %v, want %v", x, y, c, White)
			}
		}
	}
	if zero == 128*128 {
		t.Fatal("nothing drawn")
	}
}

func TestCrabEyes(t *testing.T) {
	dst := image.NewNRGBA(image.Rect(0, 0, 128, 128))
	Crab(dst, 128, White)

	// Eye centers for the 128 px design: 64±18 horizontally, 64-15 down.
	for _, x := range []int{46, 82} {
		if c := dst.NRGBAAt(x, 49); c != White {
			t.Errorf("eye pixel (%d,49) = %v, want %v", x, c, White)
		}
	}
}

func TestCrabBody(t *testing.T) {
	dst := image.NewNRGBA(image.Rect(0, 0, 128, 128))
	Crab(dst, 128, White)

	// Body ellipse center is shifted 5 px below the canvas center.
	if c := dst.NRGBAAt(64, 69); c != White {
		t.Errorf("body pixel (64,69) = %v, want %v", c, White)
	}
}

func TestCrabSmallestSize(t *testing.T) {
	dst := image.NewNRGBA(image.Rect(0, 0, 16, 16))
	Crab(dst, 16, White)

	drawn := 0
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			if dst.NRGBAAt(x, y).A != 0 {
				drawn++
			}
		}
	}
	if drawn == 0 {
		t.Error("nothing drawn at 16 px")
	}
}

func TestFillTriangleDegenerate(t *testing.T) {
	dst := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	// collinear points must not divide by zero
	fillTriangle(dst, 1, 1, 3, 3, 5, 5, White)
}
