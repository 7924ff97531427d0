package icon

import (
	"image"
	"image/color"
)

// Crab draws the crab silhouette onto dst: body ellipse, stalked eyes,
// clawed arms with pincers, and three legs per side. Geometry follows the
// 128 px reference design scaled by size/128; all fills are opaque.
func Crab(dst *image.NRGBA, size int, fill color.NRGBA) {
	cx, cy := size/2, size/2
	s := float64(size) / 128
	sc := func(v float64) int { return int(v * s) }

	// Body
	bodyW, bodyH := sc(40), sc(28)
	fillEllipse(dst, cx-bodyW, cy-bodyH+sc(5), cx+bodyW, cy+bodyH+sc(5), fill)

	// Eyes on stalks
	eyeY := cy - sc(15)
	eyeSpacing := sc(18)
	eyeR := sc(6)
	stalkW := sc(3)
	for _, side := range []int{-1, 1} {
		ex := cx + side*eyeSpacing
		fillRect(dst, ex-stalkW/2, eyeY, ex+stalkW/2, cy-sc(5), fill)
		fillEllipse(dst, ex-eyeR, eyeY-eyeR, ex+eyeR, eyeY+eyeR, fill)
	}

	// Claws: an ellipse per arm plus two triangular pincers at the tip
	clawY := cy - sc(5)
	clawW, clawH := sc(20), sc(15)
	clawOff := sc(45)

	fillEllipse(dst, cx-clawOff-clawW, clawY-clawH/2, cx-clawOff+clawW/2, clawY+clawH/2, fill)
	tip := cx - clawOff - clawW
	fillTriangle(dst, tip, clawY-sc(5), tip-sc(10), clawY-sc(10), tip, clawY, fill)
	fillTriangle(dst, tip, clawY+sc(5), tip-sc(10), clawY+sc(10), tip, clawY, fill)

	fillEllipse(dst, cx+clawOff-clawW/2, clawY-clawH/2, cx+clawOff+clawW, clawY+clawH/2, fill)
	tip = cx + clawOff + clawW
	fillTriangle(dst, tip, clawY-sc(5), tip+sc(10), clawY-sc(10), tip, clawY, fill)
	fillTriangle(dst, tip, clawY+sc(5), tip+sc(10), clawY+sc(10), tip, clawY, fill)

	// Legs, three per side, angled down and outward
	legStartY := cy + sc(10)
	legSpacing := sc(10)
	legLen := sc(20)
	legW := max(1, sc(4))
	for i := 0; i < 3; i++ {
		y := legStartY + i*legSpacing
		thickLine(dst, cx-sc(35), y, cx-sc(35)-legLen, y+legLen/2, legW, fill)
		thickLine(dst, cx+sc(35), y, cx+sc(35)+legLen, y+legLen/2, legW, fill)
	}
}

func setPx(dst *image.NRGBA, x, y int, c color.NRGBA) {
	if !(image.Point{X: x, Y: y}).In(dst.Bounds()) {
		return
	}
	dst.SetNRGBA(x, y, c)
}

// fillEllipse fills the ellipse inscribed in the inclusive bounding box
// (x0,y0)-(x1,y1).
func fillEllipse(dst *image.NRGBA, x0, y0, x1, y1 int, c color.NRGBA) {
	rx := float64(x1-x0) / 2
	ry := float64(y1-y0) / 2
	if rx <= 0 || ry <= 0 {
		return
	}
	ecx := float64(x0) + rx
	ecy := float64(y0) + ry
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			dx := (float64(x) - ecx) / rx
			dy := (float64(y) - ecy) / ry
			if dx*dx+dy*dy <= 1 {
				setPx(dst, x, y, c)
			}
		}
	}
}

func fillRect(dst *image.NRGBA, x0, y0, x1, y1 int, c color.NRGBA) {
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			setPx(dst, x, y, c)
		}
	}
}

// fillTriangle rasterizes via barycentric coordinates.
func fillTriangle(dst *image.NRGBA, x1, y1, x2, y2, x3, y3 int, c color.NRGBA) {
	d := float64((y2-y3)*(x1-x3) + (x3-x2)*(y1-y3))
	if d == 0 {
		return
	}
	for y := min(y1, y2, y3); y <= max(y1, y2, y3); y++ {
		for x := min(x1, x2, x3); x <= max(x1, x2, x3); x++ {
			a := float64((y2-y3)*(x-x3)+(x3-x2)*(y-y3)) / d
			b := float64((y3-y1)*(x-x3)+(x1-x3)*(y-y3)) / d
			if a >= 0 && b >= 0 && a+b <= 1 {
				setPx(dst, x, y, c)
			}
		}
	}
}

// thickLine draws a Bresenham line stamping a w-wide square at each step.
func thickLine(dst *image.NRGBA, x0, y0, x1, y1, w int, c color.NRGBA) {
	r := w / 2
	dx := abs(x1 - x0)
	dy := abs(y1 - y0)
	sx, sy := -1, -1
	if x0 < x1 {
		sx = 1
	}
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy
	for {
		fillRect(dst, x0-r, y0-r, x0-r+w-1, y0-r+w-1, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
