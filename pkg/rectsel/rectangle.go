package rectsel

import (
	"fmt"
)

type Point struct {
	X int
	Y int
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Rectangle is a region of the root surface; Width and Height are never negative.
type Rectangle struct {
	X      int
	Y      int
	Width  uint
	Height uint
}

// NormalizeRectangle returns the rectangle spanned by two corners given in
// any order.
func NormalizeRectangle(anchor, current Point) Rectangle {
	x, w := normalizeAxis(anchor.X, current.X)
	y, h := normalizeAxis(anchor.Y, current.Y)
	return Rectangle{
		X:      x,
		Y:      y,
		Width:  w,
		Height: h,
	}
}

func normalizeAxis(anchor, current int) (int, uint) {
	if current > anchor {
		return anchor, uint(current - anchor)
	}
	return current, uint(anchor - current)
}

func (r Rectangle) String() string {
	return fmt.Sprintf("%dx%d+%d+%d", r.Width, r.Height, r.X, r.Y)
}
