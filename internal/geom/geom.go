// Package geom provides the value types the docking layout is computed in:
// points, sizes, and rectangles in terminal cell units, plus the split
// direction enum. Pure data; no rendering and no mutation beyond copies.
package geom

// Point is a position in cell coordinates.
type Point struct {
	X, Y int
}

// Size is a width/height pair in cells.
type Size struct {
	W, H int
}

// Rect is an axis-aligned rectangle in cell coordinates.
type Rect struct {
	X, Y, W, H int
}

// Empty reports whether the rectangle has no visible extent.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Contains reports whether p lies inside the rectangle.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Intersects reports whether r and o share at least one cell.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.X+o.W && r.X+r.W > o.X && r.Y < o.Y+o.H && r.Y+r.H > o.Y
}

// Center returns the middle cell of the rectangle.
func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// SplitH divides r into a left part of width leftW and a right part,
// leaving a gap of the given width between them. Widths are clamped so
// neither part extends outside r.
func (r Rect) SplitH(leftW, gap int) (left, right Rect) {
	if leftW < 0 {
		leftW = 0
	}
	if leftW > r.W {
		leftW = r.W
	}
	left = Rect{X: r.X, Y: r.Y, W: leftW, H: r.H}
	rx := r.X + leftW + gap
	right = Rect{X: rx, Y: r.Y, W: r.X + r.W - rx, H: r.H}
	if right.W < 0 {
		right.W = 0
	}
	return left, right
}

// SplitV divides r into a top part of height topH and a bottom part,
// leaving a gap of the given height between them.
func (r Rect) SplitV(topH, gap int) (top, bottom Rect) {
	if topH < 0 {
		topH = 0
	}
	if topH > r.H {
		topH = r.H
	}
	top = Rect{X: r.X, Y: r.Y, W: r.W, H: topH}
	by := r.Y + topH + gap
	bottom = Rect{X: r.X, Y: by, W: r.W, H: r.Y + r.H - by}
	if bottom.H < 0 {
		bottom.H = 0
	}
	return top, bottom
}

// CutTop removes n rows from the top of r and returns the band and the rest.
func (r Rect) CutTop(n int) (band, rest Rect) {
	if n < 0 {
		n = 0
	}
	if n > r.H {
		n = r.H
	}
	band = Rect{X: r.X, Y: r.Y, W: r.W, H: n}
	rest = Rect{X: r.X, Y: r.Y + n, W: r.W, H: r.H - n}
	return band, rest
}

// Shrink insets the rectangle by n cells on every side.
func (r Rect) Shrink(n int) Rect {
	out := Rect{X: r.X + n, Y: r.Y + n, W: r.W - 2*n, H: r.H - 2*n}
	if out.W < 0 {
		out.W = 0
	}
	if out.H < 0 {
		out.H = 0
	}
	return out
}

// Direction says which axis a split divides.
// Horizontal places children left/right (the divider is a vertical bar);
// Vertical places them top/bottom.
type Direction uint8

const (
	Horizontal Direction = iota
	Vertical
)

func (d Direction) String() string {
	switch d {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		return "unknown"
	}
}
