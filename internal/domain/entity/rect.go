package entity

// Rect is an axis-aligned rectangle in world units.
// X, Y is the top-left corner; y grows downward.
type Rect struct {
	X, Y float64
	W, H float64
}

// Point is a world coordinate.
type Point struct {
	X, Y float64
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// CenterX returns the horizontal center.
func (r Rect) CenterX() float64 {
	return r.X + r.W/2
}

// Offset returns the rectangle translated by dx, dy.
func (r Rect) Offset(dx, dy float64) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W, H: r.H}
}

// ExtendDown returns the rectangle grown downward by d units.
// Used as a support probe so a body resting exactly on a surface still
// registers contact with it.
func (r Rect) ExtendDown(d float64) Rect {
	return Rect{X: r.X, Y: r.Y, W: r.W, H: r.H + d}
}

// Overlaps reports whether a and b intersect on both axes.
// Shared edges do not count: intervals are open.
func Overlaps(a, b Rect) bool {
	return a.X < b.X+b.W && a.X+a.W > b.X && a.Y < b.Y+b.H && a.Y+a.H > b.Y
}
