package vmath

// Rect is an axis-aligned rectangle: top-left corner plus size.
type Rect struct {
	X, Y, W, H float64
}

func R(x, y, w, h float64) Rect { return Rect{X: x, Y: y, W: w, H: h} }

// Center returns the rectangle midpoint.
func (r Rect) Center() Vec2 { return Vec2{r.X + r.W/2, r.Y + r.H/2} }

// Contains reports whether p lies inside the rectangle.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Overlaps reports whether the two rectangles intersect.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.W && r.X+r.W > o.X && r.Y < o.Y+o.H && r.Y+r.H > o.Y
}

// Circle is a center point plus radius.
type Circle struct {
	C Vec2
	R float64
}

// Overlaps reports whether the two circles intersect.
func (c Circle) Overlaps(o Circle) bool {
	return c.C.Distance(o.C) < c.R+o.R
}
