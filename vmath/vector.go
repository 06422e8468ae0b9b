package vmath

import "math"

// Vec2 is a 2D float64 vector. Screen space: x grows right, y grows down.
type Vec2 struct {
	X, Y float64
}

func V(x, y float64) Vec2 { return Vec2{X: x, Y: y} }

func (v Vec2) Add(o Vec2) Vec2      { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2      { return Vec2{v.X - o.X, v.Y - o.Y} }
func (v Vec2) Mul(o Vec2) Vec2      { return Vec2{v.X * o.X, v.Y * o.Y} }
func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }
func (v Vec2) Neg() Vec2            { return Vec2{-v.X, -v.Y} }
func (v Vec2) Abs() Vec2            { return Vec2{math.Abs(v.X), math.Abs(v.Y)} }

func (v Vec2) Dot(o Vec2) float64 { return v.X*o.X + v.Y*o.Y }

func (v Vec2) Length() float64   { return math.Hypot(v.X, v.Y) }
func (v Vec2) LengthSq() float64 { return v.X*v.X + v.Y*v.Y }

func (v Vec2) Distance(o Vec2) float64 { return v.Sub(o).Length() }

// Perpendicular returns the vector rotated 90° counter-clockwise.
func (v Vec2) Perpendicular() Vec2 { return Vec2{-v.Y, v.X} }

// Normalize returns the unit vector, or zero for a zero vector.
func (v Vec2) Normalize() Vec2 {
	mag := v.Length()
	if mag == 0 {
		return Vec2{}
	}
	return Vec2{v.X / mag, v.Y / mag}
}

// ClampLength limits the vector magnitude to maxLen while preserving
// direction. Zero and already-short vectors pass through unchanged.
func (v Vec2) ClampLength(maxLen float64) Vec2 {
	mag := v.Length()
	if mag <= maxLen || mag == 0 {
		return v
	}
	return v.Scale(maxLen / mag)
}

// IsZero reports whether both components are exactly zero.
func (v Vec2) IsZero() bool { return v.X == 0 && v.Y == 0 }
