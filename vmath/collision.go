package vmath

import "math"

// RayHit describes a ray/rect intersection.
type RayHit struct {
	Contact Vec2
	Normal  Vec2
	T       float64 // Parametric distance along the ray to the near hit
}

// CircleHit describes a circle/rect penetration.
type CircleHit struct {
	Contact     Vec2 // Nearest point on the rect to the circle center
	Normal      Vec2 // Unit vector from the nearest point toward the circle center
	Penetration float64
}

// RayVsRect performs a slab intersection test of a ray against a rect.
// The normal is ±X when the X-slab entry is the later one, else ±Y.
//
// A direction component of exactly zero with the origin outside that
// axis slab yields NaN intermediates (0 * ±Inf); those report no hit.
// This is inherited behavior and deliberately kept: an axis-aligned ray
// can miss a rect it geometrically crosses unless the other slab still
// resolves the test.
func RayVsRect(origin, dir Vec2, target Rect) (RayHit, bool) {
	var hit RayHit

	nearX := (target.X - origin.X) / dir.X
	nearY := (target.Y - origin.Y) / dir.Y
	farX := (target.X + target.W - origin.X) / dir.X
	farY := (target.Y + target.H - origin.Y) / dir.Y

	if math.IsNaN(nearX) || math.IsNaN(nearY) || math.IsNaN(farX) || math.IsNaN(farY) {
		return hit, false
	}

	if nearX > farX {
		nearX, farX = farX, nearX
	}
	if nearY > farY {
		nearY, farY = farY, nearY
	}

	if nearX > farY || nearY > farX {
		return hit, false
	}

	hit.T = math.Max(nearX, nearY)
	tFar := math.Min(farX, farY)

	if tFar < 0 {
		return hit, false
	}

	hit.Contact = origin.Add(dir.Scale(hit.T))

	if nearX > nearY {
		if dir.X < 0 {
			hit.Normal = Vec2{1, 0}
		} else {
			hit.Normal = Vec2{-1, 0}
		}
	} else if nearX < nearY {
		if dir.Y < 0 {
			hit.Normal = Vec2{0, 1}
		} else {
			hit.Normal = Vec2{0, -1}
		}
	}

	return hit, true
}

// DynamicRectVsRect sweeps a moving rect against a stationary one over
// a single tick. The stationary rect is expanded by half the mover's
// extents and the mover's center is raycast along its velocity; the hit
// is only valid within the tick, t in [0,1].
func DynamicRectVsRect(source Rect, vel Vec2, target Rect, dt float64) (RayHit, bool) {
	if vel.X == 0 && vel.Y == 0 {
		return RayHit{}, false
	}

	expanded := Rect{
		X: target.X - source.W/2,
		Y: target.Y - source.H/2,
		W: target.W + source.W,
		H: target.H + source.H,
	}

	origin := Vec2{source.X + source.W/2, source.Y + source.H/2}
	hit, ok := RayVsRect(origin, vel.Scale(dt), expanded)
	if !ok || hit.T < 0 || hit.T > 1 {
		return RayHit{}, false
	}
	return hit, true
}

// DynamicCircleVsRect tests a circle against a stationary rect by
// clamping the circle center to the rect bounds. Penetration is
// radius minus the distance to that nearest point; a hit requires
// positive penetration. NaN penetration is treated as no hit.
func DynamicCircleVsRect(c Circle, target Rect) (CircleHit, bool) {
	var hit CircleHit

	hit.Contact = Vec2{
		X: math.Max(target.X, math.Min(target.X+target.W, c.C.X)),
		Y: math.Max(target.Y, math.Min(target.Y+target.H, c.C.Y)),
	}

	delta := c.C.Sub(hit.Contact)
	hit.Penetration = c.R - delta.Length()

	if math.IsNaN(hit.Penetration) {
		hit.Penetration = 0
	}
	if hit.Penetration <= 0 {
		return hit, false
	}

	hit.Normal = delta.Normalize()
	return hit, true
}

// StaticCircleVsCircle computes a symmetric positional correction for
// two overlapping circles: half the penetration depth along the
// center-to-center axis. Apply with opposite signs — subtract from c1,
// add to c2.
func StaticCircleVsCircle(c1, c2 Circle) (Vec2, bool) {
	if !c1.Overlaps(c2) {
		return Vec2{}, false
	}

	distance := c1.C.Distance(c2.C)
	overlap := 0.5 * (distance - c1.R - c2.R)
	return c1.C.Sub(c2.C).Normalize().Scale(overlap), true
}

// DynamicCircleVsCircle computes an elastic collision response for two
// overlapping circles. Mass derives from radius (r * 100). Velocities
// decompose into tangent/normal components against the center-to-center
// axis; the 1-D elastic formula applies along the normal, tangential
// components pass through. Apply the responses as the environment
// resolver does: add r1 to the first body, subtract r2 from the second.
func DynamicCircleVsCircle(c1 Circle, v1 Vec2, c2 Circle, v2 Vec2) (r1, r2 Vec2, ok bool) {
	if !c1.Overlaps(c2) {
		return Vec2{}, Vec2{}, false
	}

	m1 := c1.R * 100
	m2 := c2.R * 100

	norm := c1.C.Sub(c2.C).Normalize()
	tan := Vec2{-norm.Y, norm.X}

	dpTan1 := v1.Dot(tan)
	dpTan2 := v2.Dot(tan)
	dpNorm1 := v1.Dot(norm)
	dpNorm2 := v2.Dot(norm)

	e1 := (dpNorm1*(m1-m2) + 2*m2*dpNorm2) / (m1 + m2)
	e2 := (dpNorm2*(m2-m1) + 2*m1*dpNorm1) / (m1 + m2)

	r1 = tan.Scale(dpTan1).Add(norm.Scale(e1))
	r2 = tan.Scale(dpTan2).Add(norm.Scale(e2))
	return r1, r2, true
}
