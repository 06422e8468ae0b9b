package physics

import (
	"testing"

	"github.com/lixenwraith/vault-crawler/vmath"
)

const dt = 1.0 / 60

func TestVelocityLerpConvergesToMaxSpeed(t *testing.T) {
	vel := vmath.Vec2{}
	heading := vmath.V(1, 0)

	for i := 0; i < 10000; i++ {
		vel = VelocityLerp(vel, heading, dt, 3.5, 10, 50)
	}
	if vel.Length() != 3.5 {
		t.Errorf("Expected speed to converge to 3.5, got %v", vel.Length())
	}
	if vel.Y != 0 {
		t.Errorf("Expected motion along heading only, got Y %v", vel.Y)
	}
}

func TestVelocityLerpConvergesToZero(t *testing.T) {
	vel := vmath.V(5, -2)

	for i := 0; i < 10000; i++ {
		vel = VelocityLerp(vel, vmath.Vec2{}, dt, 3.5, 10, 50)
	}
	if !vel.IsZero() {
		t.Errorf("Expected velocity to snap to zero, got (%v,%v)", vel.X, vel.Y)
	}
}

func TestVelocityLerpClampsHeading(t *testing.T) {
	// An over-length heading must not accelerate faster than a unit one.
	a := VelocityLerp(vmath.Vec2{}, vmath.V(10, 0), dt, 0, 10, 50)
	b := VelocityLerp(vmath.Vec2{}, vmath.V(1, 0), dt, 0, 10, 50)
	if a != b {
		t.Errorf("Expected clamped heading to match unit heading, got (%v,%v) vs (%v,%v)", a.X, a.Y, b.X, b.Y)
	}
}

func TestPropsIntegrate(t *testing.T) {
	p := Props{Pos: vmath.V(1, 2), Velocity: vmath.V(3, -1)}
	p.Integrate()
	if p.Pos.X != 4 || p.Pos.Y != 1 {
		t.Errorf("Expected position (4,1), got (%v,%v)", p.Pos.X, p.Pos.Y)
	}
}

func TestPushOut(t *testing.T) {
	p := Props{Pos: vmath.V(100, 100), Scale: vmath.V(1, 1)}
	// A rect slightly overlapping the body's circle from the right.
	target := vmath.Rect{X: 110, Y: 80, W: 40, H: 40}

	if !PushOut(&p, target, 800, 600) {
		t.Fatal("Expected overlap to be corrected")
	}
	if p.Pos.X >= 100 {
		t.Errorf("Expected push away from rect, position X %v", p.Pos.X)
	}

	far := Props{Pos: vmath.V(10, 10), Scale: vmath.V(1, 1)}
	if PushOut(&far, target, 800, 600) {
		t.Error("Expected no correction for distant body")
	}
}
