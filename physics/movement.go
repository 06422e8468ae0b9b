package physics

import (
	"github.com/lixenwraith/vault-crawler/vmath"
)

// VelocityLerp advances velocity toward the heading with smooth
// acceleration and decay. The heading is clamped to unit length, the
// current velocity decays toward zero at `decay` per second and is
// pulled toward the heading at `accel` per second, then the result is
// clamped to maxSpeed. Sub-threshold magnitudes snap to exactly zero so
// a released heading settles instead of drifting forever.
//
// Every moving entity funnels through this: player, enemies, and drops
// knocked around by collisions.
func VelocityLerp(vel, heading vmath.Vec2, dt, maxSpeed, decay, accel float64) vmath.Vec2 {
	heading = heading.ClampLength(1)

	vel = vel.Sub(vel.Scale(dt * decay)).Add(heading.Scale(accel * dt))

	if vel.Length() < 0.01 {
		vel = vmath.Vec2{}
	}
	if maxSpeed > 0 && vel.Length() > maxSpeed {
		vel = vel.ClampLength(maxSpeed)
	}
	return vel
}
