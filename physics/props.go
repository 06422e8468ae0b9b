package physics

import (
	"github.com/lixenwraith/vault-crawler/constant"
	"github.com/lixenwraith/vault-crawler/vmath"
)

// Props is the kinetic state every game object embeds: where it is, how
// big it draws, where it wants to go (Translation), where it last faced
// (Forward, drives sprite selection and shot direction), and how fast
// it is actually moving.
type Props struct {
	Pos         vmath.Vec2
	Scale       vmath.Vec2
	Translation vmath.Vec2
	Forward     vmath.Vec2
	Velocity    vmath.Vec2
}

// BBox returns the world-space bounding box. Extent derives from the
// room tile size scaled by the entity's Scale, centered on Pos.
func (p *Props) BBox(sw, sh float64) vmath.Rect {
	w := sw / constant.RoomWidth * p.Scale.X
	h := sh / constant.RoomHeight * p.Scale.Y
	return vmath.Rect{X: p.Pos.X - w/2, Y: p.Pos.Y - h/2, W: w, H: h}
}

// BCircle returns the bounding circle: centered on Pos, radius half the
// larger bounding box extent.
func (p *Props) BCircle(sw, sh float64) vmath.Circle {
	w := sw / constant.RoomWidth * p.Scale.X
	h := sh / constant.RoomHeight * p.Scale.Y
	r := w
	if h > r {
		r = h
	}
	return vmath.Circle{C: p.Pos, R: r / 2}
}

// Lerp runs the shared velocity lerp against the current heading.
func (p *Props) Lerp(dt, maxSpeed, decay, accel float64) {
	p.Velocity = VelocityLerp(p.Velocity, p.Translation, dt, maxSpeed, decay, accel)
}

// Integrate advances position by the current per-tick velocity.
func (p *Props) Integrate() {
	p.Pos = p.Pos.Add(p.Velocity)
}
