package physics

import (
	"github.com/lixenwraith/vault-crawler/vmath"
)

// ResolvePairCollision separates two overlapping bodies and exchanges
// momentum between them: symmetric positional correction (half the
// penetration each) followed by the elastic velocity response with
// radius-derived masses.
func ResolvePairCollision(a, b *Props, sw, sh float64) {
	if displace, ok := vmath.StaticCircleVsCircle(a.BCircle(sw, sh), b.BCircle(sw, sh)); ok {
		a.Pos = a.Pos.Sub(displace)
		b.Pos = b.Pos.Add(displace)
	}

	if r1, r2, ok := vmath.DynamicCircleVsCircle(a.BCircle(sw, sh), a.Velocity, b.BCircle(sw, sh), b.Velocity); ok {
		a.Velocity = a.Velocity.Add(r1)
		b.Velocity = b.Velocity.Sub(r2)
	}
}

// PushOut moves a body out of a penetrated rect along the contact
// normal by the penetration depth. Reports whether a correction was
// applied.
func PushOut(p *Props, target vmath.Rect, sw, sh float64) bool {
	hit, ok := vmath.DynamicCircleVsRect(p.BCircle(sw, sh), target)
	if !ok {
		return false
	}
	p.Pos = p.Pos.Add(hit.Normal.Scale(hit.Penetration))
	return true
}
