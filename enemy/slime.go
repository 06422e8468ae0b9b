package enemy

import (
	"github.com/lixenwraith/vault-crawler/constant"
	"github.com/lixenwraith/vault-crawler/entity"
	"github.com/lixenwraith/vault-crawler/navigation"
	"github.com/lixenwraith/vault-crawler/vmath"
)

// Slime is the wanderer archetype: it drifts along cardinal headings,
// re-rolling its direction every couple of seconds. When the room
// tracks the player with a distance field the re-roll is biased toward
// the neighbor tile closest to the player.
type Slime struct {
	base
	speed          float64
	rerollCooldown float64
}

func NewSlime(pos vmath.Vec2) *Slime {
	return &Slime{
		base:  newBase(pos, constant.EnemyScale),
		speed: constant.EnemySpeed,
	}
}

func (s *Slime) Tag() entity.Tag { return entity.TagWanderer }

var cardinalHeadings = [4]vmath.Vec2{
	{X: 0, Y: -1},
	{X: -1, Y: 0},
	{X: 1, Y: 0},
	{X: 0, Y: 1},
}

// wanderHeading rolls a random cardinal heading. When a distance field
// tracks the player, the roll is overridden by the uphill neighbor so
// the wanderer drifts toward its target.
func wanderHeading(ctx *entity.TickCtx, pos vmath.Vec2) vmath.Vec2 {
	heading := cardinalHeadings[ctx.Rand.Intn(len(cardinalHeadings))]
	if ctx.Field != nil {
		if row, col := navigation.TileOf(pos, ctx.ScreenW, ctx.ScreenH); navigation.InBounds(row, col) {
			if nr, nc, ok := navigation.UphillStep(ctx.Field, row, col); ok {
				target := navigation.TileCenter(nr, nc, ctx.ScreenW, ctx.ScreenH)
				heading = target.Sub(pos).Normalize()
			}
		}
	}
	return heading
}

func (s *Slime) Act(ctx *entity.TickCtx) {
	if s.locked() || s.state == entity.StateDead {
		return
	}
	if s.rerollCooldown > 0 {
		return
	}
	s.rerollCooldown = constant.WandererRerollMin +
		ctx.Rand.Float64()*(constant.WandererRerollMax-constant.WandererRerollMin)

	heading := wanderHeading(ctx, s.props.Pos)
	s.props.Translation = heading
	s.props.Forward = heading
}

func (s *Slime) Update(ctx *entity.TickCtx) {
	if s.rerollCooldown > 0 {
		s.rerollCooldown -= ctx.DT
		if s.rerollCooldown < 0 {
			s.rerollCooldown = 0
		}
	}
	if !s.locked() {
		s.props.Lerp(ctx.DT, s.speed, constant.WandererLerpDecay, constant.WandererLerpAccel)
		s.props.Integrate()
	}
	s.tick(ctx)
}
