package enemy

import (
	"github.com/lixenwraith/vault-crawler/constant"
	"github.com/lixenwraith/vault-crawler/entity"
	"github.com/lixenwraith/vault-crawler/navigation"
	"github.com/lixenwraith/vault-crawler/vmath"
)

// BlueGuy is the chaser archetype: it heads straight for the player
// when it can see them, and otherwise climbs the room's distance field
// toward the player's last known tile.
type BlueGuy struct {
	base
	speed float64
}

func NewBlueGuy(pos vmath.Vec2) *BlueGuy {
	return &BlueGuy{
		base:  newBase(pos, constant.EnemyScale),
		speed: constant.EnemySpeed,
	}
}

func (g *BlueGuy) Tag() entity.Tag { return entity.TagChaser }

func (g *BlueGuy) Act(ctx *entity.TickCtx) {
	if g.locked() || g.state == entity.StateDead {
		return
	}
	if entity.HasLineOfSight(g.props.Pos, ctx.PlayerPos, ctx.Obstacles) {
		g.props.Translation = ctx.PlayerPos.Sub(g.props.Pos).Normalize()
		g.props.Forward = g.props.Translation
		return
	}
	g.props.Translation = vmath.Vec2{}
	if ctx.Field == nil {
		return
	}
	row, col := navigation.TileOf(g.props.Pos, ctx.ScreenW, ctx.ScreenH)
	if !navigation.InBounds(row, col) {
		return
	}
	nr, nc, ok := navigation.UphillStep(ctx.Field, row, col)
	if !ok {
		return
	}
	target := navigation.TileCenter(nr, nc, ctx.ScreenW, ctx.ScreenH)
	g.props.Translation = target.Sub(g.props.Pos).Normalize()
	g.props.Forward = g.props.Translation
}

func (g *BlueGuy) Update(ctx *entity.TickCtx) {
	if !g.locked() {
		g.props.Lerp(ctx.DT, g.speed, constant.ChaserLerpDecay, constant.ChaserLerpAccel)
		g.props.Integrate()
	}
	g.tick(ctx)
}
