package enemy

import (
	"github.com/lixenwraith/vault-crawler/constant"
	"github.com/lixenwraith/vault-crawler/entity"
	"github.com/lixenwraith/vault-crawler/vmath"
)

// Mask is the stationary turret archetype. It never moves on its own
// but turns to face the player and fires when the player is inside a
// fraction of its shot range with a clear line of sight.
type Mask struct {
	base
	shootRate    float64
	shootRange   float64
	shotPower    float64
	shootTimeout float64
}

func NewMask(pos vmath.Vec2) *Mask {
	return &Mask{
		base:       newBase(pos, constant.EnemyScale),
		shootRate:  constant.EnemyShootRate,
		shootRange: constant.EnemyShootRange,
		shotPower:  constant.EnemyDamage,
	}
}

func (m *Mask) Tag() entity.Tag { return entity.TagShooter }

func (m *Mask) Act(ctx *entity.TickCtx) {
	if m.locked() || m.state == entity.StateDead {
		return
	}
	toPlayer := ctx.PlayerPos.Sub(m.props.Pos)
	if toPlayer.Length() > m.shootRange*constant.ShooterRangeFactor {
		return
	}
	if !entity.HasLineOfSight(m.props.Pos, ctx.PlayerPos, ctx.Obstacles) {
		return
	}
	m.props.Forward = toPlayer.Normalize()
	if m.shootTimeout > 0 {
		return
	}
	shot := entity.NewShot(m.props.Pos, m.props.Forward, m.shootRange, m.shotPower, entity.OwnerEnemy)
	*ctx.Shots = append(*ctx.Shots, shot)
	m.shootTimeout = 1 / m.shootRate
	m.state = entity.StateShoot
	m.animationCooldown = constant.AnimationCooldown
}

func (m *Mask) Update(ctx *entity.TickCtx) {
	if m.shootTimeout > 0 {
		m.shootTimeout -= ctx.DT
		if m.shootTimeout < 0 {
			m.shootTimeout = 0
		}
	}
	// No self-propulsion; the lerp only bleeds off knockback velocity.
	if !m.locked() {
		m.props.Lerp(ctx.DT, 0, constant.ShooterLerpDecay, constant.ShooterLerpAccel)
		m.props.Integrate()
	}
	m.tick(ctx)
}
