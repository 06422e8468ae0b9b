package enemy

import (
	"math"

	"github.com/lixenwraith/vault-crawler/constant"
	"github.com/lixenwraith/vault-crawler/entity"
	"github.com/lixenwraith/vault-crawler/vmath"
)

// Boss wanders like a slime but is larger, tougher, and periodically
// fires a radial four-shot burst. The burst pattern rotates an eighth
// turn between volleys so standing still is never safe.
type Boss struct {
	base
	speed          float64
	shootRate      float64
	shootRange     float64
	shotPower      float64
	shootTimeout   float64
	rerollCooldown float64
	burstAngle     float64
}

func NewBoss(pos vmath.Vec2) *Boss {
	b := &Boss{
		base:       newBase(pos, constant.BossScale),
		speed:      constant.BossSpeed,
		shootRate:  constant.BossShootRate,
		shootRange: constant.EnemyShootRange,
		shotPower:  constant.EnemyDamage,
	}
	b.health = constant.BossHealth
	return b
}

func (b *Boss) Tag() entity.Tag { return entity.TagBoss }

func (b *Boss) Act(ctx *entity.TickCtx) {
	if b.locked() || b.state == entity.StateDead {
		return
	}
	if b.rerollCooldown <= 0 {
		b.rerollCooldown = constant.WandererRerollMin +
			ctx.Rand.Float64()*(constant.WandererRerollMax-constant.WandererRerollMin)
		heading := wanderHeading(ctx, b.props.Pos)
		b.props.Translation = heading
		b.props.Forward = heading
	}
	if b.shootTimeout > 0 {
		return
	}
	for i := 0; i < 4; i++ {
		angle := b.burstAngle + float64(i)*math.Pi/2
		dir := vmath.V(math.Cos(angle), math.Sin(angle))
		shot := entity.NewShot(b.props.Pos, dir, b.shootRange, b.shotPower, entity.OwnerEnemy)
		*ctx.Shots = append(*ctx.Shots, shot)
	}
	b.burstAngle += math.Pi / 4
	b.shootTimeout = 1 / b.shootRate
	b.state = entity.StateShoot
	b.animationCooldown = constant.AnimationCooldown
}

func (b *Boss) Update(ctx *entity.TickCtx) {
	if b.shootTimeout > 0 {
		b.shootTimeout -= ctx.DT
		if b.shootTimeout < 0 {
			b.shootTimeout = 0
		}
	}
	if b.rerollCooldown > 0 {
		b.rerollCooldown -= ctx.DT
		if b.rerollCooldown < 0 {
			b.rerollCooldown = 0
		}
	}
	if !b.locked() {
		b.props.Lerp(ctx.DT, b.speed, constant.WandererLerpDecay, constant.WandererLerpAccel)
		b.props.Integrate()
	}
	b.tick(ctx)
}
