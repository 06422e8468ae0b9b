package entity

import (
	"math"
	"math/rand"

	"github.com/lixenwraith/vault-crawler/audio"
	"github.com/lixenwraith/vault-crawler/constant"
	"github.com/lixenwraith/vault-crawler/physics"
	"github.com/lixenwraith/vault-crawler/vmath"
)

// CollectableKind discriminates drop effects.
type CollectableKind uint8

const (
	CollectRedHeart CollectableKind = iota
	CollectSpeedBoost
	CollectShootRateBoost
	CollectDamageBoost
)

// CollectableState tracks consumption. Consumed drops are inert and
// pruned at the end of the room tick.
type CollectableState uint8

const (
	CollectableBase CollectableState = iota
	CollectableConsumed
)

// Collectable is a floor drop. It settles toward rest after being
// knocked around and applies a one-shot stat effect on pickup.
type Collectable struct {
	props  physics.Props
	Kind   CollectableKind
	Amount float64
	state  CollectableState
}

// NewCollectable creates a drop of the given kind at pos.
func NewCollectable(pos vmath.Vec2, kind CollectableKind, amount float64) *Collectable {
	return &Collectable{
		props: physics.Props{
			Pos:   pos,
			Scale: vmath.V(constant.CollectableScale, constant.CollectableScale),
		},
		Kind:   kind,
		Amount: amount,
	}
}

// RandomCollectable rolls a clear-reward drop: hearts half the time,
// the stat boosts splitting the rest.
func RandomCollectable(pos vmath.Vec2, rng *rand.Rand) *Collectable {
	switch rng.Intn(6) {
	case 0, 1, 2:
		return NewCollectable(pos, CollectRedHeart, 1)
	case 3:
		return NewCollectable(pos, CollectSpeedBoost, 1.1)
	case 4:
		return NewCollectable(pos, CollectShootRateBoost, 1.1)
	default:
		return NewCollectable(pos, CollectDamageBoost, 1.1)
	}
}

func (c *Collectable) Props() *physics.Props    { return &c.props }
func (c *Collectable) Health() float64          { return 0 }
func (c *Collectable) Damage(float64)           {}
func (c *Collectable) Tag() Tag                 { return TagCollectable }
func (c *Collectable) Consumed() bool           { return c.state == CollectableConsumed }
func (c *Collectable) State() State {
	if c.state == CollectableConsumed {
		return StateDead
	}
	return StateBase
}

// Update settles the drop toward rest; it has no heading of its own, so
// the lerp just decays whatever knockback velocity it carries.
func (c *Collectable) Update(ctx *TickCtx) {
	c.props.Lerp(ctx.DT, 0, constant.DropLerpDecay, constant.DropLerpAccel)
	c.props.Integrate()
}

// Apply attempts the drop's effect on the player. Hearts fail at full
// health (the caller falls back to a physical push-apart); boosts apply
// up to their stat caps. Applying a consumed drop is a no-op.
func (c *Collectable) Apply(p *Player, snd audio.Sink) bool {
	if c.state == CollectableConsumed {
		return false
	}

	applied := false
	switch c.Kind {
	case CollectRedHeart:
		if !p.AtFullHealth() {
			p.Heal(c.Amount)
			applied = true
		}
	case CollectSpeedBoost:
		p.Speed = math.Min(p.Speed*c.Amount, constant.PlayerMaxSpeed)
		applied = true
	case CollectShootRateBoost:
		p.ShootRate = math.Min(p.ShootRate*c.Amount, constant.PlayerMaxShootRate)
		applied = true
	case CollectDamageBoost:
		p.ShotPower = math.Min(p.ShotPower*c.Amount, constant.PlayerMaxDamage)
		applied = true
	}

	if applied {
		if c.Kind == CollectRedHeart {
			snd.Play(audio.CueHeal)
		} else {
			snd.Play(audio.CuePowerUp)
		}
		c.state = CollectableConsumed
	}
	return applied
}
