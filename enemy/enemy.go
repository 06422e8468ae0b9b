// Package enemy implements the hostile actor archetypes that populate
// mob and boss rooms: stationary turrets, direct chasers, drifting
// wanderers, and the boss. Each archetype splits its per-tick work into
// Act, which decides intent from the surrounding state, and Update,
// which applies movement and lifecycle bookkeeping.
package enemy

import (
	"github.com/lixenwraith/vault-crawler/audio"
	"github.com/lixenwraith/vault-crawler/constant"
	"github.com/lixenwraith/vault-crawler/entity"
	"github.com/lixenwraith/vault-crawler/physics"
	"github.com/lixenwraith/vault-crawler/vmath"
)

// Enemy is an Actor with a decision phase and a touch-damage amount
// applied when its bounding circle overlaps the player's.
type Enemy interface {
	entity.Actor
	Act(ctx *entity.TickCtx)
	TouchDamage() float64
}

// base carries the state shared by every archetype.
type base struct {
	props             physics.Props
	health            float64
	touchDamage       float64
	state             entity.State
	animationCooldown float64
	afterlockCooldown float64
}

func newBase(pos vmath.Vec2, scale float64) base {
	return base{
		props: physics.Props{
			Pos:   pos,
			Scale: vmath.V(scale, scale),
		},
		health:            constant.EnemyHealth,
		touchDamage:       constant.EnemyDamage,
		state:             entity.StateBase,
		afterlockCooldown: constant.EnemyAfterlockCooldown,
	}
}

func (b *base) Props() *physics.Props { return &b.props }
func (b *base) Health() float64       { return b.health }
func (b *base) State() entity.State   { return b.state }
func (b *base) TouchDamage() float64  { return b.touchDamage }

// Damage reduces health immediately. Unlike the player, enemies have no
// post-hit invulnerability window.
func (b *base) Damage(amount float64) {
	if b.state == entity.StateDead {
		return
	}
	b.health -= amount
	b.state = entity.StateDamaged
	b.animationCooldown = constant.AnimationCooldown
}

// tick advances the shared timers and lifecycle transitions. Returns
// true once the enemy has just died so the caller can play the cue.
func (b *base) tick(ctx *entity.TickCtx) {
	if b.afterlockCooldown > 0 {
		b.afterlockCooldown -= ctx.DT
		if b.afterlockCooldown < 0 {
			b.afterlockCooldown = 0
		}
	}
	if b.animationCooldown > 0 {
		b.animationCooldown -= ctx.DT
		if b.animationCooldown <= 0 {
			b.animationCooldown = 0
			if b.state != entity.StateDead {
				b.state = entity.StateBase
			}
		}
	}
	if b.health <= 0 && b.state != entity.StateDead {
		b.state = entity.StateDead
		ctx.Sounds.Play(audio.CueEnemyDeath)
	}
}

// locked reports whether the room-entry afterlock still suppresses
// acting and moving.
func (b *base) locked() bool { return b.afterlockCooldown > 0 }
