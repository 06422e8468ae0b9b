// Package entity defines the shared actor model: the capability
// interface every live game object implements, the state machine they
// all share, and the concrete player/shot/collectable types.
package entity

import (
	"math/rand"

	"github.com/lixenwraith/vault-crawler/audio"
	"github.com/lixenwraith/vault-crawler/physics"
	"github.com/lixenwraith/vault-crawler/vmath"
)

// State is the shared animation/lifecycle state. Shoot and Damaged are
// transient and revert to Base when the animation cooldown elapses;
// Dead is terminal and triggers removal at the next prune.
type State uint8

const (
	StateBase State = iota
	StateShoot
	StateDead
	StateDamaged
)

func (s State) String() string {
	switch s {
	case StateBase:
		return "Base"
	case StateShoot:
		return "Shoot"
	case StateDead:
		return "Dead"
	case StateDamaged:
		return "Damaged"
	}
	return "Unknown"
}

// Tag identifies an actor's behavior family.
type Tag uint8

const (
	TagPlayer Tag = iota
	TagShooter
	TagChaser
	TagWanderer
	TagBoss
	TagShot
	TagCollectable
)

// TickCtx carries everything an actor may consult during one update:
// the fixed timestep, world dimensions, the sound sink, a seeded RNG,
// the player's position, obstacle bounding boxes for line-of-sight
// tests, the distance field toward the player, and the room's shot
// list for actors that fire.
type TickCtx struct {
	DT        float64
	ScreenW   float64
	ScreenH   float64
	Sounds    audio.Sink
	Rand      *rand.Rand
	PlayerPos vmath.Vec2
	Obstacles []vmath.Rect
	Field     [][]int
	Shots     *[]*Shot
}

// Actor is the capability interface shared by the player, every enemy
// variant, shots, and collectables.
type Actor interface {
	Props() *physics.Props
	Update(ctx *TickCtx)
	Health() float64
	Damage(amount float64)
	State() State
	Tag() Tag
}

// HasLineOfSight reports whether the segment from -> to crosses no
// obstacle box. A raycast hit with t < 1 means something sits between
// the two points.
func HasLineOfSight(from, to vmath.Vec2, obstacles []vmath.Rect) bool {
	dir := to.Sub(from)
	for _, box := range obstacles {
		if hit, ok := vmath.RayVsRect(from, dir, box); ok && hit.T < 1 {
			return false
		}
	}
	return true
}
