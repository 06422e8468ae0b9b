package entity

import (
	"math"

	"github.com/lixenwraith/vault-crawler/audio"
	"github.com/lixenwraith/vault-crawler/constant"
	"github.com/lixenwraith/vault-crawler/physics"
	"github.com/lixenwraith/vault-crawler/vmath"
)

// Player is the user-controlled actor. Its heading and forward are
// written every tick from decoded input; everything else it owns.
type Player struct {
	props physics.Props

	Speed      float64
	ShotPower  float64
	ShootRate  float64
	ShootRange float64

	health    float64
	maxHealth float64
	state     State

	shootTimeout      float64
	damagedCooldown   float64
	animationCooldown float64
	AfterlockCooldown float64

	// Held is the player's active item, at most one.
	Held *Item
}

// NewPlayer creates a player at pos with default stats.
func NewPlayer(pos vmath.Vec2) *Player {
	return &Player{
		props: physics.Props{
			Pos:     pos,
			Scale:   vmath.V(constant.PlayerScale, constant.PlayerScale),
			Forward: vmath.V(0, -1),
		},
		Speed:             constant.PlayerSpeed,
		ShotPower:         constant.PlayerShotDamage,
		ShootRate:         constant.PlayerShootRate,
		ShootRange:        constant.PlayerShootRange,
		health:            constant.PlayerHealth,
		maxHealth:         constant.PlayerHealth,
		AfterlockCooldown: constant.PlayerAfterlockCooldown,
	}
}

func (p *Player) Props() *physics.Props { return &p.props }
func (p *Player) Health() float64       { return p.health }
func (p *Player) MaxHealth() float64    { return p.maxHealth }
func (p *Player) State() State          { return p.state }
func (p *Player) Tag() Tag              { return TagPlayer }

// Update integrates movement and ticks every cooldown down. The
// afterlock window suppresses self-driven motion after spawns and room
// transitions.
func (p *Player) Update(ctx *TickCtx) {
	p.AfterlockCooldown = math.Max(0, p.AfterlockCooldown-ctx.DT)

	if p.AfterlockCooldown == 0 {
		p.props.Lerp(ctx.DT, p.Speed, constant.PlayerLerpDecay, constant.PlayerLerpAccel)
	}
	p.props.Integrate()

	p.shootTimeout = math.Max(0, p.shootTimeout-ctx.DT)
	p.damagedCooldown = math.Max(0, p.damagedCooldown-ctx.DT)
	p.animationCooldown = math.Max(0, p.animationCooldown-ctx.DT)

	if p.Held != nil {
		p.Held.Cooldown = math.Max(0, p.Held.Cooldown-ctx.DT)
	}

	if p.animationCooldown == 0 && p.state != StateDead {
		p.state = StateBase
	}
	if p.health <= 0 && p.state != StateDead {
		ctx.Sounds.Play(audio.CuePlayerDeath)
		p.state = StateDead
	}
}

// Shoot fires a projectile along the forward direction, biased by the
// lateral velocity component so running fire leads the motion. A no-op
// while the shoot timeout has not elapsed.
func (p *Player) Shoot(shots *[]*Shot) bool {
	if p.shootTimeout != 0 {
		return false
	}

	if p.state != StateShoot {
		p.state = StateShoot
		p.animationCooldown = constant.AnimationCooldown / p.ShootRate
	}
	p.shootTimeout = 1 / p.ShootRate

	lateral := vmath.V(math.Abs(p.props.Forward.Y), math.Abs(p.props.Forward.X))
	dir := p.props.Forward.
		Add(p.props.Velocity.ClampLength(0.5).Mul(lateral).Scale(0.5)).
		Normalize()
	if dir.IsZero() {
		// A degenerate heading would spawn a shot that never travels
		// and so never expires.
		dir = vmath.V(0, -1)
	}

	*shots = append(*shots, NewShot(p.props.Pos, dir, p.ShootRange, p.ShotPower, OwnerPlayer))
	return true
}

// Damage applies damage behind the invulnerability window: while the
// damaged cooldown runs, hits are ignored entirely.
func (p *Player) Damage(amount float64) {
	if p.damagedCooldown > 0 {
		return
	}
	p.health -= amount
	p.state = StateDamaged
	p.damagedCooldown = constant.PlayerDamagedCooldown
	p.animationCooldown = constant.AnimationCooldown / p.damagedCooldown
}

// Heal restores health up to the maximum.
func (p *Player) Heal(amount float64) {
	p.health = math.Min(p.health+amount, p.maxHealth)
}

// AtFullHealth reports whether healing would be wasted.
func (p *Player) AtFullHealth() bool { return p.health >= p.maxHealth }

// UseItem triggers the held active item. Returns false with no held
// item or while its cooldown runs.
func (p *Player) UseItem() bool {
	if p.Held == nil {
		return false
	}
	return p.Held.Activate(p)
}

// TakeItem collects a pedestal item: passives apply immediately and
// vanish, actives swap with the currently held one. The previous
// active, if any, is returned so the pedestal can receive it back.
func (p *Player) TakeItem(it *Item) *Item {
	if !it.IsActive() {
		it.ApplyPassive(p)
		return nil
	}
	prev := p.Held
	p.Held = it
	return prev
}

// SetHealth overrides current health, used by tests and cheats.
func (p *Player) SetHealth(h float64) { p.health = h }
