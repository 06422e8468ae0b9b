package entity

import (
	"github.com/lixenwraith/vault-crawler/constant"
	"github.com/lixenwraith/vault-crawler/physics"
	"github.com/lixenwraith/vault-crawler/vmath"
)

// ShotOwner discriminates projectile provenance for collision dispatch.
type ShotOwner uint8

const (
	OwnerPlayer ShotOwner = iota
	OwnerEnemy
)

// Shot is an in-flight projectile. It lives in its room's shot list and
// despawns when its travel distance exceeds Range or it hits something.
type Shot struct {
	props    physics.Props
	SpawnPos vmath.Vec2
	Speed    float64
	Range    float64
	Power    float64
	Owner    ShotOwner
}

// NewShot spawns a projectile at pos heading along dir (unit length).
func NewShot(pos, dir vmath.Vec2, shotRange, power float64, owner ShotOwner) *Shot {
	return &Shot{
		props: physics.Props{
			Pos:         pos,
			Scale:       vmath.V(constant.ShotScale, constant.ShotScale),
			Translation: dir,
			Forward:     dir,
		},
		SpawnPos: pos,
		Speed:    constant.ShotSpeed,
		Range:    shotRange,
		Power:    power,
		Owner:    owner,
	}
}

func (s *Shot) Props() *physics.Props { return &s.props }

// Update accelerates the shot along its heading up to its max speed and
// advances it.
func (s *Shot) Update(ctx *TickCtx) {
	s.props.Velocity = s.props.Velocity.
		Add(s.props.Translation.Scale(constant.ShotAccel * ctx.DT)).
		ClampLength(s.Speed)
	s.props.Integrate()
}

// Travelled returns the distance covered since spawn.
func (s *Shot) Travelled() float64 {
	return s.props.Pos.Distance(s.SpawnPos)
}

// Expired reports whether the shot has exceeded its range.
func (s *Shot) Expired() bool {
	return s.Travelled() >= s.Range
}

func (s *Shot) Health() float64 { return 0 }
func (s *Shot) Damage(float64)  {}
func (s *Shot) State() State    { return StateBase }
func (s *Shot) Tag() Tag        { return TagShot }
