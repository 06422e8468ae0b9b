// Package scene holds the game states and the fixed-order simulation
// driver that advances the active dungeon level each tick.
package scene

import (
	"math/rand"

	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/vault-crawler/audio"
	"github.com/lixenwraith/vault-crawler/constant"
	"github.com/lixenwraith/vault-crawler/dungeon"
	"github.com/lixenwraith/vault-crawler/entity"
	"github.com/lixenwraith/vault-crawler/input"
	"github.com/lixenwraith/vault-crawler/physics"
	"github.com/lixenwraith/vault-crawler/vmath"
)

// Outcome signals the director what the play scene wants next.
type Outcome int

const (
	OutcomeContinue Outcome = iota
	OutcomeDead
)

// Play drives the live game: one dungeon level, one player, one
// current room. All per-tick mutation of the room's actor lists
// happens inside Update, in a fixed stage order.
type Play struct {
	sw, sh float64
	rng    *rand.Rand
	sounds audio.Sink

	Dungeon *dungeon.Dungeon
	Current dungeon.GridCoords
	Player  *entity.Player
}

// NewPlay generates the level-1 dungeon and places the player at the
// start room's center.
func NewPlay(sw, sh float64, rng *rand.Rand, sounds audio.Sink) (*Play, error) {
	d, err := dungeon.Generate(1, sw, sh, rng)
	if err != nil {
		return nil, err
	}
	return &Play{
		sw:      sw,
		sh:      sh,
		rng:     rng,
		sounds:  sounds,
		Dungeon: d,
		Current: dungeon.StartCoords,
		Player:  entity.NewPlayer(vmath.V(sw/2, sh/2)),
	}, nil
}

// Room returns the room the player is currently in.
func (p *Play) Room() *dungeon.Room {
	r, err := p.Dungeon.RoomAt(p.Current)
	if err != nil {
		// The current coordinate always holds a room; a miss means a
		// transition bug, so skip the tick rather than crash.
		logrus.WithError(err).Error("current room lookup failed")
		return nil
	}
	return r
}

// Update advances one tick. Stage order matters: each stage assumes
// the previous stage's positions are final.
func (p *Play) Update(in input.Intent) (Outcome, error) {
	room := p.Room()
	if room == nil {
		return OutcomeContinue, nil
	}
	ctx := &entity.TickCtx{
		DT:        constant.DeltaTime,
		ScreenW:   p.sw,
		ScreenH:   p.sh,
		Sounds:    p.sounds,
		Rand:      p.rng,
		PlayerPos: p.Player.Props().Pos,
	}

	// 1. Input.
	p.Player.Props().Translation = in.Move
	if !in.Move.IsZero() {
		p.Player.Props().Forward = in.Move
	}
	if in.Shoot {
		p.Player.Shoot(&room.Shots)
	}
	if in.UseItem {
		p.Player.UseItem()
	}

	// 2. Blocks.
	next, err := p.resolveBlocks(room)
	if err != nil {
		return OutcomeContinue, err
	}
	if next {
		// Room or level changed; the rest of the tick runs in the new
		// room next frame.
		return OutcomeContinue, nil
	}

	// 3. Body overlaps.
	p.resolveBodies(room)

	// 4. Shots.
	p.resolveShots(room)

	// 5. Fog of war.
	p.Dungeon.UpdateRoomsState(p.Current)

	// 6. Room tick.
	ctx.PlayerPos = p.Player.Props().Pos
	room.Update(ctx, p.Player)

	// 7. Player tick.
	p.Player.Update(ctx)

	// 8. Death.
	if p.Player.Health() <= 0 {
		return OutcomeDead, nil
	}
	return OutcomeContinue, nil
}

// resolveBlocks runs every actor against the room's obstacles and
// dispatches by obstacle kind. Returns true when the player left the
// room through a door or hatch.
func (p *Play) resolveBlocks(room *dungeon.Room) (bool, error) {
	props := p.Player.Props()
	for _, o := range room.Obstacles {
		box := o.BBox(p.sw, p.sh)
		switch o.Kind {
		case dungeon.KindDoor:
			if o.Open {
				// Swept test: entering requires motion toward the
				// door, so the zeroed post-transition velocity cannot
				// bounce the player straight back.
				if _, hit := vmath.DynamicRectVsRect(props.BBox(p.sw, p.sh), props.Velocity, box, 1); hit {
					p.transitionThroughDoor(o)
					return true, nil
				}
			} else {
				physics.PushOut(props, box, p.sw, p.sh)
			}
		case dungeon.KindWall, dungeon.KindStone:
			physics.PushOut(props, box, p.sw, p.sh)
		case dungeon.KindSpikes:
			if box.Contains(props.Pos) {
				p.damagePlayer(constant.SpikeDamage)
			}
		case dungeon.KindHatch:
			if !o.Open {
				physics.PushOut(props, box, p.sw, p.sh)
				break
			}
			if _, hit := vmath.DynamicCircleVsRect(props.BCircle(p.sw, p.sh), box); hit {
				if err := p.descend(); err != nil {
					return false, err
				}
				return true, nil
			}
		case dungeon.KindPedestal:
			if o.Held != nil {
				if _, hit := vmath.DynamicCircleVsRect(props.BCircle(p.sw, p.sh), box); hit {
					o.Held = p.Player.TakeItem(o.Held)
					p.sounds.Play(audio.CuePowerUp)
					break
				}
			}
			physics.PushOut(props, box, p.sw, p.sh)
		}

		// Keep enemies and drops out of solid blocks too.
		if o.Kind == dungeon.KindHatch || o.Kind == dungeon.KindSpikes {
			continue
		}
		if o.Kind == dungeon.KindDoor && o.Open {
			continue
		}
		for _, e := range room.Enemies {
			physics.PushOut(e.Props(), box, p.sw, p.sh)
		}
		for _, d := range room.Drops {
			physics.PushOut(d.Props(), box, p.sw, p.sh)
		}
	}
	return false, nil
}

// resolveBodies handles player-vs-enemy and player-vs-drop overlaps.
func (p *Play) resolveBodies(room *dungeon.Room) {
	props := p.Player.Props()
	pc := props.BCircle(p.sw, p.sh)
	for _, e := range room.Enemies {
		if _, touching := vmath.StaticCircleVsCircle(pc, e.Props().BCircle(p.sw, p.sh)); touching {
			physics.ResolvePairCollision(props, e.Props(), p.sw, p.sh)
			p.damagePlayer(e.TouchDamage())
		}
	}
	for _, d := range room.Drops {
		if _, touching := vmath.StaticCircleVsCircle(pc, d.Props().BCircle(p.sw, p.sh)); !touching {
			continue
		}
		if !d.Apply(p.Player, p.sounds) {
			// Could not apply (e.g. heal at full health): push apart
			// instead of consuming.
			physics.ResolvePairCollision(props, d.Props(), p.sw, p.sh)
		}
	}
}

// resolveShots collides every live shot against enemies, the player,
// and solid obstacles, despawning on any hit.
func (p *Play) resolveShots(room *dungeon.Room) {
	props := p.Player.Props()
	live := room.Shots[:0]
	for _, s := range room.Shots {
		sc := s.Props().BCircle(p.sw, p.sh)
		hit := false

		switch s.Owner {
		case entity.OwnerPlayer:
			for _, e := range room.Enemies {
				if _, ok := vmath.StaticCircleVsCircle(sc, e.Props().BCircle(p.sw, p.sh)); ok {
					e.Damage(s.Power)
					kb := s.Props().Velocity.Normalize().Scale(constant.ShotKnockback)
					e.Props().Velocity = e.Props().Velocity.Add(kb)
					hit = true
					break
				}
			}
		case entity.OwnerEnemy:
			if _, ok := vmath.StaticCircleVsCircle(sc, props.BCircle(p.sw, p.sh)); ok {
				p.damagePlayer(s.Power)
				hit = true
			}
		}

		if !hit {
			for _, o := range room.Obstacles {
				if !o.BlocksShots() {
					continue
				}
				if _, ok := vmath.DynamicCircleVsRect(sc, o.BBox(p.sw, p.sh)); ok {
					hit = true
					break
				}
			}
		}

		if hit {
			p.sounds.Play(audio.CueShotPop)
			continue
		}
		live = append(live, s)
	}
	room.Shots = live
}

// damagePlayer routes damage through the invulnerability window and
// plays the hurt cue only when the hit landed.
func (p *Play) damagePlayer(amount float64) {
	before := p.Player.Health()
	p.Player.Damage(amount)
	if p.Player.Health() < before {
		p.sounds.Play(audio.CuePlayerDamaged)
	}
}

// transitionThroughDoor moves the player to the connected room,
// mirroring its position across the screen so it appears just inside
// the opposite door, with velocity zeroed and a brief afterlock.
func (p *Play) transitionThroughDoor(door *dungeon.Obstacle) {
	props := p.Player.Props()
	props.Pos = vmath.V(p.sw-props.Pos.X, p.sh-props.Pos.Y)
	props.Velocity = vmath.Vec2{}
	p.Player.AfterlockCooldown = constant.PlayerAfterlockCooldown
	p.Current = door.ConnectsTo
	p.sounds.Play(audio.CueDoor)
	logrus.WithFields(logrus.Fields{
		"row":    p.Current.Row,
		"col":    p.Current.Col,
		"facing": door.Facing.String(),
	}).Debug("room transition")
}

// descend regenerates the dungeon for the next level, an atomic
// replace of the whole room graph.
func (p *Play) descend() error {
	next := p.Dungeon.Level + 1
	d, err := dungeon.Generate(next, p.sw, p.sh, p.rng)
	if err != nil {
		return err
	}
	p.Dungeon = d
	p.Current = dungeon.StartCoords
	props := p.Player.Props()
	props.Pos = vmath.V(p.sw/2, p.sh/2)
	props.Velocity = vmath.Vec2{}
	p.Player.AfterlockCooldown = constant.PlayerAfterlockCooldown
	p.sounds.Play(audio.CueStairs)
	logrus.WithField("level", next).Info("descending")
	return nil
}
