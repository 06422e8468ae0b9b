package scene

import (
	"math/rand"

	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/vault-crawler/audio"
	"github.com/lixenwraith/vault-crawler/input"
)

// Kind identifies the active game state.
type Kind int

const (
	KindMenu Kind = iota
	KindPlay
	KindDead
)

func (k Kind) String() string {
	switch k {
	case KindMenu:
		return "menu"
	case KindPlay:
		return "play"
	case KindDead:
		return "dead"
	}
	return "unknown"
}

// Director owns the scene state machine: Menu starts a run on confirm,
// Play runs until the player dies, Dead returns to Menu on confirm. A
// fresh Play scene is built for every run.
type Director struct {
	sw, sh float64
	rng    *rand.Rand
	sounds audio.Sink

	Active Kind
	Play   *Play
	Quit   bool
}

func NewDirector(sw, sh float64, rng *rand.Rand, sounds audio.Sink) *Director {
	return &Director{
		sw:     sw,
		sh:     sh,
		rng:    rng,
		sounds: sounds,
		Active: KindMenu,
	}
}

// Update advances whichever scene is active by one tick.
func (d *Director) Update(in input.Intent) error {
	if in.Quit {
		d.Quit = true
		return nil
	}
	switch d.Active {
	case KindMenu:
		if in.Confirm {
			play, err := NewPlay(d.sw, d.sh, d.rng, d.sounds)
			if err != nil {
				return err
			}
			d.Play = play
			d.Active = KindPlay
			logrus.Info("run started")
		}
	case KindPlay:
		outcome, err := d.Play.Update(in)
		if err != nil {
			return err
		}
		if outcome == OutcomeDead {
			d.Active = KindDead
			logrus.WithField("level", d.Play.Dungeon.Level).Info("run ended")
		}
	case KindDead:
		if in.Confirm {
			d.Play = nil
			d.Active = KindMenu
		}
	}
	return nil
}
