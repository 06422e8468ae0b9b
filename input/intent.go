// Package input decodes terminal key events into the per-tick intent
// struct the simulation consumes. The simulation itself never touches
// raw key state.
package input

import (
	"github.com/lixenwraith/vault-crawler/vmath"
)

// Intent is the decoded player input for one tick.
type Intent struct {
	// Move is the requested movement direction, zero when idle. It is
	// clamped to unit length by the movement lerp.
	Move vmath.Vec2

	// Shoot requests a shot this tick, in the player's forward
	// direction.
	Shoot bool

	// UseItem requests activating the held active item.
	UseItem bool

	// Confirm advances menu and game-over screens.
	Confirm bool

	// Quit requests an orderly shutdown.
	Quit bool

	// VolumeDelta adjusts master volume, -1, 0 or +1 steps.
	VolumeDelta int
}
