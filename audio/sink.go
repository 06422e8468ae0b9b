// Package audio plays short synthesized cues. The simulation core only
// ever sees the Sink interface; whether anything actually reaches a
// speaker is this package's problem.
package audio

// Cue names the core emits. Fire-and-forget; unknown names are ignored.
const (
	CueShotPop       = "shot_pop"
	CueEnemyDeath    = "enemy_death"
	CuePlayerDeath   = "player_death"
	CuePlayerDamaged = "player_damaged"
	CueHeal          = "heal"
	CuePowerUp       = "power_up"
	CueDoor          = "door"
	CueStairs        = "stairs"
)

// Sink receives sound cues from the simulation.
type Sink interface {
	Play(cue string)
}

// NopSink discards every cue. Used in tests and when no audio backend
// is available.
type NopSink struct{}

func (NopSink) Play(string) {}
