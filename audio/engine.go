package audio

import (
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(48000)

// Engine synthesizes all cues up front and mixes them into the speaker
// on demand. Degrades gracefully: if the speaker cannot initialize, the
// engine stays disabled and Play becomes a no-op.
type Engine struct {
	mu      sync.Mutex
	cues    map[string][][2]float64
	volume  float64
	enabled bool
}

// NewEngine builds the cue table and opens the speaker. The returned
// error is informational; the engine is still usable as a silent Sink.
func NewEngine(volume float64) (*Engine, error) {
	e := &Engine{
		cues:   buildCueTable(),
		volume: math.Max(0, math.Min(1, volume)),
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return e, err
	}
	e.enabled = true
	return e, nil
}

// Play implements Sink. Unknown cues are ignored.
func (e *Engine) Play(cue string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.enabled {
		return
	}
	samples, ok := e.cues[cue]
	if !ok {
		return
	}

	vol := e.volume
	pos := 0
	speaker.Play(beep.StreamerFunc(func(out [][2]float64) (int, bool) {
		n := 0
		for i := range out {
			if pos >= len(samples) {
				break
			}
			out[i][0] = samples[pos][0] * vol
			out[i][1] = samples[pos][1] * vol
			pos++
			n++
		}
		return n, pos < len(samples)
	}))
}

// SetVolume adjusts the master volume, clamped to [0, 1].
func (e *Engine) SetVolume(v float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.volume = math.Max(0, math.Min(1, v))
}

// --- Synthesis ---

const (
	waveSine = iota
	waveSquare
	waveSaw
	waveNoise
)

// oscillator generates raw mono waveform samples at unity gain.
func oscillator(waveType int, freq float64, samples int) []float64 {
	buf := make([]float64, samples)
	phase := 0.0
	phaseInc := freq / float64(sampleRate)

	for i := 0; i < samples; i++ {
		switch waveType {
		case waveSine:
			buf[i] = math.Sin(2 * math.Pi * phase)
		case waveSquare:
			if phase < 0.5 {
				buf[i] = 1.0
			} else {
				buf[i] = -1.0
			}
		case waveSaw:
			buf[i] = 2.0 * (phase - 0.5)
		case waveNoise:
			buf[i] = rand.Float64()*2 - 1
		}

		phase += phaseInc
		if phase >= 1.0 {
			phase -= 1.0
		}
	}
	return buf
}

// applyEnvelope shapes attack/release in place.
func applyEnvelope(buf []float64, attackSec, releaseSec float64) {
	total := len(buf)
	attack := int(attackSec * float64(sampleRate))
	release := int(releaseSec * float64(sampleRate))

	releaseStart := total - release
	if releaseStart < attack {
		releaseStart = attack
	}

	for i := 0; i < total; i++ {
		vol := 1.0
		if i < attack && attack > 0 {
			vol = float64(i) / float64(attack)
		} else if i >= releaseStart && release > 0 {
			vol = float64(total-i) / float64(release)
		}
		buf[i] *= vol
	}
}

// sweep generates a sine chirp from f0 to f1 over the buffer.
func sweep(f0, f1 float64, samples int) []float64 {
	buf := make([]float64, samples)
	phase := 0.0
	for i := 0; i < samples; i++ {
		t := float64(i) / float64(samples)
		freq := f0 + (f1-f0)*t
		buf[i] = math.Sin(2 * math.Pi * phase)
		phase += freq / float64(sampleRate)
	}
	return buf
}

func durationToSamples(sec float64) int {
	return int(sec * float64(sampleRate))
}

func toStereo(mono []float64) [][2]float64 {
	out := make([][2]float64, len(mono))
	for i, s := range mono {
		out[i][0] = s
		out[i][1] = s
	}
	return out
}

func buildCueTable() map[string][][2]float64 {
	table := make(map[string][][2]float64)

	pop := oscillator(waveSquare, 880, durationToSamples(0.05))
	applyEnvelope(pop, 0.002, 0.04)
	table[CueShotPop] = toStereo(pop)

	death := sweep(440, 110, durationToSamples(0.25))
	applyEnvelope(death, 0.005, 0.2)
	table[CueEnemyDeath] = toStereo(death)

	playerDeath := sweep(330, 55, durationToSamples(0.6))
	applyEnvelope(playerDeath, 0.01, 0.5)
	table[CuePlayerDeath] = toStereo(playerDeath)

	hurt := oscillator(waveNoise, 0, durationToSamples(0.12))
	applyEnvelope(hurt, 0.002, 0.1)
	table[CuePlayerDamaged] = toStereo(hurt)

	heal := sweep(523, 1046, durationToSamples(0.2))
	applyEnvelope(heal, 0.01, 0.15)
	table[CueHeal] = toStereo(heal)

	power := sweep(392, 1568, durationToSamples(0.3))
	applyEnvelope(power, 0.01, 0.2)
	table[CuePowerUp] = toStereo(power)

	door := oscillator(waveSaw, 196, durationToSamples(0.15))
	applyEnvelope(door, 0.01, 0.12)
	table[CueDoor] = toStereo(door)

	stairs := sweep(262, 65, durationToSamples(0.4))
	applyEnvelope(stairs, 0.01, 0.3)
	table[CueStairs] = toStereo(stairs)

	return table
}
