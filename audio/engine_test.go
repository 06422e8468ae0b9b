package audio

import (
	"math"
	"testing"
)

func TestCueTableCoversAllCues(t *testing.T) {
	table := buildCueTable()
	cues := []string{
		CueShotPop, CueEnemyDeath, CuePlayerDeath, CuePlayerDamaged,
		CueHeal, CuePowerUp, CueDoor, CueStairs,
	}
	for _, cue := range cues {
		buf, ok := table[cue]
		if !ok {
			t.Errorf("Expected a buffer for cue %q", cue)
			continue
		}
		if len(buf) == 0 {
			t.Errorf("Expected non-empty buffer for cue %q", cue)
		}
		for i, frame := range buf {
			if frame[0] < -1 || frame[0] > 1 || frame[1] < -1 || frame[1] > 1 {
				t.Errorf("Cue %q sample %d out of range: %v", cue, i, frame)
				break
			}
		}
	}
}

func TestEnvelopeTapersEnds(t *testing.T) {
	buf := oscillator(waveSine, 440, durationToSamples(0.2))
	applyEnvelope(buf, 0.05, 0.05)

	if math.Abs(buf[0]) > 1e-6 {
		t.Errorf("Expected attack to start silent, got %v", buf[0])
	}
	if math.Abs(buf[len(buf)-1]) > 0.01 {
		t.Errorf("Expected release to end near silence, got %v", buf[len(buf)-1])
	}
}

func TestSweepEndpoints(t *testing.T) {
	buf := sweep(200, 800, durationToSamples(0.1))
	if len(buf) != durationToSamples(0.1) {
		t.Fatalf("Expected %d samples, got %d", durationToSamples(0.1), len(buf))
	}
	for i, s := range buf {
		if s < -1 || s > 1 {
			t.Fatalf("Sample %d out of range: %v", i, s)
		}
	}
}

func TestNopSinkIsSilent(t *testing.T) {
	var s Sink = NopSink{}
	// Must not panic or block.
	s.Play(CueShotPop)
	s.Play("unknown")
}
