package entity

import (
	"testing"

	"github.com/lixenwraith/vault-crawler/audio"
	"github.com/lixenwraith/vault-crawler/constant"
	"github.com/lixenwraith/vault-crawler/vmath"
)

func TestCollectableHeartApplies(t *testing.T) {
	p := NewPlayer(vmath.V(100, 100))
	p.SetHealth(2)
	c := NewCollectable(vmath.V(100, 100), CollectRedHeart, 1)

	if !c.Apply(p, audio.NopSink{}) {
		t.Fatal("Expected heart to apply below full health")
	}
	if p.Health() != 3 {
		t.Errorf("Expected health 3, got %v", p.Health())
	}
	if !c.Consumed() {
		t.Error("Expected heart to be consumed")
	}
}

func TestCollectableHeartRejectedAtFullHealth(t *testing.T) {
	p := NewPlayer(vmath.V(100, 100))
	c := NewCollectable(vmath.V(100, 100), CollectRedHeart, 1)

	if c.Apply(p, audio.NopSink{}) {
		t.Error("Expected heart to be rejected at full health")
	}
	if c.Consumed() {
		t.Error("Expected rejected heart to stay on the floor")
	}
}

// A consumed collectable must never apply twice.
func TestCollectableIdempotence(t *testing.T) {
	p := NewPlayer(vmath.V(100, 100))
	c := NewCollectable(vmath.V(100, 100), CollectSpeedBoost, 1.1)

	if !c.Apply(p, audio.NopSink{}) {
		t.Fatal("Expected boost to apply")
	}
	speedAfter := p.Speed

	if c.Apply(p, audio.NopSink{}) {
		t.Error("Expected second apply to be a no-op")
	}
	if p.Speed != speedAfter {
		t.Errorf("Expected speed unchanged, got %v", p.Speed)
	}
	if !c.Consumed() {
		t.Error("Expected state to stay Consumed")
	}
}

func TestCollectableBoostCaps(t *testing.T) {
	p := NewPlayer(vmath.V(100, 100))
	for i := 0; i < 50; i++ {
		c := NewCollectable(vmath.V(100, 100), CollectSpeedBoost, 1.1)
		c.Apply(p, audio.NopSink{})
	}
	if p.Speed > constant.PlayerMaxSpeed {
		t.Errorf("Expected speed capped at %v, got %v", constant.PlayerMaxSpeed, p.Speed)
	}

	for i := 0; i < 50; i++ {
		c := NewCollectable(vmath.V(100, 100), CollectDamageBoost, 1.1)
		c.Apply(p, audio.NopSink{})
	}
	if p.ShotPower > constant.PlayerMaxDamage {
		t.Errorf("Expected damage capped at %v, got %v", constant.PlayerMaxDamage, p.ShotPower)
	}
}
