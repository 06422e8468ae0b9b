package entity

import (
	"math/rand"
	"testing"

	"github.com/lixenwraith/vault-crawler/constant"
	"github.com/lixenwraith/vault-crawler/vmath"
)

func TestActiveItemCooldown(t *testing.T) {
	p := NewPlayer(vmath.V(100, 100))
	p.SetHealth(1)
	it := &Item{Kind: ItemActiveHeal, Amount: constant.ItemHealAmount}

	if !it.Activate(p) {
		t.Fatal("Expected first activation to succeed")
	}
	if it.Cooldown != constant.ItemCooldown {
		t.Errorf("Expected cooldown %v, got %v", constant.ItemCooldown, it.Cooldown)
	}
	if p.Health() != 1+constant.ItemHealAmount {
		t.Errorf("Expected heal to apply, health %v", p.Health())
	}

	healthAfter := p.Health()
	if it.Activate(p) {
		t.Error("Expected activation during cooldown to be a no-op")
	}
	if p.Health() != healthAfter {
		t.Errorf("Expected health unchanged during cooldown, got %v", p.Health())
	}

	it.Cooldown = 0
	if !it.Activate(p) {
		t.Error("Expected activation to succeed after cooldown elapsed")
	}
}

func TestPassiveItemRaisesMaxHealth(t *testing.T) {
	p := NewPlayer(vmath.V(100, 100))
	before := p.MaxHealth()

	it := &Item{Kind: ItemPassiveMaxHealth, Amount: constant.ItemMaxHealthUp}
	if left := p.TakeItem(it); left != nil {
		t.Error("Expected passive item to vanish on pickup")
	}
	if p.MaxHealth() != before+constant.ItemMaxHealthUp {
		t.Errorf("Expected max health %v, got %v", before+constant.ItemMaxHealthUp, p.MaxHealth())
	}
}

func TestActiveItemSwap(t *testing.T) {
	p := NewPlayer(vmath.V(100, 100))
	first := &Item{Kind: ItemActiveHeal, Amount: 1}
	second := &Item{Kind: ItemActiveHeal, Amount: 2}

	if prev := p.TakeItem(first); prev != nil {
		t.Error("Expected empty hands before first pickup")
	}
	prev := p.TakeItem(second)
	if prev != first {
		t.Error("Expected second pickup to return the first item")
	}
	if p.Held != second {
		t.Error("Expected the second item to be held")
	}
}

func TestRandomItemKinds(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	seen := map[ItemKind]bool{}
	for i := 0; i < 100; i++ {
		seen[RandomItem(rng).Kind] = true
	}
	if !seen[ItemActiveHeal] || !seen[ItemPassiveMaxHealth] {
		t.Error("Expected both item kinds over 100 draws")
	}
}
