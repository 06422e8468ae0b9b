package entity

import (
	"math/rand"

	"github.com/lixenwraith/vault-crawler/constant"
)

// ItemKind discriminates pedestal items. Actives are held by the player
// (at most one) and triggered on demand behind a cooldown; passives
// apply once on pickup and vanish.
type ItemKind uint8

const (
	ItemActiveHeal ItemKind = iota
	ItemPassiveMaxHealth
)

// Item sits on a pedestal until the player collects it.
type Item struct {
	Kind     ItemKind
	Amount   float64
	Cooldown float64
}

// RandomItem rolls a pedestal item.
func RandomItem(rng *rand.Rand) *Item {
	if rng.Intn(2) == 0 {
		return &Item{Kind: ItemActiveHeal, Amount: constant.ItemHealAmount}
	}
	return &Item{Kind: ItemPassiveMaxHealth, Amount: constant.ItemMaxHealthUp}
}

// IsActive reports whether the item is player-triggered.
func (i *Item) IsActive() bool { return i.Kind == ItemActiveHeal }

// Activate fires an active item's effect. A no-op while the cooldown
// has not elapsed; on success the cooldown resets to the configured
// value.
func (i *Item) Activate(p *Player) bool {
	if !i.IsActive() || i.Cooldown > 0 {
		return false
	}

	switch i.Kind {
	case ItemActiveHeal:
		p.Heal(i.Amount)
	}

	i.Cooldown = constant.ItemCooldown
	return true
}

// ApplyPassive applies a passive item's permanent effect.
func (i *Item) ApplyPassive(p *Player) {
	switch i.Kind {
	case ItemPassiveMaxHealth:
		p.maxHealth += i.Amount
		p.health += i.Amount
	}
}
