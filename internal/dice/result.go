package dice

import "sort"

// EffectKind tags the derived effect of a roll.
type EffectKind string

const (
	EffectNone   EffectKind = ""
	EffectPower  EffectKind = "power"
	EffectDamage EffectKind = "damage"
	EffectArmor  EffectKind = "armor"
)

// Effect is the derived effect computed from the aggregate.
type Effect struct {
	Kind  EffectKind `json:"kind,omitempty"`
	Value int        `json:"value"`
}

// Result is a read-only snapshot of a pool.
type Result struct {
	Name   string `json:"name"`
	Pushed bool   `json:"pushed"`
	Swords int    `json:"swords"`
	Skulls int    `json:"skulls"`
	Gear   int    `json:"gear"`
	Dice   []Die  `json:"dice"` // sorted by descending weight
	Effect Effect `json:"effect"`
}

// Result aggregates the current pool. Reading it does not change the engine.
func (e *Engine) Result() Result {
	r := Result{
		Name:   e.name,
		Pushed: e.pushed,
		Dice:   e.Pool(),
	}
	for _, d := range e.pool {
		r.Swords += d.Success
		if d.Skull() {
			r.Skulls++
		}
		if d.Category == CategoryGear {
			r.Gear++
		}
	}
	sort.SliceStable(r.Dice, func(i, j int) bool {
		return r.Dice[i].Weight > r.Dice[j].Weight
	})
	r.Effect = deriveEffect(e.name, e.items, r.Swords, r.Skulls, r.Gear)
	return r
}

// deriveEffect picks the first matching effect:
// spell power, then weapon damage (not for maneuvers), then armor rating.
func deriveEffect(name string, items []Item, swords, skulls, gear int) Effect {
	var primary *Item
	if len(items) > 0 {
		primary = &items[0]
	}
	key := rollKey(name)

	switch {
	case primary != nil && primary.Kind == ItemSpell:
		return Effect{Kind: EffectPower, Value: overflow(gear, swords)}
	case primary != nil && primary.Kind == ItemWeapon && !maneuvers[key]:
		return Effect{Kind: EffectDamage, Value: overflow(primary.Damage, swords)}
	case key == "armor" || (primary != nil && primary.Kind == ItemArmor):
		return Effect{Kind: EffectArmor, Value: swords + skulls}
	}
	return Effect{}
}

// overflow adds every sword past the first to base, or yields 0 on no sword.
func overflow(base, swords int) int {
	if swords <= 0 {
		return 0
	}
	return base + swords - 1
}
