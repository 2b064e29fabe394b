package entity

// HealthPotion restores health when drunk.
type HealthPotion struct {
	HealAmount int
}

// Treasure is loot attached to a room. Every field is optional: a nil
// Weapon, zero Gold or nil Potion means no drop of that kind.
type Treasure struct {
	Weapon *Weapon
	Gold   int
	Potion *HealthPotion
}

// IsEmpty reports whether the treasure holds nothing.
func (t Treasure) IsEmpty() bool {
	return t.Weapon == nil && t.Gold <= 0 && t.Potion == nil
}
