package entity

import (
	"strings"

	"github.com/samdwyer/ardentia/internal/gamedata"
	"github.com/samdwyer/ardentia/internal/rng"
)

// WeaponType represents the kind of a weapon.
type WeaponType int

const (
	WeaponSword WeaponType = iota
	WeaponDagger
	WeaponAxe
)

// WeaponTypes lists every weapon type in draw order.
var WeaponTypes = []WeaponType{WeaponSword, WeaponDagger, WeaponAxe}

// String returns the weapon type name.
func (t WeaponType) String() string {
	switch t {
	case WeaponSword:
		return "Sword"
	case WeaponDagger:
		return "Dagger"
	case WeaponAxe:
		return "Axe"
	default:
		return "Unknown"
	}
}

// ID returns the weapon type identifier for data lookup.
func (t WeaponType) ID() string {
	switch t {
	case WeaponSword:
		return "sword"
	case WeaponDagger:
		return "dagger"
	case WeaponAxe:
		return "axe"
	default:
		return "unknown"
	}
}

// Rarity grades a weapon.
type Rarity int

const (
	RarityCommon Rarity = iota
	RarityRare
	RarityEpic
	RarityLegendary
	RarityMythical
)

// String returns the rarity name.
func (r Rarity) String() string {
	switch r {
	case RarityCommon:
		return "common"
	case RarityRare:
		return "rare"
	case RarityEpic:
		return "epic"
	case RarityLegendary:
		return "legendary"
	case RarityMythical:
		return "mythical"
	default:
		return "unknown"
	}
}

// Weapon is an equippable item. It is never modified after creation.
type Weapon struct {
	Name        string
	Type        WeaponType
	AttackValue int
	Rarity      Rarity
}

// NewWeapon rolls a weapon of the given type. One quality prefix is drawn
// uniformly from the table and applied to the type's base attack.
func NewWeapon(weaponType WeaponType, table *gamedata.WeaponsFile, src rng.Source) *Weapon {
	base := 0
	if def := table.TypeByID(weaponType.ID()); def != nil {
		base = def.Attack
	}

	prefix, _ := rng.Pick(src, table.Prefixes)

	return &Weapon{
		Name:        strings.TrimSpace(prefix.Name + " " + weaponType.String()),
		Type:        weaponType,
		AttackValue: prefix.Apply(base),
		Rarity:      RarityCommon,
	}
}
