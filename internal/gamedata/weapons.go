package gamedata

import (
	"errors"
	"fmt"
)

// WeaponTypeDef is the base attack for one weapon type.
type WeaponTypeDef struct {
	Type   string `yaml:"type"`
	Name   string `yaml:"name"`
	Attack int    `yaml:"attack"`
}

// PrefixDef is a quality prefix rolled onto generated weapons.
// The base attack is divided by Divisor (when non-zero), then Delta is added.
type PrefixDef struct {
	Name    string `yaml:"name"`
	Divisor int    `yaml:"divisor"`
	Delta   int    `yaml:"delta"`
}

// Apply adjusts a base attack value.
func (p PrefixDef) Apply(attack int) int {
	if p.Divisor > 0 {
		attack /= p.Divisor
	}
	return attack + p.Delta
}

// WeaponsFile represents the structure of weapons.yaml.
type WeaponsFile struct {
	Types    []WeaponTypeDef `yaml:"types"`
	Prefixes []PrefixDef     `yaml:"prefixes"`
}

// TypeByID returns the weapon type definition, or nil if not found.
func (w *WeaponsFile) TypeByID(id string) *WeaponTypeDef {
	for i := range w.Types {
		if w.Types[i].Type == id {
			return &w.Types[i]
		}
	}
	return nil
}

// LoadWeapons loads the weapon table from the embedded weapons.yaml file.
func LoadWeapons() (*WeaponsFile, error) {
	file, err := Load[WeaponsFile]("weapons.yaml")
	if err != nil {
		return nil, err
	}
	if len(file.Types) == 0 {
		return nil, errors.New("no weapon types loaded from weapons.yaml")
	}
	if len(file.Prefixes) == 0 {
		return nil, errors.New("no weapon prefixes loaded from weapons.yaml")
	}
	for _, p := range file.Prefixes {
		if p.Divisor < 0 {
			return nil, fmt.Errorf("weapon prefix %q: divisor must not be negative", p.Name)
		}
	}
	return &file, nil
}

// MustLoadWeapons loads the weapon table, panicking on error.
func MustLoadWeapons() *WeaponsFile {
	weapons, err := LoadWeapons()
	if err != nil {
		panic(err)
	}
	return weapons
}
