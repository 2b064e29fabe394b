// Package world provides zones, rooms and the dungeon run controller.
package world

import (
	"errors"
	"fmt"

	"github.com/samdwyer/ardentia/internal/gamedata"
)

// ErrUnknownZone is returned when a zone type or difficulty is not in the catalog.
var ErrUnknownZone = errors.New("unknown zone")

// DefaultDifficulty is the difficulty every catalog zone is offered at.
const DefaultDifficulty = "normal"

// Zone is a read-only descriptor of a themed area at one difficulty.
type Zone struct {
	Type             string
	Difficulty       string
	Name             string
	Description      string
	RecommendedLevel int
	UniqueMonsters   []string
	BossName         string

	minLevel int
	maxLevel int
}

// NewZone resolves a catalog definition at the given difficulty.
func NewZone(def gamedata.ZoneDef, difficulty string) (Zone, error) {
	for _, d := range def.Difficulties {
		if d.Difficulty != difficulty {
			continue
		}
		return Zone{
			Type:             def.Type,
			Difficulty:       difficulty,
			Name:             def.Name,
			Description:      def.Description,
			RecommendedLevel: def.RecommendedLevel,
			UniqueMonsters:   append([]string(nil), def.UniqueMonsters...),
			BossName:         def.BossName,
			minLevel:         d.MinLevel,
			maxLevel:         d.MaxLevel,
		}, nil
	}
	return Zone{}, fmt.Errorf("%w: %s has no %q difficulty", ErrUnknownZone, def.Type, difficulty)
}

// MonsterLevelRange returns the inclusive (min, max) monster level bound
// for the zone's difficulty.
func (z Zone) MonsterLevelRange() (int, int) {
	return z.minLevel, z.maxLevel
}

// String returns the zone's display name.
func (z Zone) String() string {
	return z.Name
}

// ZonesFromDefs resolves every definition at DefaultDifficulty, skipping
// definitions that do not offer it.
func ZonesFromDefs(defs []gamedata.ZoneDef) []Zone {
	zones := make([]Zone, 0, len(defs))
	for _, def := range defs {
		z, err := NewZone(def, DefaultDifficulty)
		if err != nil {
			continue
		}
		zones = append(zones, z)
	}
	return zones
}

// AvailableZones returns the playable zones from the embedded catalog.
func AvailableZones() []Zone {
	return ZonesFromDefs(gamedata.MustLoadZones())
}

// FindZone returns the zone with the given type.
func FindZone(zones []Zone, zoneType string) (Zone, error) {
	for _, z := range zones {
		if z.Type == zoneType {
			return z, nil
		}
	}
	return Zone{}, fmt.Errorf("%w: %q", ErrUnknownZone, zoneType)
}
