package world

import (
	"go.uber.org/zap"

	"github.com/samdwyer/ardentia/internal/entity"
	"github.com/samdwyer/ardentia/internal/gamedata"
	"github.com/samdwyer/ardentia/internal/rng"
)

// baseMonsterPool is available in every zone.
var baseMonsterPool = []string{"Slime", "Goblin", "Ogre"}

// RoomData is what the balancer needs to know about the room it fills.
type RoomData struct {
	Zone       Zone
	RoomType   RoomType
	RoomNumber int
}

// Balancer picks species and levels for the monsters of a room.
type Balancer struct {
	species *gamedata.SpeciesRegistry
	logger  *zap.Logger
}

// NewBalancer creates a balancer over the given species registry.
func NewBalancer(species *gamedata.SpeciesRegistry, logger *zap.Logger) *Balancer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Balancer{species: species, logger: logger}
}

// GenerateMonstersForRoom returns up to size monsters for the room.
// A drawn species with no definition drops its slot, so the result may be
// shorter than size.
func (b *Balancer) GenerateMonstersForRoom(data RoomData, size int, src rng.Source) []*entity.Monster {
	pool := MonsterPool(data)
	level := MonsterLevel(data)

	monsters := make([]*entity.Monster, 0, size)
	for i := 0; i < size; i++ {
		name, ok := rng.Pick(src, pool)
		if !ok {
			continue
		}
		def, err := b.species.Lookup(name)
		if err != nil {
			b.logger.Debug("skipping monster slot",
				zap.Int("room", data.RoomNumber),
				zap.Error(err),
			)
			continue
		}
		monsters = append(monsters, entity.NewMonster(def, level))
	}
	return monsters
}

// MonsterPool returns the species names a room may draw from: the base
// pool plus the zone's unique species. Rooms 1 and 2 are restricted to ramp
// difficulty.
func MonsterPool(data RoomData) []string {
	switch data.RoomNumber {
	case 1:
		return []string{"Slime"}
	case 2:
		return []string{"Slime", "Goblin"}
	}

	pool := append([]string(nil), baseMonsterPool...)
	seen := make(map[string]bool, len(pool))
	for _, name := range pool {
		seen[name] = true
	}
	for _, name := range data.Zone.UniqueMonsters {
		if !seen[name] {
			seen[name] = true
			pool = append(pool, name)
		}
	}
	return pool
}

// MonsterLevel returns the level for every monster in the room: the
// midpoint of the zone's level range plus the room type bonus, clamped to
// the range.
func MonsterLevel(data RoomData) int {
	minLevel, maxLevel := data.Zone.MonsterLevelRange()
	base := midpoint(minLevel, maxLevel)
	return min(max(base+data.RoomType.LevelBonus(), minLevel), maxLevel)
}

// midpoint rounds towards negative infinity.
func midpoint(a, b int) int {
	return (a + b) >> 1
}
