package world

import (
	"fmt"

	"github.com/samdwyer/ardentia/internal/entity"
)

// RoomType is the structural category of a room.
type RoomType int

const (
	RoomEntrance RoomType = iota
	RoomNormal
	RoomElite
	RoomTreasure
	RoomBoss
)

// String returns a human-readable room type name.
func (t RoomType) String() string {
	switch t {
	case RoomEntrance:
		return "entrance"
	case RoomNormal:
		return "normal"
	case RoomElite:
		return "elite"
	case RoomTreasure:
		return "treasure"
	case RoomBoss:
		return "boss"
	default:
		return "unknown"
	}
}

// LevelBonus is added to the zone's base monster level.
func (t RoomType) LevelBonus() int {
	switch t {
	case RoomEntrance:
		return -1
	case RoomElite:
		return 2
	case RoomTreasure:
		return 1
	case RoomBoss:
		return 5
	default:
		return 0
	}
}

// SizeRange returns the inclusive monster count range for the room type.
func (t RoomType) SizeRange() (int, int) {
	switch t {
	case RoomEntrance:
		return 1, 2
	case RoomNormal:
		return 2, 4
	case RoomElite:
		return 1, 3
	default:
		return 1, 1
	}
}

// Room is one generated encounter. It is discarded when the run advances.
type Room struct {
	Number         int // 1-based
	Name           string
	Zone           Zone
	Type           RoomType
	Monsters       []*entity.Monster
	Treasures      []entity.Treasure
	CurrentMonster int // Index of the monster being fought
	Cleared        bool
}

// NewRoom creates a room. A room without monsters starts cleared.
func NewRoom(number int, zone Zone, roomType RoomType, monsters []*entity.Monster, treasures []entity.Treasure) *Room {
	return &Room{
		Number:    number,
		Name:      fmt.Sprintf("Room %d", number),
		Zone:      zone,
		Type:      roomType,
		Monsters:  monsters,
		Treasures: treasures,
		Cleared:   len(monsters) == 0,
	}
}

// HasMonsters reports whether the room spawned any monster at all.
func (r *Room) HasMonsters() bool {
	return len(r.Monsters) > 0
}

// ActiveMonster returns the monster currently being fought, or nil once
// every monster is slain.
func (r *Room) ActiveMonster() *entity.Monster {
	if r.CurrentMonster < 0 || r.CurrentMonster >= len(r.Monsters) {
		return nil
	}
	return r.Monsters[r.CurrentMonster]
}

// MonsterSlain advances to the next monster and reports whether the room
// is now cleared.
func (r *Room) MonsterSlain() bool {
	if r.CurrentMonster < len(r.Monsters) {
		r.CurrentMonster++
	}
	r.Cleared = r.CurrentMonster >= len(r.Monsters)
	return r.Cleared
}

// AliveMonsterCount returns the number of monsters not yet slain.
func (r *Room) AliveMonsterCount() int {
	count := 0
	for _, m := range r.Monsters {
		if m.IsAlive() {
			count++
		}
	}
	return count
}

// PeekWeapon returns the first unclaimed weapon without removing it.
func (r *Room) PeekWeapon() *entity.Weapon {
	for _, t := range r.Treasures {
		if t.Weapon != nil {
			return t.Weapon
		}
	}
	return nil
}

// TakeWeapon removes and returns the first unclaimed weapon, or nil.
func (r *Room) TakeWeapon() *entity.Weapon {
	for i := range r.Treasures {
		if w := r.Treasures[i].Weapon; w != nil {
			r.Treasures[i].Weapon = nil
			return w
		}
	}
	return nil
}

// ClaimLoot removes and returns all gold and potions in the room.
func (r *Room) ClaimLoot() (int, []entity.HealthPotion) {
	gold := 0
	var potions []entity.HealthPotion
	for i := range r.Treasures {
		gold += max(0, r.Treasures[i].Gold)
		r.Treasures[i].Gold = 0
		if p := r.Treasures[i].Potion; p != nil {
			potions = append(potions, *p)
			r.Treasures[i].Potion = nil
		}
	}
	return gold, potions
}

// TreasureCount returns the number of non-empty treasures.
func (r *Room) TreasureCount() int {
	count := 0
	for _, t := range r.Treasures {
		if !t.IsEmpty() {
			count++
		}
	}
	return count
}
