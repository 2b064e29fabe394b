package game

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/ardentia/internal/entity"
	"github.com/samdwyer/ardentia/internal/world"
)

// Snapshot is a read-only view of the game for the renderer. It holds
// copies, so mutating it never changes game state.
type Snapshot struct {
	Kind         ScreenKind
	MenuOption   MenuOption
	CombatOption CombatOption
	WeaponChoice WeaponChoice

	RunID string
	Zone  string

	Player      *PlayerView
	Room        *RoomView
	Monster     *MonsterView // The monster being fought, if any
	WeaponOffer *WeaponView  // The weapon RoomResult offers, if any

	LastExchange []string
	Messages     []string
}

// PlayerView is a copy of the player's stats.
type PlayerView struct {
	Name      string
	Health    int
	MaxHealth int
	Attack    int // Including weapon
	Defence   int
	Speed     int
	Weapon    *WeaponView
	Gold      int
	Potions   int
}

// MonsterView is a copy of one monster's stats.
type MonsterView struct {
	Name      string
	Level     int
	Health    int
	MaxHealth int
	Attack    int
	Defence   int
	Speed     int
	Alive     bool
	Glyph     rune
	Color     tcell.Color
}

// WeaponView is a copy of a weapon.
type WeaponView struct {
	Name   string
	Type   string
	Attack int
	Rarity string
}

// RoomView is a copy of the current room.
type RoomView struct {
	Number    int
	MaxRooms  int
	Name      string
	Type      string
	Cleared   bool
	Monsters  []MonsterView
	Remaining int
	Treasures int
}

// Snapshot returns the current render state.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Kind:  g.screen.Kind(),
		RunID: g.runID,
		Zone:  g.zone.Name,
	}

	switch s := g.screen.(type) {
	case MainMenu:
		snap.MenuOption = s.Selected
	case Combat:
		snap.CombatOption = s.Selected
	case RoomResult:
		snap.WeaponChoice = s.Selected
	}

	if g.player != nil {
		snap.Player = playerView(g.player)
	}
	if g.dungeon != nil {
		room := g.dungeon.Room
		snap.Room = roomView(room)
		if m := room.ActiveMonster(); m != nil {
			mv := monsterView(m)
			snap.Monster = &mv
		}
		if snap.Kind == KindRoomResult {
			if w := room.PeekWeapon(); w != nil {
				snap.WeaponOffer = weaponView(w)
			}
		}
	}
	if g.lastExchange != nil {
		snap.LastExchange = g.lastExchange.Messages()
	}
	snap.Messages = append([]string(nil), g.messages...)

	return snap
}

func playerView(p *entity.Player) *PlayerView {
	v := &PlayerView{
		Name:      p.Name,
		Health:    p.Health,
		MaxHealth: p.MaxHealth,
		Attack:    p.GetAttack(),
		Defence:   p.Defence,
		Speed:     p.Speed,
		Gold:      p.Gold,
		Potions:   len(p.Potions),
	}
	if p.Weapon != nil {
		v.Weapon = weaponView(p.Weapon)
	}
	return v
}

func monsterView(m *entity.Monster) MonsterView {
	return MonsterView{
		Name:      m.Name,
		Level:     m.Level,
		Health:    m.Health,
		MaxHealth: m.MaxHealth,
		Attack:    m.Attack,
		Defence:   m.Defence,
		Speed:     m.Speed,
		Alive:     m.IsAlive(),
		Glyph:     m.Glyph(),
		Color:     m.Color(),
	}
}

func weaponView(w *entity.Weapon) *WeaponView {
	return &WeaponView{
		Name:   w.Name,
		Type:   w.Type.String(),
		Attack: w.AttackValue,
		Rarity: w.Rarity.String(),
	}
}

func roomView(r *world.Room) *RoomView {
	v := &RoomView{
		Number:    r.Number,
		MaxRooms:  world.MaxRooms,
		Name:      r.Name,
		Type:      r.Type.String(),
		Cleared:   r.Cleared,
		Remaining: r.AliveMonsterCount(),
		Treasures: r.TreasureCount(),
	}
	for _, m := range r.Monsters {
		v.Monsters = append(v.Monsters, monsterView(m))
	}
	return v
}
