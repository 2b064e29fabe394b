package entity

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/ardentia/internal/gamedata"
)

// Monster is a hostile creature owned by the room that spawned it.
type Monster struct {
	Species   *gamedata.SpeciesDef
	Name      string
	Level     int
	Health    int
	MaxHealth int
	Attack    int
	Defence   int
	Speed     int
}

// NewMonster creates a monster of the given species, scaling every stat to level.
func NewMonster(def *gamedata.SpeciesDef, level int) *Monster {
	health := def.Health.At(level)
	return &Monster{
		Species:   def,
		Name:      def.Name,
		Level:     level,
		Health:    health,
		MaxHealth: health,
		Attack:    def.Attack.At(level),
		Defence:   def.Defence.At(level),
		Speed:     def.Speed.At(level),
	}
}

// GetName returns the monster's name.
func (m *Monster) GetName() string { return m.Name }

// GetSpeed returns the speed stat.
func (m *Monster) GetSpeed() int { return m.Speed }

// GetHealth returns current health.
func (m *Monster) GetHealth() int { return m.Health }

// IsAlive reports whether health is above zero.
func (m *Monster) IsAlive() bool { return m.Health > 0 }

// DamageAgainst returns the damage a strike on p would deal.
// Monsters always deal at least 1 damage.
func (m *Monster) DamageAgainst(p *Player) int {
	return max(1, m.Attack-p.Defence)
}

// Strike attacks p and returns the damage dealt.
func (m *Monster) Strike(p *Player) int {
	damage := m.DamageAgainst(p)
	p.TakeDamage(damage)
	return damage
}

// TakeDamage lowers health by amount.
func (m *Monster) TakeDamage(amount int) {
	if amount <= 0 {
		return
	}
	m.Health -= amount
}

// Glyph returns the display symbol for this monster.
func (m *Monster) Glyph() rune {
	if m.Species == nil {
		return '?'
	}
	return m.Species.GlyphRune()
}

// Color returns the tcell color for this monster.
func (m *Monster) Color() tcell.Color {
	if m.Species == nil {
		return tcell.ColorPurple
	}
	return m.Species.TCellColor()
}
