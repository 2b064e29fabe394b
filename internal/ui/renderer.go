package ui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/samdwyer/ardentia/internal/game"
)

// Layout offsets for drawn text.
const (
	marginX = 2
	marginY = 1
)

var (
	styleText     = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleDim      = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleTitle    = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleSelected = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleDanger   = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
)

var (
	healthLow  = colorful.Color{R: 0.85, G: 0.1, B: 0.1}
	healthHigh = colorful.Color{R: 0.2, G: 0.8, B: 0.25}
)

// Span is a run of text in one style.
type Span struct {
	Text  string
	Style tcell.Style
}

// Line is one row of spans.
type Line []Span

// Text returns the line's plain text.
func (l Line) Text() string {
	var b strings.Builder
	for _, s := range l {
		b.WriteString(s.Text)
	}
	return b.String()
}

func text(s string) Line {
	return Line{{Text: s, Style: styleText}}
}

func styled(s string, st tcell.Style) Line {
	return Line{{Text: s, Style: st}}
}

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Render draws the snapshot to the screen.
func (r *Renderer) Render(snap game.Snapshot) {
	r.screen.Clear()
	for i, line := range Lines(snap) {
		x := marginX
		for _, span := range line {
			x = r.screen.DrawText(x, marginY+i, span.Text, span.Style)
		}
	}
	r.screen.Show()
}

// Lines lays out the snapshot as text rows, top to bottom.
func Lines(snap game.Snapshot) []Line {
	var lines []Line

	switch snap.Kind {
	case game.KindMainMenu:
		lines = append(lines, styled("A R D E N T I A", styleTitle), nil)
		for _, o := range game.MenuOptions {
			lines = append(lines, option(o.String(), o == snap.MenuOption))
		}
		lines = append(lines, nil, styled("Up/Down to choose, Enter to confirm, Esc to quit", styleDim))
		return lines

	case game.KindDungeonLoading:
		lines = append(lines, styled(fmt.Sprintf("Entering the %s...", snap.Zone), styleTitle))

	case game.KindRoomLoading:
		lines = append(lines, header(snap)...)
		lines = append(lines, text("Loading..."))

	case game.KindRoom:
		lines = append(lines, header(snap)...)
		lines = append(lines, roomBody(snap)...)

	case game.KindCombatLoading:
		lines = append(lines, header(snap)...)
		if snap.Monster != nil {
			lines = append(lines, styled(fmt.Sprintf("A %s approaches!", snap.Monster.Name), styleDanger))
		}

	case game.KindCombat:
		lines = append(lines, header(snap)...)
		lines = append(lines, combatBody(snap)...)

	case game.KindDefeatMonster:
		lines = append(lines, header(snap)...)
		lines = append(lines, styled("Victory!", styleTitle))
		for _, m := range snap.LastExchange {
			lines = append(lines, text(m))
		}

	case game.KindDeadPlayer:
		lines = append(lines, styled("You have died.", styleDanger))
		if snap.Room != nil {
			lines = append(lines, text(fmt.Sprintf("You fell in room %d of %s.", snap.Room.Number, snap.Zone)))
		}

	case game.KindRoomResult:
		lines = append(lines, header(snap)...)
		lines = append(lines, resultBody(snap)...)

	case game.KindRunScreen:
		lines = append(lines, styled("You run for your life back to the entrance.", styleDanger))
	}

	if len(snap.Messages) > 0 {
		lines = append(lines, nil)
		for _, m := range snap.Messages {
			lines = append(lines, styled(m, styleDim))
		}
	}
	return lines
}

func option(label string, selected bool) Line {
	if selected {
		return styled("> "+label, styleSelected)
	}
	return text("  " + label)
}

func header(snap game.Snapshot) []Line {
	var lines []Line
	if snap.Room != nil {
		lines = append(lines, styled(
			fmt.Sprintf("%s - Room %d/%d (%s)", snap.Zone, snap.Room.Number, snap.Room.MaxRooms, snap.Room.Type),
			styleTitle,
		))
	}
	if p := snap.Player; p != nil {
		weapon := "unarmed"
		if p.Weapon != nil {
			weapon = p.Weapon.Name
		}
		lines = append(lines, Line{
			{Text: p.Name + "  ", Style: styleText},
			{Text: fmt.Sprintf("HP %d/%d", p.Health, p.MaxHealth), Style: tcell.StyleDefault.Foreground(HealthColor(p.Health, p.MaxHealth))},
			{Text: fmt.Sprintf("  ATK %d  DEF %d  SPD %d  Gold %d  [%s]", p.Attack, p.Defence, p.Speed, p.Gold, weapon), Style: styleText},
		})
	}
	return append(lines, nil)
}

func monsterLine(m game.MonsterView) Line {
	return Line{
		{Text: string(m.Glyph) + " ", Style: tcell.StyleDefault.Foreground(m.Color).Bold(true)},
		{Text: fmt.Sprintf("%-8s Lv %d  ", m.Name, m.Level), Style: styleText},
		{Text: fmt.Sprintf("HP %d/%d", max(0, m.Health), m.MaxHealth), Style: tcell.StyleDefault.Foreground(HealthColor(m.Health, m.MaxHealth))},
		{Text: fmt.Sprintf("  ATK %d  DEF %d  SPD %d", m.Attack, m.Defence, m.Speed), Style: styleText},
	}
}

func roomBody(snap game.Snapshot) []Line {
	room := snap.Room
	if room == nil {
		return nil
	}
	if len(room.Monsters) == 0 {
		return []Line{text("The room is quiet."), nil, styled("Enter to search the room", styleDim)}
	}
	lines := []Line{text(fmt.Sprintf("%d monster(s) block your way:", len(room.Monsters)))}
	for _, m := range room.Monsters {
		lines = append(lines, monsterLine(m))
	}
	return append(lines, nil, styled("Enter to fight", styleDim))
}

func combatBody(snap game.Snapshot) []Line {
	var lines []Line
	if snap.Monster != nil {
		lines = append(lines, monsterLine(*snap.Monster), nil)
	}
	for _, m := range snap.LastExchange {
		lines = append(lines, text(m))
	}
	if len(snap.LastExchange) > 0 {
		lines = append(lines, nil)
	}
	for _, o := range game.CombatOptions {
		lines = append(lines, option(o.String(), o == snap.CombatOption))
	}
	return lines
}

func resultBody(snap game.Snapshot) []Line {
	w := snap.WeaponOffer
	if w == nil {
		return []Line{text("Nothing else of use here."), nil, styled("Enter to continue", styleDim)}
	}
	lines := []Line{
		text(fmt.Sprintf("You find a %s (%s, +%d attack).", w.Name, w.Rarity, w.Attack)),
		text("Equip it?"),
	}
	for _, c := range game.WeaponChoices {
		lines = append(lines, option(c.String(), c == snap.WeaponChoice))
	}
	return lines
}

// HealthColor blends from red at zero health to green at full health.
func HealthColor(health, maxHealth int) tcell.Color {
	frac := 0.0
	if maxHealth > 0 {
		frac = float64(max(0, min(health, maxHealth))) / float64(maxHealth)
	}
	c := healthLow.BlendHcl(healthHigh, frac).Clamped()
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
