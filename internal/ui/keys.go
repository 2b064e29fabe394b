package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/ardentia/internal/game"
)

// TranslateKey maps a terminal key event to a game key intent. Terminals
// report presses only, so every translated event is a press.
func TranslateKey(ev *tcell.EventKey) (game.KeyEvent, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return game.Press(game.KeyUp), true
	case tcell.KeyDown:
		return game.Press(game.KeyDown), true
	case tcell.KeyEnter:
		return game.Press(game.KeyEnter), true
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return game.Press(game.KeyEscape), true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'k', 'w':
			return game.Press(game.KeyUp), true
		case 'j', 's':
			return game.Press(game.KeyDown), true
		case ' ':
			return game.Press(game.KeyEnter), true
		case 'q', 'Q':
			return game.Press(game.KeyEscape), true
		}
	}
	return game.KeyEvent{}, false
}
