// Package ui draws game snapshots to the terminal with tcell and feeds key
// intents back to the game.
package ui

import "github.com/gdamore/tcell/v2"

// Screen owns the terminal for the lifetime of the process.
type Screen struct {
	screen tcell.Screen
}

// NewScreen opens and initializes the terminal.
func NewScreen() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := s.Init(); err != nil {
		return nil, err
	}
	return NewScreenFrom(s), nil
}

// NewScreenFrom wraps an already-initialized tcell screen, such as a
// simulation screen in tests.
func NewScreenFrom(s tcell.Screen) *Screen {
	s.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	s.HideCursor()
	s.Clear()
	return &Screen{screen: s}
}

// Close restores the terminal. Pending PollEvent calls return nil.
func (s *Screen) Close() {
	s.screen.Fini()
}

// Events pumps terminal events into the returned channel until the screen
// is closed or done is closed.
func (s *Screen) Events(done <-chan struct{}) <-chan tcell.Event {
	events := make(chan tcell.Event)
	go func() {
		defer close(events)
		for {
			ev := s.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()
	return events
}

// DrawText writes text one rune per cell starting at (x, y) and returns the
// column after the last rune. Cells past the right edge are clipped.
func (s *Screen) DrawText(x, y int, text string, style tcell.Style) int {
	width, height := s.screen.Size()
	if y < 0 || y >= height {
		return x + len([]rune(text))
	}
	for _, ch := range text {
		if x >= 0 && x < width {
			s.screen.SetContent(x, y, ch, nil, style)
		}
		x++
	}
	return x
}

// Clear clears the screen buffer.
func (s *Screen) Clear() {
	s.screen.Clear()
}

// Show flushes the screen buffer to the terminal.
func (s *Screen) Show() {
	s.screen.Show()
}

// Sync forces a complete redraw, used after a resize.
func (s *Screen) Sync() {
	s.screen.Sync()
}
