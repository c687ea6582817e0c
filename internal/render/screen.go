package render

import (
	"fmt"

	"git.lost.host/meutraa/lanes/internal/theme"
	"github.com/gdamore/tcell/v2"
)

// ScreenSurface draws onto a tcell screen.
type ScreenSurface struct {
	*Grid

	Screen tcell.Screen
}

// NewScreenSurface wraps an initialised screen.
func NewScreenSurface(screen tcell.Screen, width, height float64) *ScreenSurface {
	cols, rows := screen.Size()
	return &ScreenSurface{
		Grid:   NewGrid(cols, rows, width, height),
		Screen: screen,
	}
}

// OpenScreenSurface creates and initialises a screen on the controlling
// terminal with mouse reporting enabled.
func OpenScreenSurface(width, height float64) (*ScreenSurface, error) {
	screen, err := tcell.NewScreen()
	if nil != err {
		return nil, fmt.Errorf("unable to create screen: %w", err)
	}
	if err := screen.Init(); nil != err {
		return nil, fmt.Errorf("unable to initialise screen: %w", err)
	}
	screen.HideCursor()
	screen.EnableMouse()
	return NewScreenSurface(screen, width, height), nil
}

func (s *ScreenSurface) Deinit() {
	s.Screen.Fini()
}

func (s *ScreenSurface) Clear() {
	cols, rows := s.Screen.Size()
	if s.Resize(cols, rows) {
		s.Screen.Clear()
	}
	s.Grid.Clear()
}

func (s *ScreenSurface) Flush() error {
	for i, c := range s.Cells {
		if c.Rune == 0 {
			continue
		}
		s.Screen.SetContent(i%s.Cols, i/s.Cols, c.Rune, nil, cellStyle(c))
	}
	s.Screen.Show()
	return nil
}

func cellStyle(c Cell) tcell.Style {
	return tcell.StyleDefault.
		Foreground(rgb(c.Fg)).
		Background(rgb(c.Bg)).
		Bold(c.Bold)
}

func rgb(c theme.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
