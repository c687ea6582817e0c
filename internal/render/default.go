package render

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"git.lost.host/meutraa/lanes/internal/theme"
	"golang.org/x/term"
)

// ANSISurface draws with plain escape sequences. Only cells that changed
// since the previous frame are written.
type ANSISurface struct {
	*Grid

	out          io.Writer
	fd           int // Terminal to size from, -1 for a fixed size
	buffer       strings.Builder
	previous     []Cell
	restoreState *term.State
}

// NewANSISurface draws onto out with a fixed number of columns and rows.
func NewANSISurface(out io.Writer, cols, rows int, width, height float64) *ANSISurface {
	return &ANSISurface{
		Grid: NewGrid(cols, rows, width, height),
		out:  out,
		fd:   -1,
	}
}

// OpenANSISurface takes over the terminal on stdout. Deinit must be called
// to give it back.
func OpenANSISurface(width, height float64) (*ANSISurface, error) {
	fd := int(os.Stdout.Fd())
	cols, rows, err := term.GetSize(fd)
	if nil != err {
		return nil, fmt.Errorf("unable to get terminal size: %w", err)
	}
	s := NewANSISurface(os.Stdout, cols, rows, width, height)
	s.fd = fd
	if err := s.Init(); nil != err {
		return nil, err
	}
	return s, nil
}

func (s *ANSISurface) Init() error {
	state, err := term.MakeRaw(s.fd)
	if nil != err {
		return fmt.Errorf("unable to make terminal raw: %w", err)
	}
	s.restoreState = state

	fmt.Fprintf(s.out, "%s%s%s",
		"\033[?1049h", // Enable alternate buffer
		"\033[?25l",   // Make the cursor invisible
		"\033[2J",     // Clear the screen
	)
	return nil
}

func (s *ANSISurface) Deinit() error {
	fmt.Fprintf(s.out, "%s%s%s",
		"\033[0m",     // Reset colours
		"\033[?1049l", // Disable alternate buffer
		"\033[?25h",   // Make the cursor visible
	)
	if nil == s.restoreState {
		return nil
	}
	return term.Restore(s.fd, s.restoreState)
}

// Clear follows terminal resizes before clearing the grid.
func (s *ANSISurface) Clear() {
	if s.fd >= 0 {
		if cols, rows, err := term.GetSize(s.fd); nil == err && s.Resize(cols, rows) {
			s.previous = nil
			s.buffer.WriteString("\033[0m\033[2J")
		}
	}
	s.Grid.Clear()
}

func (s *ANSISurface) Flush() error {
	full := len(s.previous) != len(s.Cells)
	var last Cell
	haveLast := false
	nextCol, nextRow := -1, -1

	for i, c := range s.Cells {
		if !full && s.previous[i] == c {
			continue
		}
		if c.Rune == 0 {
			continue
		}
		col, row := i%s.Cols, i/s.Cols
		if col != nextCol || row != nextRow {
			s.move(row, col)
		}
		if !haveLast || c.Fg != last.Fg || c.Bg != last.Bg || c.Bold != last.Bold {
			s.style(c)
			last, haveLast = c, true
		}
		s.buffer.WriteRune(c.Rune)
		nextCol, nextRow = col+1, row
	}

	if full {
		s.previous = make([]Cell, len(s.Cells))
	}
	copy(s.previous, s.Cells)

	if s.buffer.Len() == 0 {
		return nil
	}
	s.buffer.WriteString("\033[0m")
	_, err := io.WriteString(s.out, s.buffer.String())
	s.buffer.Reset()
	return err
}

func (s *ANSISurface) move(row, col int) {
	s.buffer.WriteString("\033[")
	s.buffer.WriteString(strconv.Itoa(row + 1))
	s.buffer.WriteString(";")
	s.buffer.WriteString(strconv.Itoa(col + 1))
	s.buffer.WriteString("H")
}

func (s *ANSISurface) style(c Cell) {
	s.buffer.WriteString("\033[0")
	if c.Bold {
		s.buffer.WriteString(";1")
	}
	s.color("38", c.Fg)
	s.color("48", c.Bg)
	s.buffer.WriteString("m")
}

func (s *ANSISurface) color(layer string, c theme.Color) {
	s.buffer.WriteString(";")
	s.buffer.WriteString(layer)
	s.buffer.WriteString(";2;")
	s.buffer.WriteString(strconv.FormatInt(int64(c.R), 10))
	s.buffer.WriteString(";")
	s.buffer.WriteString(strconv.FormatInt(int64(c.G), 10))
	s.buffer.WriteString(";")
	s.buffer.WriteString(strconv.FormatInt(int64(c.B), 10))
}
