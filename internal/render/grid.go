package render

import (
	"math"

	"git.lost.host/meutraa/lanes/internal/theme"
	"github.com/mattn/go-runewidth"
)

const (
	runeVertical   = '│'
	runeHorizontal = '─'
	runeDot        = '•'
)

// Cell is one terminal character.
type Cell struct {
	Rune   rune
	Fg, Bg theme.Color
	Bold   bool
}

var blank = Cell{Rune: ' '}

// Grid rasterises playfield drawing calls onto terminal cells. It implements
// every Surface method except Flush.
type Grid struct {
	Cols, Rows    int
	Width, Height float64 // Playfield size the grid is scaled from
	Cells         []Cell
}

func NewGrid(cols, rows int, width, height float64) *Grid {
	g := &Grid{Width: width, Height: height}
	g.Resize(cols, rows)
	return g
}

// Resize changes the cell dimensions and clears the grid. It reports whether
// the size changed.
func (g *Grid) Resize(cols, rows int) bool {
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}
	if cols == g.Cols && rows == g.Rows && nil != g.Cells {
		return false
	}
	g.Cols, g.Rows = cols, rows
	g.Cells = make([]Cell, cols*rows)
	g.Clear()
	return true
}

func (g *Grid) Clear() {
	for i := range g.Cells {
		g.Cells[i] = blank
	}
}

// At returns the cell at col, row or a blank cell when out of bounds.
func (g *Grid) At(col, row int) Cell {
	if !g.inside(col, row) {
		return blank
	}
	return g.Cells[row*g.Cols+col]
}

func (g *Grid) inside(col, row int) bool {
	return col >= 0 && row >= 0 && col < g.Cols && row < g.Rows
}

func (g *Grid) set(col, row int, c Cell) {
	if g.inside(col, row) {
		g.Cells[row*g.Cols+col] = c
	}
}

func (g *Grid) col(x float64) int {
	return int(math.Floor(x * float64(g.Cols) / g.Width))
}

func (g *Grid) row(y float64) int {
	return int(math.Floor(y * float64(g.Rows) / g.Height))
}

// DrawLine draws straight lines only as box drawing characters, anything
// diagonal is stepped cell by cell with dots.
func (g *Grid) DrawLine(from, to Point, st theme.Style) {
	c0, r0 := g.col(from.X), g.row(from.Y)
	c1, r1 := g.col(to.X), g.row(to.Y)
	// A line on the far edge still belongs on screen
	c0, c1 = g.clampCol(c0), g.clampCol(c1)
	r0, r1 = g.clampRow(r0), g.clampRow(r1)

	ch := runeDot
	switch {
	case c0 == c1:
		ch = runeVertical
	case r0 == r1:
		ch = runeHorizontal
	}

	steps := abs(c1 - c0)
	if dr := abs(r1 - r0); dr > steps {
		steps = dr
	}
	for i := 0; i <= steps; i++ {
		t := 0.0
		if steps > 0 {
			t = float64(i) / float64(steps)
		}
		col := c0 + int(math.Round(t*float64(c1-c0)))
		row := r0 + int(math.Round(t*float64(r1-r0)))
		cell := g.At(col, row)
		g.set(col, row, Cell{Rune: ch, Fg: st.Fg, Bg: cell.Bg, Bold: st.Width >= 5})
	}
}

func (g *Grid) DrawRect(pos Point, size Size, st theme.Style) {
	if size.W <= 0 || size.H <= 0 {
		return
	}
	c0, r0 := g.col(pos.X), g.row(pos.Y)
	c1 := int(math.Ceil((pos.X + size.W) * float64(g.Cols) / g.Width))
	r1 := int(math.Ceil((pos.Y + size.H) * float64(g.Rows) / g.Height))
	if c1 <= c0 {
		c1 = c0 + 1
	}
	if r1 <= r0 {
		r1 = r0 + 1
	}
	for row := r0; row < r1; row++ {
		for col := c0; col < c1; col++ {
			g.set(col, row, Cell{Rune: ' ', Fg: st.Fg, Bg: st.Bg})
		}
	}
}

// DrawText writes s starting at pos, keeping the background already drawn.
func (g *Grid) DrawText(s string, pos Point, st theme.Style) {
	col, row := g.col(pos.X), g.row(pos.Y)
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		cell := g.At(col, row)
		g.set(col, row, Cell{Rune: r, Fg: st.Fg, Bg: cell.Bg, Bold: st.Bold})
		// The second half of a wide rune stays empty
		for i := 1; i < w; i++ {
			cell = g.At(col+i, row)
			g.set(col+i, row, Cell{Rune: 0, Fg: st.Fg, Bg: cell.Bg})
		}
		col += w
	}
}

// MeasureText returns the width of s in playfield pixels.
func (g *Grid) MeasureText(s string) float64 {
	if g.Cols == 0 {
		return 0
	}
	return float64(runewidth.StringWidth(s)) * g.Width / float64(g.Cols)
}

func (g *Grid) clampCol(c int) int {
	return clamp(c, 0, g.Cols-1)
}

func (g *Grid) clampRow(r int) int {
	return clamp(r, 0, g.Rows-1)
}

func clamp(v, lo, hi int) int {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
