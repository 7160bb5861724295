package gridgraph

import (
	"strings"

	"github.com/katalvlaran/tubegen/walk"
)

// New returns an empty Grid of the given nominal size.
// Returns ErrInvalidSize if either dimension is not positive.
func New(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidSize
	}
	return newGrid(width, height), nil
}

// NewForPuzzle returns the double-resolution working grid for a puzzle of
// width×height cells: (2·width+1)×(2·height+1).
func NewForPuzzle(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidSize
	}
	return newGrid(2*width+1, 2*height+1), nil
}

// FromRows builds a Grid from equal-length rows; blank runes are stored too.
// Returns ErrInvalidSize for empty or ragged input.
func FromRows(rows []string) (*Grid, error) {
	if len(rows) == 0 {
		return nil, ErrInvalidSize
	}
	w := len([]rune(rows[0]))
	g, err := New(w, len(rows))
	if err != nil {
		return nil, err
	}
	for y, row := range rows {
		rs := []rune(row)
		if len(rs) != w {
			return nil, ErrInvalidSize
		}
		for x, r := range rs {
			g.cells[walk.Vec{X: x, Y: y}] = r
		}
	}
	return g, nil
}

func newGrid(width, height int) *Grid {
	return &Grid{Width: width, Height: height, cells: make(map[walk.Vec]rune)}
}

// InBounds reports whether p lies within Width×Height.
func (g *Grid) InBounds(p walk.Vec) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// At returns the glyph at p, or Blank if nothing is stored there.
func (g *Grid) At(p walk.Vec) rune {
	if r, ok := g.cells[p]; ok {
		return r
	}
	return Blank
}

// Has reports whether anything (including an explicit Blank) is stored at p.
func (g *Grid) Has(p walk.Vec) bool {
	_, ok := g.cells[p]
	return ok
}

// Set stores glyph at p. Coordinates outside the bounds are allowed.
func (g *Grid) Set(p walk.Vec, glyph rune) {
	g.cells[p] = glyph
}

// Delete removes whatever is stored at p.
func (g *Grid) Delete(p walk.Vec) {
	delete(g.cells, p)
}

// Clear removes every stored glyph, keeping the bounds.
func (g *Grid) Clear() {
	clear(g.cells)
}

// Len returns the number of stored coordinates.
func (g *Grid) Len() int {
	return len(g.cells)
}

// Count returns how many in-bounds cells read as glyph.
func (g *Grid) Count(glyph rune) int {
	n := 0
	g.Each(func(_ walk.Vec, r rune) {
		if r == glyph {
			n++
		}
	})
	return n
}

// Each calls fn for every in-bounds cell in row-major order.
func (g *Grid) Each(fn func(p walk.Vec, glyph rune)) {
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			p := walk.Vec{X: x, Y: y}
			fn(p, g.At(p))
		}
	}
}

// Clone returns a deep copy of g.
func (g *Grid) Clone() *Grid {
	c := newGrid(g.Width, g.Height)
	for p, r := range g.cells {
		c.cells[p] = r
	}
	return c
}

// Shrink returns a new Grid at half resolution holding only the odd
// (cell-centre) coordinates of g: out(x,y) = g(2x+1, 2y+1).
func (g *Grid) Shrink() *Grid {
	small := newGrid(g.Width/2, g.Height/2)
	for y := 0; y < small.Height; y++ {
		for x := 0; x < small.Width; x++ {
			small.cells[walk.Vec{X: x, Y: y}] = g.At(walk.Vec{X: 2*x + 1, Y: 2*y + 1})
		}
	}
	return small
}

// Rows renders the in-bounds area, one string per row.
func (g *Grid) Rows() []string {
	rows := make([]string, g.Height)
	var b strings.Builder
	for y := 0; y < g.Height; y++ {
		b.Reset()
		for x := 0; x < g.Width; x++ {
			b.WriteRune(g.At(walk.Vec{X: x, Y: y}))
		}
		rows[y] = b.String()
	}
	return rows
}

// String renders the grid as newline-separated rows.
func (g *Grid) String() string {
	return strings.Join(g.Rows(), "\n")
}
