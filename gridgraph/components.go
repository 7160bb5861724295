package gridgraph

import (
	"github.com/katalvlaran/tubegen/unionfind"
	"github.com/katalvlaran/tubegen/walk"
)

// neighbours4 are the orthogonal offsets: right, down, left, up.
var neighbours4 = [4]walk.Vec{{X: 1, Y: 0}, {X: 0, Y: 1}, {X: -1, Y: 0}, {X: 0, Y: -1}}

// MakeTubes extracts the tube grid of g and the union-find of its
// connectivity groups.
//
// Behavior:
//  1. Scan column by column (x outer), top to bottom (y inner).
//  2. The orientation flag starts unflipped at the top of every column.
//  3. For each cell, (glyph, flag) selects the neighbours to union with and
//     the output glyph; combinations missing from the table become TubeEnd.
//  4. '\' '/' 'v' '^' toggle the flag after the cell is processed.
//
// Unions may reach one step past the right or bottom edge; those phantom
// coordinates never appear in the tube grid.
//
// Complexity: O(W×H) time and memory.
func (g *Grid) MakeTubes() *Tubes {
	uf := unionfind.New[walk.Vec]()
	out := newGrid(g.Width, g.Height)
	for x := 0; x < g.Width; x++ {
		flipped := false
		for y := 0; y < g.Height; y++ {
			p := walk.Vec{X: x, Y: y}
			glyph := g.At(p)
			key := tubeKey{glyph: glyph, flipped: flipped}
			for _, d := range tubeLinks[key] {
				uf.Union(p, p.Add(d))
			}
			tube, ok := tubeGlyphs[key]
			if !ok {
				tube = TubeEnd
			}
			out.cells[p] = tube
			if flipsOrientation(glyph) {
				flipped = !flipped
			}
		}
	}
	return &Tubes{Grid: out, Groups: uf}
}

// Ends returns the number of TubeEnd cells.
func (t *Tubes) Ends() int {
	return t.Grid.Count(TubeEnd)
}

// Pairs returns the number of endpoint pairs, Ends()/2.
func (t *Tubes) Pairs() int {
	return t.Ends() / 2
}

// GroupCount returns the number of distinct connectivity groups among the
// in-bounds cells.
func (t *Tubes) GroupCount() int {
	seen := make(map[walk.Vec]struct{})
	t.Grid.Each(func(p walk.Vec, _ rune) {
		seen[t.Groups.Find(p)] = struct{}{}
	})
	return len(seen)
}

// HasLoops reports whether some group lacks its two ends: every group must
// own exactly two TubeEnd cells, so the group count must be half the end count.
func (t *Tubes) HasLoops() bool {
	return t.Ends() != 2*t.GroupCount()
}

// HasPair reports whether two grid-adjacent TubeEnd cells share a group,
// i.e. a tube that is solved before the player touches it.
func (t *Tubes) HasPair() bool {
	found := false
	t.Grid.Each(func(p walk.Vec, glyph rune) {
		if found || glyph != TubeEnd {
			return
		}
		for _, d := range neighbours4[:2] {
			q := p.Add(d)
			if t.Grid.InBounds(q) && t.Grid.At(q) == TubeEnd && t.Groups.Same(p, q) {
				found = true
				return
			}
		}
	})
	return found
}

// HasTriple reports whether some cell has three or more grid-adjacent
// neighbours in its own group, a junction no two-ended tube can have.
func (t *Tubes) HasTriple() bool {
	found := false
	t.Grid.Each(func(p walk.Vec, _ rune) {
		if found {
			return
		}
		root := t.Groups.Find(p)
		n := 0
		for _, d := range neighbours4 {
			q := p.Add(d)
			if t.Grid.InBounds(q) && t.Groups.Find(q) == root {
				n++
			}
		}
		found = n >= 3
	})
	return found
}
