package gridgraph

import (
	"fmt"

	"github.com/katalvlaran/tubegen/walk"
)

// Embed maps walk coordinate p into grid space around origin using the
// diagonal embedding (x,y) → (origin.X − x + y, origin.Y + x + y).
func Embed(origin, p walk.Vec) walk.Vec {
	return walk.Vec{X: origin.X - p.X + p.Y, Y: origin.Y + p.X + p.Y}
}

// TestPath reports whether path, walked from heading and embedded at origin,
// stays inside the bounds and touches only unoccupied coordinates.
func (g *Grid) TestPath(path walk.Path, origin, heading walk.Vec) bool {
	for _, p := range path.Walk(heading) {
		q := Embed(origin, p)
		if !g.InBounds(q) || g.Has(q) {
			return false
		}
	}
	return true
}

type placement struct {
	at    walk.Vec
	glyph rune
}

// DrawPath embeds path at origin and writes one glyph per interior walk point.
// With loop set, the walk must close on its start; the start point is then
// revisited once more so the closing segment is glyphed too.
//
// The glyph of a point is looked up by (next − previous, sign of the turn);
// a walk that reverses or stalls has no entry and yields ErrMalformedPath
// without modifying g.
func (g *Grid) DrawPath(path walk.Path, origin, heading walk.Vec, loop bool) error {
	pts := path.Walk(heading)
	if loop {
		if len(pts) < 2 || pts[0] != pts[len(pts)-1] {
			return fmt.Errorf("%w: %s", ErrNotLoop, path)
		}
		pts = append(pts, pts[1])
	}

	out := make([]placement, 0, len(pts))
	for i := 1; i < len(pts)-1; i++ {
		prev, cur, next := pts[i-1], pts[i], pts[i+1]
		key := segmentKey{
			dx:   next.X - prev.X,
			dy:   next.Y - prev.Y,
			turn: sign(cur.Sub(prev).Cross(next.Sub(cur))),
		}
		glyph, ok := segmentGlyphs[key]
		if !ok {
			return fmt.Errorf("%w: point %d of %s", ErrMalformedPath, i, path)
		}
		out = append(out, placement{at: Embed(origin, cur), glyph: glyph})
	}
	for _, pl := range out {
		g.cells[pl.at] = pl.glyph
	}
	return nil
}

// ClearPath punches out stale wall fragments before a loop is drawn at origin:
// the loop is rendered into a scratch grid, its tubes are extracted, and every
// coordinate whose extracted glyph is TubeVertical is deleted from g.
// Only the TubeVertical connector is cleared, never TubeHorizontal.
func (g *Grid) ClearPath(path walk.Path, origin walk.Vec) error {
	scratch := newGrid(g.Width, g.Height)
	if err := scratch.DrawPath(path, origin, walk.North, true); err != nil {
		return err
	}
	scratch.MakeTubes().Grid.Each(func(p walk.Vec, glyph rune) {
		if glyph == TubeVertical {
			delete(g.cells, p)
		}
	})
	return nil
}

func sign(x int) int {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	default:
		return 0
	}
}
