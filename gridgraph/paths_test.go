package gridgraph_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tubegen/gridgraph"
	"github.com/katalvlaran/tubegen/walk"
)

func path(t *testing.T, s string) walk.Path {
	t.Helper()
	p, ok := walk.Parse(s)
	require.True(t, ok, "parse %q", s)
	return p
}

func TestEmbed(t *testing.T) {
	o := walk.Vec{X: 10, Y: 0}
	assert.Equal(t, o, gridgraph.Embed(o, walk.Vec{}))
	assert.Equal(t, walk.Vec{X: 11, Y: 1}, gridgraph.Embed(o, walk.Vec{X: 0, Y: 1}))
	assert.Equal(t, walk.Vec{X: 9, Y: 1}, gridgraph.Embed(o, walk.Vec{X: 1, Y: 0}))
}

// TestTestPath_BoundsAndOccupancy covers the two rejection reasons.
func TestTestPath_BoundsAndOccupancy(t *testing.T) {
	g, err := gridgraph.New(7, 7)
	require.NoError(t, err)
	loop := path(t, "2RR2RR")
	origin := walk.Vec{X: 2, Y: 2}

	assert.True(t, g.TestPath(loop, origin, walk.North))
	// from (4,4) the rectangle would need row and column 7
	assert.False(t, g.TestPath(loop, walk.Vec{X: 4, Y: 4}, walk.North))

	g.Set(walk.Vec{X: 3, Y: 5}, gridgraph.Blank)
	assert.False(t, g.TestPath(loop, origin, walk.North), "explicitly stored blank counts as occupied")
}

// TestDrawPath_Glyphs checks straight and turning glyphs.
func TestDrawPath_Glyphs(t *testing.T) {
	cases := []struct {
		path  string
		glyph rune
	}{
		{"2", gridgraph.Backslash},
		{"RR", gridgraph.TurnGT},
		{"LL", gridgraph.TurnDown},
	}
	for _, tc := range cases {
		t.Run(tc.path, func(t *testing.T) {
			g, err := gridgraph.New(7, 7)
			require.NoError(t, err)
			require.NoError(t, g.DrawPath(path(t, tc.path), walk.Vec{X: 2, Y: 2}, walk.North, false))
			assert.Equal(t, 1, g.Len())
			assert.Equal(t, tc.glyph, g.At(walk.Vec{X: 3, Y: 3}))
		})
	}

	// a single turn has no interior point
	g, _ := gridgraph.New(7, 7)
	require.NoError(t, g.DrawPath(path(t, "R"), walk.Vec{X: 2, Y: 2}, walk.North, false))
	assert.Equal(t, 0, g.Len())
}

// TestDrawPath_Loop draws a closed rectangle, including its closing corner.
func TestDrawPath_Loop(t *testing.T) {
	g, err := gridgraph.New(7, 7)
	require.NoError(t, err)
	require.NoError(t, g.DrawPath(path(t, "2RR2RR"), walk.Vec{X: 2, Y: 2}, walk.North, true))

	want := []string{
		"       ",
		"       ",
		"  ^    ",
		" < \\   ",
		"  \\ \\  ",
		"   \\ > ",
		"    v  ",
	}
	assert.Equal(t, want, g.Rows())
}

func TestDrawPath_Errors(t *testing.T) {
	g, err := gridgraph.New(9, 9)
	require.NoError(t, err)

	err = g.DrawPath(path(t, "2"), walk.Vec{X: 3, Y: 3}, walk.North, true)
	assert.True(t, errors.Is(err, gridgraph.ErrNotLoop), "got %v", err)

	// closes by reversing onto its own first step
	err = g.DrawPath(path(t, "LRRR2"), walk.Vec{X: 3, Y: 3}, walk.North, true)
	assert.True(t, errors.Is(err, gridgraph.ErrMalformedPath), "got %v", err)
	assert.Equal(t, 0, g.Len(), "nothing is written on error")
}

// TestClearPath_RemovesLoopInterior: only coordinates extracted as
// TubeVertical from the loop's scratch grid are removed.
func TestClearPath_RemovesLoopInterior(t *testing.T) {
	g, err := gridgraph.New(7, 7)
	require.NoError(t, err)
	for y := 0; y < 7; y++ {
		for x := 0; x < 7; x++ {
			g.Set(walk.Vec{X: x, Y: y}, gridgraph.Slash)
		}
	}
	require.NoError(t, g.ClearPath(path(t, "2RR2RR"), walk.Vec{X: 2, Y: 2}))

	want := []string{
		"///////",
		"///////",
		"///////",
		"// ////",
		"/// ///",
		"//// //",
		"///////",
	}
	assert.Equal(t, want, g.Rows())
	assert.Equal(t, 46, g.Len())
}
