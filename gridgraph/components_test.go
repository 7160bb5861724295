package gridgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tubegen/gridgraph"
	"github.com/katalvlaran/tubegen/walk"
)

// acceptedPuzzle is a shrunk 6×6 grid with three two-ended tubes.
var acceptedPuzzle = []string{
	"\\<>  /",
	" >  / ",
	"/  /  ",
	"\\ <   ",
	" > \\  ",
	"/   \\^",
}

func tubesOf(t *testing.T, rows []string) *gridgraph.Tubes {
	t.Helper()
	g, err := gridgraph.FromRows(rows)
	require.NoError(t, err)
	return g.MakeTubes()
}

// TestMakeTubes_Blank: every blank column stays unflipped, so each row is one
// horizontal tube.
func TestMakeTubes_Blank(t *testing.T) {
	g, err := gridgraph.New(3, 2)
	require.NoError(t, err)
	tb := g.MakeTubes()

	assert.Equal(t, []string{"---", "---"}, tb.Grid.Rows())
	assert.Equal(t, 2, tb.GroupCount())
	assert.True(t, tb.Groups.Same(walk.Vec{X: 0, Y: 0}, walk.Vec{X: 2, Y: 0}))
	assert.False(t, tb.Groups.Same(walk.Vec{X: 0, Y: 0}, walk.Vec{X: 0, Y: 1}))
}

// TestMakeTubes_Accepted checks glyphs, groups and all three predicates on a
// grid the generator accepts.
func TestMakeTubes_Accepted(t *testing.T) {
	tb := tubesOf(t, acceptedPuzzle)

	want := []string{
		"┌xx--┐",
		"|x--┐|",
		"└--┐||",
		"┌-x|||",
		"|x-┘||",
		"└---┘x",
	}
	assert.Equal(t, want, tb.Grid.Rows())
	assert.Equal(t, 6, tb.Ends())
	assert.Equal(t, 3, tb.Pairs())
	assert.Equal(t, 3, tb.GroupCount())
	assert.False(t, tb.HasLoops())
	assert.False(t, tb.HasPair())
	assert.False(t, tb.HasTriple())

	// every group owns exactly two ends
	perGroup := map[walk.Vec]int{}
	tb.Grid.Each(func(p walk.Vec, glyph rune) {
		if glyph == gridgraph.TubeEnd {
			perGroup[tb.Groups.Find(p)]++
		}
	})
	for root, n := range perGroup {
		assert.Equal(t, 2, n, "group %v", root)
	}
}

// TestMakeTubes_LoopDrawn extracts the tubes of a full-resolution loop.
func TestMakeTubes_LoopDrawn(t *testing.T) {
	g, err := gridgraph.New(7, 7)
	require.NoError(t, err)
	p, _ := walk.Parse("2RR2RR")
	require.NoError(t, g.DrawPath(p, walk.Vec{X: 2, Y: 2}, walk.North, true))

	tb := g.MakeTubes()
	want := []string{
		"-------",
		"-------",
		"--x----",
		"-x|┌---",
		"--┘|┌--",
		"---┘|x-",
		"----x--",
	}
	assert.Equal(t, want, tb.Grid.Rows())
	assert.Equal(t, 10, tb.GroupCount())
	assert.True(t, tb.HasLoops())
	assert.False(t, tb.HasPair())
	assert.False(t, tb.HasTriple())
}

// TestPredicates exercises each rejection rule on a minimal grid.
func TestPredicates(t *testing.T) {
	cases := []struct {
		name   string
		rows   []string
		tubes  []string
		pairs  int
		loops  bool
		pair   bool
		triple bool
	}{
		{"AdjacentEnds", []string{">>"}, []string{"xx"}, 1, false, true, false},
		{"StackedEnds", []string{" v", " v"}, []string{"-x", "-x"}, 1, false, true, false},
		{"ClosedRing", []string{"\\/", "/\\"}, []string{"┌┐", "└┘"}, 0, true, false, false},
		{"Junction", []string{">\\/", "^ v"}, []string{"x┌┐", "x|x"}, 1, true, false, true},
		{"SeparateEnds", []string{"> ", "> "}, []string{"x-", "x-"}, 1, true, false, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tb := tubesOf(t, tc.rows)
			assert.Equal(t, tc.tubes, tb.Grid.Rows())
			assert.Equal(t, tc.pairs, tb.Pairs())
			assert.Equal(t, tc.loops, tb.HasLoops(), "HasLoops")
			assert.Equal(t, tc.pair, tb.HasPair(), "HasPair")
			assert.Equal(t, tc.triple, tb.HasTriple(), "HasTriple")
		})
	}
}
