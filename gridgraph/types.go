package gridgraph

import (
	"errors"

	"github.com/katalvlaran/tubegen/unionfind"
	"github.com/katalvlaran/tubegen/walk"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrInvalidSize indicates a grid with a non-positive dimension.
	ErrInvalidSize = errors.New("gridgraph: width and height must be positive")
	// ErrNotLoop indicates a loop draw of a walk whose last point is not its first.
	ErrNotLoop = errors.New("gridgraph: path does not close on its start")
	// ErrMalformedPath indicates a walk point with no entry in the glyph table.
	ErrMalformedPath = errors.New("gridgraph: malformed path segment")
)

// Working-grid glyphs.
const (
	Blank     rune = ' '
	Backslash rune = '\\'
	Slash     rune = '/'
	TurnLT    rune = '<'
	TurnGT    rune = '>'
	TurnUp    rune = '^'
	TurnDown  rune = 'v'
)

// Tube-grid glyphs produced by MakeTubes.
const (
	TubeHorizontal rune = '-' // open to the right-hand neighbour
	TubeVertical   rune = '|' // open to the neighbour below
	TubeDownLeft   rune = '┐'
	TubeDownRight  rune = '┌'
	TubeUpRight    rune = '└'
	TubeUpLeft     rune = '┘'
	TubeEnd        rune = 'x' // puzzle-visible end of a tube
)

// Grid is a sparse coordinate→glyph mapping with nominal bounds Width×Height.
type Grid struct {
	Width, Height int
	cells         map[walk.Vec]rune
}

// Tubes is a tube grid paired with the union-find grouping its coordinates:
// two grid-adjacent coordinates share a group iff their glyphs open onto
// each other.
type Tubes struct {
	Grid   *Grid
	Groups *unionfind.UnionFind[walk.Vec]
}

// segmentKey indexes the DrawPath glyph table: displacement from the previous
// to the next walk point, plus the sign of the turn's cross product.
type segmentKey struct {
	dx, dy, turn int
}

var segmentGlyphs = map[segmentKey]rune{
	{1, 1, 1}: TurnLT, {-1, -1, -1}: TurnLT,
	{1, 1, -1}: TurnGT, {-1, -1, 1}: TurnGT,
	{-1, 1, 1}: TurnDown, {1, -1, -1}: TurnDown,
	{-1, 1, -1}: TurnUp, {1, -1, 1}: TurnUp,
	{0, 2, 0}: Backslash, {0, -2, 0}: Backslash,
	{2, 0, 0}: Slash, {-2, 0, 0}: Slash,
}

// tubeKey indexes the MakeTubes transition tables.
type tubeKey struct {
	glyph   rune
	flipped bool
}

var tubeLinks = map[tubeKey][]walk.Vec{
	{Slash, false}:     {{X: 0, Y: 1}},
	{Backslash, false}: {{X: 1, Y: 0}, {X: 0, Y: 1}},
	{Slash, true}:      {{X: 1, Y: 0}},
	{Blank, false}:     {{X: 1, Y: 0}},
	{Blank, true}:      {{X: 0, Y: 1}},
	{TurnDown, true}:   {{X: 0, Y: 1}},
	{TurnGT, true}:     {{X: 1, Y: 0}},
	{TurnDown, false}:  {{X: 0, Y: 1}},
	{TurnGT, false}:    {{X: 1, Y: 0}},
}

var tubeGlyphs = map[tubeKey]rune{
	{Slash, false}:     TubeDownLeft,
	{Backslash, false}: TubeDownRight,
	{Slash, true}:      TubeUpRight,
	{Backslash, true}:  TubeUpLeft,
	{Blank, false}:     TubeHorizontal,
	{Blank, true}:      TubeVertical,
}

// flipsOrientation reports whether glyph toggles the MakeTubes scan flag.
func flipsOrientation(glyph rune) bool {
	switch glyph {
	case Backslash, Slash, TurnDown, TurnUp:
		return true
	}
	return false
}
