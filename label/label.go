package label

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/tubegen/gridgraph"
	"github.com/katalvlaran/tubegen/walk"
)

// Labeling is the result of Apply.
type Labeling struct {
	// Puzzle is the grid that was labelled.
	Puzzle *gridgraph.Grid
	// Tubes is the tube grid of Puzzle with every end replaced by its label.
	Tubes *gridgraph.Tubes
	// Groups lists every group in first-encounter order.
	Groups []Group

	byRoot map[walk.Vec]int
	order  []int             // group indices in label order
	ends   map[walk.Vec]rune // end cell → label
	opts   Options
}

// Apply labels the tubes of g.
// Returns ErrAlphabetExhausted when g has more tubes with ends than the
// alphabet has runes.
func Apply(g *gridgraph.Grid, opts ...Option) (*Labeling, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	alphabet := []rune(o.Alphabet)

	tubes := g.MakeTubes()
	l := &Labeling{
		Puzzle: g,
		Tubes:  tubes,
		byRoot: make(map[walk.Vec]int),
		ends:   make(map[walk.Vec]rune),
		opts:   o,
	}
	for x := 0; x < tubes.Grid.Width; x++ {
		for y := 0; y < tubes.Grid.Height; y++ {
			p := walk.Vec{X: x, Y: y}
			gi := l.group(tubes.Groups.Find(p))
			if tubes.Grid.At(p) != gridgraph.TubeEnd {
				continue
			}
			grp := &l.Groups[gi]
			if grp.Label == 0 {
				if len(l.order) == len(alphabet) {
					return nil, fmt.Errorf("%w: %d runes", ErrAlphabetExhausted, len(alphabet))
				}
				grp.Label = alphabet[len(l.order)]
				l.order = append(l.order, gi)
			}
			grp.Ends = append(grp.Ends, p)
			l.ends[p] = grp.Label
			tubes.Grid.Set(p, grp.Label)
		}
	}
	return l, nil
}

// group returns the index of root's group, allocating it on first sight.
func (l *Labeling) group(root walk.Vec) int {
	if gi, ok := l.byRoot[root]; ok {
		return gi
	}
	color := -1
	if l.opts.Palette > 0 {
		color = len(l.Groups) % l.opts.Palette
	}
	l.Groups = append(l.Groups, Group{Root: root, Color: color})
	l.byRoot[root] = len(l.Groups) - 1
	return len(l.Groups) - 1
}

// GroupOf returns the group of cell p.
func (l *Labeling) GroupOf(p walk.Vec) (Group, bool) {
	gi, ok := l.byRoot[l.Tubes.Groups.Find(p)]
	if !ok {
		return Group{}, false
	}
	return l.Groups[gi], true
}

// Labelled returns the groups that own a label, in label order.
func (l *Labeling) Labelled() []Group {
	out := make([]Group, len(l.order))
	for i, gi := range l.order {
		out[i] = l.Groups[gi]
	}
	return out
}

// Mapping returns group root → label for every labelled group.
func (l *Labeling) Mapping() map[walk.Vec]rune {
	m := make(map[walk.Vec]rune, len(l.Groups))
	for _, g := range l.Groups {
		if g.Label != 0 {
			m[g.Root] = g.Label
		}
	}
	return m
}

// Scheme flattens the labelling row by row: an end cell becomes its label
// plus Offset, any other cell the Filler.
func (l *Labeling) Scheme() string {
	var b strings.Builder
	g := l.Tubes.Grid
	b.Grow(g.Width * g.Height)
	g.Each(func(p walk.Vec, _ rune) {
		if r, ok := l.ends[p]; ok {
			b.WriteRune(r + rune(l.opts.Offset))
			return
		}
		b.WriteRune(l.opts.Filler)
	})
	return b.String()
}
