package mitm_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tubegen/mitm"
	"github.com/katalvlaran/tubegen/walk"
)

var headings = []walk.Vec{walk.North, walk.East, walk.South, walk.West}

func build(t testing.TB, turn, straight, budget int) *mitm.Index {
	t.Helper()
	idx, err := mitm.Build(context.Background(), mitm.Config{
		TurnPrice:     turn,
		StraightPrice: straight,
		Budget:        budget,
	})
	require.NoError(t, err)
	return idx
}

// TestBuild_Validation rejects bad prices and budgets.
func TestBuild_Validation(t *testing.T) {
	ctx := context.Background()
	_, err := mitm.Build(ctx, mitm.Config{TurnPrice: 0, StraightPrice: 1, Budget: 3})
	assert.True(t, errors.Is(err, mitm.ErrInvalidPrice))
	_, err = mitm.Build(ctx, mitm.Config{TurnPrice: 1, StraightPrice: -1, Budget: 3})
	assert.True(t, errors.Is(err, mitm.ErrInvalidPrice))
	_, err = mitm.Build(ctx, mitm.Config{TurnPrice: 1, StraightPrice: 1, Budget: -1})
	assert.True(t, errors.Is(err, mitm.ErrNegativeBudget))
}

func TestBuild_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := mitm.Build(ctx, mitm.DefaultConfig())
	assert.ErrorIs(t, err, context.Canceled)
}

// TestBuild_UnitBudget4 is the regression fixture: unit prices, budget 4.
// Every entry re-simulated from Origin reproduces its recorded end pose,
// fits the budget and is self-avoiding.
func TestBuild_UnitBudget4(t *testing.T) {
	idx := build(t, 1, 1, 4)
	require.NotZero(t, idx.Len())
	assert.Equal(t, 115, idx.Len())

	for _, en := range idx.Entries() {
		require.Equal(t, en.End, en.Path.End(walk.Origin), "path %s", en.Path)
		require.LessOrEqual(t, en.Path.Cost(1, 1), 4, "path %s", en.Path)
		require.True(t, en.Path.Test(), "path %s", en.Path)
	}
}

// TestBuild_DefaultPrices checks the sizes produced by the default prices.
func TestBuild_DefaultPrices(t *testing.T) {
	idx := build(t, 2, 1, 6)
	st := idx.Stats()
	assert.Equal(t, 85, st.Entries)
	assert.Equal(t, 75, st.Poses)
	assert.Equal(t, 6, st.LongestPath) // six Forward steps
	for _, en := range idx.Entries() {
		require.LessOrEqual(t, en.Path.Cost(2, 1), 6)
	}
}

// TestBuild_ZeroBudget records only the empty path.
func TestBuild_ZeroBudget(t *testing.T) {
	idx := build(t, 1, 1, 0)
	require.Equal(t, 1, idx.Len())
	assert.Empty(t, idx.Entries()[0].Path)
	assert.Equal(t, walk.Origin, idx.Entries()[0].End)
}

func TestDefaultConfigFor(t *testing.T) {
	assert.Equal(t, 6, mitm.DefaultConfigFor(3, 3).Budget)
	assert.Equal(t, 6, mitm.DefaultConfigFor(6, 6).Budget)
	assert.Equal(t, 9, mitm.DefaultConfigFor(9, 4).Budget)
	assert.Equal(t, 20, mitm.DefaultConfigFor(30, 2).Budget)
	assert.Equal(t, 2, mitm.DefaultConfigFor(1, 1).TurnPrice)
	assert.Equal(t, 1, mitm.DefaultConfigFor(1, 1).StraightPrice)
}

// TestLookup_RotatedFrames: for any heading, the canonical entry is found for
// the rotated goal, and walking it from that heading reproduces the goal.
func TestLookup_RotatedFrames(t *testing.T) {
	idx := build(t, 2, 1, 6)
	for _, en := range idx.Entries() {
		for _, h := range headings {
			delta := walk.Rotate(en.End.Pos(), h)
			th := walk.Rotate(en.End.Heading(), h)
			got := idx.Lookup(h, delta, th)
			require.NotEmpty(t, got)

			start := walk.PoseOf(walk.Vec{X: 7, Y: -3}, h)
			want := walk.PoseOf(start.Pos().Add(delta), th)
			for _, p := range got {
				require.Equal(t, want, p.End(start), "path %s from %v", p, h)
			}
		}
	}
}

func TestLookup_Miss(t *testing.T) {
	idx := build(t, 2, 1, 6)
	assert.Empty(t, idx.Lookup(walk.North, walk.Vec{X: 40, Y: 40}, walk.North))
}
