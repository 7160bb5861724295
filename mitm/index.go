package mitm

import (
	"context"

	"github.com/katalvlaran/tubegen/walk"
)

// Index maps every enumerated end Pose to the Paths reaching it from
// walk.Origin, and keeps the flat entry list for uniform sampling.
// It is read-only after Build.
type Index struct {
	cfg     Config
	byPose  map[walk.Pose][]walk.Path
	entries []Entry
	weights [3]float64 // indexed by walk.Step
	total   float64
}

// enumerator carries the backtracking state of Build.
type enumerator struct {
	ctx   context.Context
	cfg   Config
	seen  map[walk.Vec]struct{}
	steps walk.Path
	idx   *Index
}

// Build enumerates every path reachable from walk.Origin within cfg.Budget
// and returns the resulting Index.
//
// Steps:
//  1. Validate prices and budget.
//  2. Depth-first from walk.Origin: record (path-so-far, pose) whenever the
//     remaining budget is ≥ 0; stop branching when it reaches 0.
//  3. Branch Left, Right (TurnPrice each) and, if the cell two ahead is
//     free, Forward (StraightPrice); the cell one ahead must be free for any
//     branch. Visited cells are added before recursing and removed after.
//
// Returns ctx.Err() if ctx is cancelled mid-enumeration.
func Build(ctx context.Context, cfg Config) (*Index, error) {
	if cfg.TurnPrice <= 0 || cfg.StraightPrice <= 0 {
		return nil, ErrInvalidPrice
	}
	if cfg.Budget < 0 {
		return nil, ErrNegativeBudget
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = DefaultMaxAttempts
	}
	if ctx == nil {
		ctx = context.Background()
	}

	idx := &Index{
		cfg:    cfg,
		byPose: make(map[walk.Pose][]walk.Path),
	}
	idx.weights[walk.Left] = 1 / float64(cfg.TurnPrice)
	idx.weights[walk.Right] = 1 / float64(cfg.TurnPrice)
	idx.weights[walk.Forward] = 2 / float64(cfg.StraightPrice)
	idx.total = idx.weights[walk.Left] + idx.weights[walk.Right] + idx.weights[walk.Forward]

	e := &enumerator{
		ctx:  ctx,
		cfg:  cfg,
		seen: make(map[walk.Vec]struct{}),
		idx:  idx,
	}
	if err := e.visit(walk.Origin, cfg.Budget); err != nil {
		return nil, err
	}
	return idx, nil
}

// visit records the current pose and recurses into the three step kinds.
func (e *enumerator) visit(pose walk.Pose, budget int) error {
	if err := e.ctx.Err(); err != nil {
		return err
	}
	if budget >= 0 {
		e.idx.record(e.steps, pose)
	}
	if budget <= 0 {
		return nil
	}

	pos, d := pose.Pos(), pose.Heading()
	e.seen[pos] = struct{}{}
	defer delete(e.seen, pos)

	ahead := pos.Add(d)
	if _, blocked := e.seen[ahead]; blocked {
		return nil
	}
	if err := e.branch(walk.Left, walk.PoseOf(ahead, walk.TurnLeft(d)), budget-e.cfg.TurnPrice); err != nil {
		return err
	}
	if err := e.branch(walk.Right, walk.PoseOf(ahead, walk.TurnRight(d)), budget-e.cfg.TurnPrice); err != nil {
		return err
	}

	e.seen[ahead] = struct{}{}
	defer delete(e.seen, ahead)
	far := ahead.Add(d)
	if _, blocked := e.seen[far]; blocked {
		return nil
	}
	return e.branch(walk.Forward, walk.PoseOf(far, d), budget-e.cfg.StraightPrice)
}

func (e *enumerator) branch(s walk.Step, next walk.Pose, budget int) error {
	e.steps = append(e.steps, s)
	err := e.visit(next, budget)
	e.steps = e.steps[:len(e.steps)-1]
	return err
}

func (idx *Index) record(steps walk.Path, end walk.Pose) {
	p := make(walk.Path, len(steps))
	copy(p, steps)
	idx.entries = append(idx.entries, Entry{Path: p, End: end})
	idx.byPose[end] = append(idx.byPose[end], p)
}

// Lookup returns the indexed completions for a walker facing heading that
// still has to travel delta and arrive facing targetHeading. Both vectors are
// rotated into the canonical frame first. The returned slice is shared and
// must not be modified.
func (idx *Index) Lookup(heading, delta, targetHeading walk.Vec) []walk.Path {
	t := walk.Unrotate(delta, heading)
	th := walk.Unrotate(targetHeading, heading)
	return idx.byPose[walk.PoseOf(t, th)]
}

// Entries returns the flat entry list. It is shared and must not be modified.
func (idx *Index) Entries() []Entry {
	return idx.entries
}

// Len returns the number of enumerated entries.
func (idx *Index) Len() int {
	return len(idx.entries)
}

// Config returns the configuration the index was built with.
func (idx *Index) Config() Config {
	return idx.cfg
}

// Stats summarizes the index.
func (idx *Index) Stats() Stats {
	s := Stats{
		Entries:       len(idx.entries),
		Poses:         len(idx.byPose),
		Budget:        idx.cfg.Budget,
		TurnPrice:     idx.cfg.TurnPrice,
		StraightPrice: idx.cfg.StraightPrice,
	}
	for _, en := range idx.entries {
		s.LongestPath = max(s.LongestPath, len(en.Path))
		for _, st := range en.Path {
			switch st {
			case walk.Forward:
				s.ForwardSteps++
			case walk.Left:
				s.LeftSteps++
			case walk.Right:
				s.RightSteps++
			}
		}
	}
	return s
}
