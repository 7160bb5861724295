package mitm

import (
	"math/rand"

	"github.com/katalvlaran/tubegen/walk"
)

// RandPath2 returns a random self-avoiding Path that, walked from
// walk.Origin, ends at target facing targetHeading.
//
// Each attempt grows a prefix one sampled step at a time, up to
// 2·|target|₁ steps. A step onto an already visited cell abandons the
// attempt. After every step the prefix either already sits on the target pose,
// or Lookup is asked for completions; if any exist one is chosen uniformly and
// the joined path is returned when it is self-avoiding.
//
// Returns ErrAttemptsExhausted after Config.MaxAttempts attempts.
func (idx *Index) RandPath2(rng *rand.Rand, target, targetHeading walk.Vec) (walk.Path, error) {
	goal := walk.PoseOf(target, targetHeading)
	limit := max(2*target.Manhattan(), 1)
	seen := make(map[walk.Vec]struct{}, 2*limit+1)
	steps := make(walk.Path, 0, limit)

	for attempt := 0; attempt < idx.cfg.MaxAttempts; attempt++ {
		clear(seen)
		steps = steps[:0]
		pose := walk.Origin
		seen[pose.Pos()] = struct{}{}

		for i := 0; i < limit; i++ {
			s := idx.sampleStep(rng)
			steps = append(steps, s)
			next, ok := advance(pose, s, seen)
			if !ok {
				break
			}
			pose = next
			if pose == goal {
				return steps.Join(nil), nil
			}
			ends := idx.Lookup(pose.Heading(), target.Sub(pose.Pos()), targetHeading)
			if len(ends) == 0 {
				continue
			}
			joined := steps.Join(ends[rng.Intn(len(ends))])
			if joined.Test() {
				return joined, nil
			}
			break
		}
	}
	return nil, ErrAttemptsExhausted
}

// RandLoop returns a random closed Path through walk.Origin that comes back
// facing North and passes TestLoop. Only simple loops (winding ±4) are
// returned; with Clockwise or CounterClockwise the sign must match too.
//
// Returns ErrAttemptsExhausted after Config.MaxAttempts attempts.
func (idx *Index) RandLoop(rng *rand.Rand, chirality Chirality) (walk.Path, error) {
	for attempt := 0; attempt < idx.cfg.MaxAttempts; attempt++ {
		en := idx.entries[rng.Intn(len(idx.entries))]
		ends := idx.Lookup(en.End.Heading(), en.End.Pos().Neg(), walk.North)
		if len(ends) == 0 {
			continue
		}
		joined := en.Path.Join(ends[rng.Intn(len(ends))])
		w := joined.Winding()
		if w != 4 && w != -4 {
			continue
		}
		if chirality != Either && w != 4*int(chirality) {
			continue
		}
		if joined.TestLoop() {
			return joined, nil
		}
	}
	return nil, ErrAttemptsExhausted
}

// RandPath joins a uniformly drawn entry with a uniformly drawn completion to
// the target pose, retrying until the result is self-avoiding.
//
// Returns ErrAttemptsExhausted after Config.MaxAttempts attempts.
func (idx *Index) RandPath(rng *rand.Rand, target, targetHeading walk.Vec) (walk.Path, error) {
	for attempt := 0; attempt < idx.cfg.MaxAttempts; attempt++ {
		en := idx.entries[rng.Intn(len(idx.entries))]
		ends := idx.Lookup(en.End.Heading(), target.Sub(en.End.Pos()), targetHeading)
		if len(ends) == 0 {
			continue
		}
		joined := en.Path.Join(ends[rng.Intn(len(ends))])
		if joined.Test() {
			return joined, nil
		}
	}
	return nil, ErrAttemptsExhausted
}

// sampleStep draws Left, Right or Forward with weights 1/TurnPrice,
// 1/TurnPrice and 2/StraightPrice, the proportions Build enumerates them in.
func (idx *Index) sampleStep(rng *rand.Rand) walk.Step {
	r := rng.Float64() * idx.total
	if r < idx.weights[walk.Left] {
		return walk.Left
	}
	r -= idx.weights[walk.Left]
	if r < idx.weights[walk.Right] {
		return walk.Right
	}
	return walk.Forward
}

// advance applies s to pose, marking every entered cell in seen.
// It reports false as soon as a cell is entered twice.
func advance(pose walk.Pose, s walk.Step, seen map[walk.Vec]struct{}) (walk.Pose, bool) {
	pos, d := pose.Pos(), pose.Heading()
	pos = pos.Add(d)
	if _, dup := seen[pos]; dup {
		return pose, false
	}
	seen[pos] = struct{}{}
	switch s {
	case walk.Left:
		d = walk.TurnLeft(d)
	case walk.Right:
		d = walk.TurnRight(d)
	case walk.Forward:
		pos = pos.Add(d)
		if _, dup := seen[pos]; dup {
			return pose, false
		}
		seen[pos] = struct{}{}
	}
	return walk.PoseOf(pos, d), true
}
