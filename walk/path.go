package walk

import "strings"

// Path is an ordered sequence of Steps. Self-avoidance is tested on demand
// with Test/TestLoop and never enforced on construction.
type Path []Step

// Walk returns every lattice position visited by p when it starts at (0,0)
// facing heading, including the start. Forward contributes two positions,
// Left and Right one each, so len(Walk) == 1 + len(p) + count(Forward).
func (p Path) Walk(heading Vec) []Vec {
	pts := make([]Vec, 1, 1+2*len(p))
	pos, d := Vec{}, heading
	for _, s := range p {
		pos = pos.Add(d)
		pts = append(pts, pos)
		switch s {
		case Left:
			d = TurnLeft(d)
		case Right:
			d = TurnRight(d)
		case Forward:
			pos = pos.Add(d)
			pts = append(pts, pos)
		}
	}
	return pts
}

// End simulates p from start and returns the final pose.
func (p Path) End(start Pose) Pose {
	pos, d := start.Pos(), start.Heading()
	for _, s := range p {
		pos = pos.Add(d)
		switch s {
		case Left:
			d = TurnLeft(d)
		case Right:
			d = TurnRight(d)
		case Forward:
			pos = pos.Add(d)
		}
	}
	return PoseOf(pos, d)
}

// Test reports whether every position of the walk from North is distinct.
func (p Path) Test() bool {
	pts := p.Walk(North)
	seen := make(map[Vec]struct{}, len(pts))
	for _, q := range pts {
		if _, dup := seen[q]; dup {
			return false
		}
		seen[q] = struct{}{}
	}
	return true
}

// TestLoop is Test for closed paths: it also accepts a walk whose only
// repeated position is the last one coinciding with the first.
func (p Path) TestLoop() bool {
	pts := p.Walk(North)
	seen := make(map[Vec]struct{}, len(pts))
	for _, q := range pts {
		seen[q] = struct{}{}
	}
	if len(seen) == len(pts) {
		return true
	}
	return len(pts) == len(seen)+1 && pts[0] == pts[len(pts)-1]
}

// Winding returns count(Right) − count(Left). A simple closed loop winds
// +4 when clockwise and −4 when counter-clockwise.
func (p Path) Winding() int {
	w := 0
	for _, s := range p {
		switch s {
		case Right:
			w++
		case Left:
			w--
		}
	}
	return w
}

// Cost prices p: turnPrice per Left/Right plus straightPrice per Forward.
func (p Path) Cost(turnPrice, straightPrice int) int {
	c := 0
	for _, s := range p {
		if s == Forward {
			c += straightPrice
		} else {
			c += turnPrice
		}
	}
	return c
}

// Join returns a new Path holding p followed by q. Neither input is modified.
func (p Path) Join(q Path) Path {
	out := make(Path, 0, len(p)+len(q))
	out = append(out, p...)
	return append(out, q...)
}

// String renders p as a compact step string, e.g. "2RR2L".
func (p Path) String() string {
	var b strings.Builder
	b.Grow(len(p))
	for _, s := range p {
		b.WriteString(s.String())
	}
	return b.String()
}

// Parse is the inverse of Path.String. Unknown characters yield ok=false.
func Parse(s string) (Path, bool) {
	p := make(Path, 0, len(s))
	for _, r := range s {
		switch r {
		case '2':
			p = append(p, Forward)
		case 'L':
			p = append(p, Left)
		case 'R':
			p = append(p, Right)
		default:
			return nil, false
		}
	}
	return p, true
}
