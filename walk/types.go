package walk

// Step is a single move of a Path.
type Step uint8

const (
	// Forward advances two lattice units without rotating.
	Forward Step = iota
	// Left advances one lattice unit, then rotates the heading +90°.
	Left
	// Right advances one lattice unit, then rotates the heading −90°.
	Right
)

// String returns the compact one-letter form used by Path.String.
func (s Step) String() string {
	switch s {
	case Forward:
		return "2"
	case Left:
		return "L"
	case Right:
		return "R"
	default:
		return "?"
	}
}

// Vec is an integer lattice vector. It is comparable and used as a map key.
type Vec struct {
	X, Y int
}

// Headings. North is the canonical heading every mitm index entry starts from.
var (
	North = Vec{0, 1}
	South = Vec{0, -1}
	East  = Vec{1, 0}
	West  = Vec{-1, 0}
)

// Add returns v+o.
func (v Vec) Add(o Vec) Vec { return Vec{v.X + o.X, v.Y + o.Y} }

// Sub returns v−o.
func (v Vec) Sub(o Vec) Vec { return Vec{v.X - o.X, v.Y - o.Y} }

// Neg returns −v.
func (v Vec) Neg() Vec { return Vec{-v.X, -v.Y} }

// Manhattan returns |X|+|Y|.
func (v Vec) Manhattan() int { return abs(v.X) + abs(v.Y) }

// Cross returns the z component of the cross product v×o.
func (v Vec) Cross(o Vec) int { return v.X*o.Y - o.X*v.Y }

// IsHeading reports whether v is one of the four unit headings.
func (v Vec) IsHeading() bool { return quarterTurns(v) >= 0 }

// Pose is a position plus heading.
type Pose struct {
	X, Y   int // position
	DX, DY int // heading
}

// Origin is the pose every mitm enumeration starts from: (0,0) facing North.
var Origin = Pose{0, 0, 0, 1}

// PoseOf assembles a Pose from a position and a heading.
func PoseOf(pos, heading Vec) Pose {
	return Pose{X: pos.X, Y: pos.Y, DX: heading.X, DY: heading.Y}
}

// Pos returns the position component.
func (p Pose) Pos() Vec { return Vec{p.X, p.Y} }

// Heading returns the heading component.
func (p Pose) Heading() Vec { return Vec{p.DX, p.DY} }

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
