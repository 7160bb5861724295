package walk

// TurnLeft rotates v by +90°.
func TurnLeft(v Vec) Vec { return Vec{-v.Y, v.X} }

// TurnRight rotates v by −90°.
func TurnRight(v Vec) Vec { return Vec{v.Y, -v.X} }

// quarterTurns returns how many left turns carry heading h onto North,
// or -1 when h is not a unit heading.
func quarterTurns(h Vec) int {
	switch h {
	case North:
		return 0
	case East:
		return 1
	case South:
		return 2
	case West:
		return 3
	default:
		return -1
	}
}

// Unrotate expresses v in the local frame of a walker facing heading h,
// i.e. it applies the rotation that carries h onto North. A walker facing h
// that needs to reach displacement v sees the same problem as a walker facing
// North that needs to reach Unrotate(v, h).
//
// h must be a unit heading; any other value returns v unchanged.
func Unrotate(v, h Vec) Vec {
	n := quarterTurns(h)
	for i := 0; i < n; i++ {
		v = TurnLeft(v)
	}
	return v
}

// Rotate is the inverse of Unrotate: Rotate(Unrotate(v, h), h) == v.
func Rotate(v, h Vec) Vec {
	n := quarterTurns(h)
	for i := 0; i < n; i++ {
		v = TurnRight(v)
	}
	return v
}
