package walk_test

import (
	"fmt"

	"github.com/katalvlaran/tubegen/walk"
)

// ExamplePath_Walk shows how Forward consumes two lattice units while turns
// consume one, and how a closed rectangle reports its winding.
func ExamplePath_Walk() {
	loop := walk.Path{walk.Forward, walk.Right, walk.Right, walk.Forward, walk.Right, walk.Right}

	fmt.Println(loop)
	fmt.Println(loop.Walk(walk.North))
	fmt.Println("loop:", loop.TestLoop(), "winding:", loop.Winding())

	// Output:
	// 2RR2RR
	// [{0 0} {0 1} {0 2} {0 3} {1 3} {1 2} {1 1} {1 0} {0 0}]
	// loop: true winding: 4
}

// ExampleUnrotate re-expresses a goal seen by an East-facing walker in the
// canonical North-facing frame.
func ExampleUnrotate() {
	goal := walk.Vec{X: 3, Y: 1}
	local := walk.Unrotate(goal, walk.East)
	fmt.Println(local, walk.Rotate(local, walk.East))

	// Output:
	// {-1 3} {3 1}
}
