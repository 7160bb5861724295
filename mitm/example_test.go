package mitm_test

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/tubegen/mitm"
	"github.com/katalvlaran/tubegen/walk"
)

// ExampleBuild enumerates the default index and prints its size.
func ExampleBuild() {
	idx, err := mitm.Build(context.Background(), mitm.DefaultConfig())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	st := idx.Stats()
	fmt.Println(st.Entries, st.Poses, st.LongestPath)
	// Output: 85 75 6
}

// ExampleIndex_RandLoop draws a clockwise loop through the origin.
func ExampleIndex_RandLoop() {
	idx, _ := mitm.Build(context.Background(), mitm.DefaultConfig())
	loop, err := idx.RandLoop(rand.New(rand.NewSource(1)), mitm.Clockwise)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(loop.Winding(), loop.TestLoop(), loop.End(walk.Origin) == walk.Origin)
	// Output: 4 true true
}
