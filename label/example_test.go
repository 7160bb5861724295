package label_test

import (
	"fmt"

	"github.com/katalvlaran/tubegen/gridgraph"
	"github.com/katalvlaran/tubegen/label"
)

func ExampleLabeling_Scheme() {
	g, _ := gridgraph.FromRows([]string{
		`\<>  /`,
		` >  / `,
		`/  /  `,
		`\ <   `,
		` > \  `,
		`/   \^`,
	})
	l, err := label.Apply(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(l.Tubes.Grid)
	fmt.Println(l.Scheme())
	// Output:
	// ┌13--┐
	// |2--┐|
	// └--┐||
	// ┌-2|||
	// |1-┘||
	// └---┘3
	// -02----1------------1----0---------2
}
