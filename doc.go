// Package tubegen generates tube puzzles: grids of diagonal walls whose gaps
// form tubes, each tube showing the player exactly two labelled ends.
//
// What is in the module?
//
//	walk/      : steps, headings, poses, rotation algebra, Path walk & tests
//	unionfind/ : generic disjoint set with path compression
//	gridgraph/ : sparse double-resolution Grid, path drawing, tube extraction
//	mitm/      : meet-in-the-middle index of short walks, random path & loop assembly
//	generator/ : attempt state machine, acceptance test, batch generation
//	label/     : tube labels, palette slots, flattened scheme string
//	render/    : coloured terminal rendering (lipgloss)
//	config/    : tubegen.yaml loading and validation
//	cmd/tubegen: CLI: generate, index, version
//
// Quick ASCII example, a 6×6 puzzle and its tubes:
//
//	\<>  /      ┌13--┐
//	 >  /       |2--┐|
//	/  /        └--┐||
//	\ <         ┌-2|||
//	 > \        |1-┘||
//	/   \^      └---┘3
//
// The scheme of that puzzle, row by row with labels shifted to start at '0':
//
//	-02----1------------1----0---------2
//
//	go install github.com/katalvlaran/tubegen/cmd/tubegen@latest
package tubegen
