// Package gridgraph implements the sparse, double-resolution puzzle grid the
// tube generator draws on, and the extraction of its tube connectivity.
//
// What:
//
//   - Grid maps integer coordinates to glyphs. Absent coordinates read as
//     Blank, so intermediate coordinates never need fixed bounds; only
//     TestPath enforces Width×Height.
//   - Odd coordinates are puzzle cells, even coordinates are the wall/gap
//     positions between them. Shrink samples the odd coordinates into a
//     grid at puzzle-cell resolution.
//   - Paths from package walk are embedded diagonally:
//     (x,y) → (origin.X − x + y, origin.Y + x + y).
//     DrawPath writes one glyph per interior walk point: '\' or '/' for a
//     straight crossing, one of '<' '>' '^' 'v' for a turn.
//   - MakeTubes scans column by column, top to bottom, carrying a two-valued
//     orientation flag that flips on '\' '/' 'v' '^'. A fixed transition
//     table keyed by (glyph, orientation) decides which neighbours share a
//     connectivity group and which tube glyph the cell gets:
//
//     ┐ ┌ └ ┘  corners    - |  straight connectors    x  tube end
//
//   - Tubes pairs the tube grid with its union-find and answers the
//     acceptance predicates HasLoops, HasPair and HasTriple.
//
// Complexity:
//
//   - TestPath, DrawPath: O(n) for an n-step path.
//   - MakeTubes, Shrink, predicates: O(W×H).
//   - ClearPath: O(W×H) (it extracts the tubes of a scratch grid).
//
// Errors:
//
//   - ErrInvalidSize:   non-positive grid dimensions.
//   - ErrNotLoop:       DrawPath(loop=true) on a walk that does not close.
//   - ErrMalformedPath: a walk point has no glyph (the walk reverses or
//     repeats a position). Nothing is written when this is returned.
//
// A Grid is owned by a single generation attempt and is not safe for
// concurrent mutation.
package gridgraph
