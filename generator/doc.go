// Package generator assembles tube puzzles from a mitm.Index.
//
// An attempt runs through these states:
//
//	Empty → BordersDrawn → (LoopPatch)* → Accepted
//
//  1. An empty (2W+1)×(2H+1) working grid is allocated.
//  2. A border wall is drawn from the top-left corner down the left edge and
//     a second one from the bottom-right corner up the right edge, both with
//     Index.RandPath2. The four extreme corners get fixed glyphs.
//  3. The acceptance test shrinks the grid, extracts its tubes and requires
//     MinPairs ≤ pairs ≤ MaxPairs with no loops, no adjacent solved pair and
//     no triple junction.
//  4. While not accepted, up to LoopTries random interior loops are patched
//     over straight tube segments, re-running the acceptance test after each.
//
// A rejected border, an exhausted insertion budget or a pair count above
// MaxPairs restarts the attempt from Empty. After MaxAttempts restarts
// Generate gives up with ErrGenerationFailed.
//
// Determinism: the same Index, options and seed produce the same puzzle.
// GenerateBatch derives one independent stream per puzzle from the base seed,
// so a batch is reproducible regardless of worker scheduling.
package generator
