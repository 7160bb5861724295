// Package walk implements the step algebra shared by the tube generator:
// integer vectors and headings, poses, quarter-turn rotations, and Paths
// built from Forward/Left/Right steps together with their simulated walks.
//
// What:
//
//   - Vec:     an integer lattice vector; headings are the four unit Vecs.
//   - Pose:    position plus heading, the key type of the mitm search index.
//   - Step:    Forward (two lattice units, no rotation), Left, Right
//     (one lattice unit, then a ±90° rotation).
//   - Path:    an ordered Step sequence with Walk, End, Test, TestLoop, Winding.
//   - Unrotate/Rotate: re-express a vector in the frame of a heading and back.
//
// Walk semantics:
//
//	start at (0,0) facing the given heading and record it;
//	for every step advance one unit and record the position;
//	  Left/Right  → rotate the heading afterwards,
//	  Forward     → advance one more unit and record that position too.
//
// A Path is self-avoiding when every recorded position is distinct (Test).
// A closed Path may additionally share its first and last position
// (TestLoop). Winding is Right-count minus Left-count; a simple closed loop
// of quarter turns always winds ±4 (clockwise = +4).
//
// Complexity:
//
//   - Walk, Test, TestLoop, End: O(n) time and memory for n steps.
//   - Rotate, Unrotate: O(1).
//
// Everything in this package is pure; values are safe to share.
package walk
