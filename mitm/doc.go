// Package mitm implements the meet-in-the-middle path index the tube
// generator assembles its walls from.
//
// What:
//
//   - Build enumerates, by exhaustive backtracking depth-first search from
//     walk.Origin, every self-avoiding Path whose cost fits a budget, and
//     indexes it by the Pose it ends in. Left and Right cost TurnPrice,
//     Forward costs StraightPrice and is only taken when the cell one ahead
//     is free.
//   - Lookup rotates a remaining displacement and target heading into the
//     canonical (North-facing) frame and returns the completions recorded for
//     that canonical pose, so entries built from one heading serve all four.
//   - RandPath2 grows a random prefix step by step (sampling steps with the
//     weights 1/TurnPrice, 1/TurnPrice, 2/StraightPrice) and stops as soon
//     as Lookup offers a completion to the target pose.
//   - RandLoop joins a random entry with a completion back to walk.Origin,
//     optionally requiring a chirality (winding +4 or −4).
//   - RandPath joins two uniformly drawn halves.
//
// Why:
//
//   - Walls of a tube puzzle are long self-avoiding lattice walks; searching
//     them directly is exponential, joining two short indexed halves is not.
//
// Complexity:
//
//   - Build:  O(E·L) time and memory for E enumerated entries of length ≤ L;
//     E grows roughly like 2^(Budget/min(price)).
//   - Lookup: O(1).
//   - Rand*:  Las-Vegas; each attempt is O(L) map probes plus a Test.
//
// Errors:
//
//   - ErrInvalidPrice:       TurnPrice or StraightPrice not positive.
//   - ErrNegativeBudget:     Budget < 0.
//   - ErrAttemptsExhausted:  a Rand* call used its attempt cap without success.
//   - context errors from Build when ctx is cancelled.
//
// Concurrency:
//
//   - An Index is immutable once Build returns and is safe to share between
//     goroutines. The *rand.Rand passed to Rand* is not; give every goroutine
//     its own.
package mitm
