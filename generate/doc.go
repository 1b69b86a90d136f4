// Package generate builds uniquely-solvable puzzles at a requested
// difficulty tier.
//
// # What
//
// Generate runs a carve-and-rate pipeline:
//
//  1. Fill the three diagonal blocks with independent shuffles (they
//     share no house, so any shuffle is legal) and complete the grid
//     with a randomized backtracking solve.
//  2. Remove givens in shuffled symmetric orbits, keeping the puzzle
//     uniquely solvable after every removal and never dropping below
//     the tier's minimum clue count.
//  3. Rate the carved puzzle with the technique dispatcher and accept
//     it when the rating lands in the tier's band.
//
// Attempts repeat up to a per-tier budget. When the budget runs out
// the closest-rated attempt is returned instead of an error; only a
// run that never produced a unique puzzle fails with
// ErrGenerationFailed.
//
// # Determinism
//
// The whole pipeline draws from a single seeded source: equal Options
// (including Seed) produce byte-identical puzzles. A zero Seed picks a
// fresh one from the clock and records it in the result, so any
// generated puzzle can be regenerated later.
//
// # Complexity
//
// One attempt costs O(81) removals, each bounded by a uniqueness check
// (exponential worst case, fast in practice), plus one dispatcher
// solve for the rating.
//
// # Errors
//
//   - ErrGenerationFailed - no attempt yielded a unique puzzle.
//   - context errors are returned as-is when the context ends first.
package generate
