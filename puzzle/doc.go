// Package puzzle wraps generated puzzles into playable instances and
// gives them shareable identities.
//
// # What
//
//   - Instance - a live game: the givens, the player's grid, the
//     retained solution, an undo/redo move log, and mistake and hint
//     counters.
//   - ID / EncodeID / DecodeID - an 8-character share code (tier
//     letter plus a base-32 seed) that deterministically regenerates
//     the same puzzle on any machine.
//   - Cache - one pre-generated instance per tier, refilled in the
//     background, so handing out a new puzzle never waits for the
//     generator on the happy path.
//
// # Why
//
// Generation at the harder tiers can take a while; the cache keeps a
// ready instance per tier and regenerates behind the scenes whenever
// one is taken. The share code makes a puzzle portable without
// shipping the grid: tier and seed are enough to rebuild it.
//
// # Errors
//
//   - ErrInvalidCode / ErrInvalidSeed - malformed share codes.
//   - ErrNothingToUndo / ErrNothingToRedo - log cursor at its edge.
package puzzle
