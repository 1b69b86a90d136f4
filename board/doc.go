// Package board implements the grid/candidate store for classic 9×9
// constraint-grid puzzles.
//
// What:
//
//   - Grid holds 81 cells as flat arrays: placed values, given flags and
//     per-cell candidate sets (Candidates, a 9-bit mask).
//   - House topology (9 rows, 9 columns, 9 blocks) is a static arena:
//     cell→house membership, the 20 peers of every cell and per-house
//     placed-digit sets are precomputed, giving O(1) membership queries.
//   - Place enforces the rules (given cells are immutable, no digit twice
//     in a house) and propagates candidate removal to all peers.
//   - The canonical interchange form is an 81-character row-major string,
//     digits '1'..'9' for filled cells and '.' for empty ('0' is accepted
//     on input). Parse/String round-trip byte-for-byte.
//
// Why:
//
//   - Every downstream layer — technique engines, uniqueness verifier,
//     generator — reads this one store; keeping it flat and index-backed
//     makes those hot loops allocation-free.
//
// Invariants:
//
//   - An empty cell's candidate set never contains a digit already placed
//     in its row, column or block.
//   - No two cells in one house hold the same placed digit. A breach
//     after an accepted placement is a programming error and panics.
//
// Complexity:
//
//   - Place/RemoveCandidate/CandidatesAt: O(1) (Place touches 20 peers).
//   - Parse/String/Clone/RecomputeCandidates: O(81).
//
// Errors:
//
//   - ErrGivenConflict: placement attempted on a fixed given cell.
//   - ErrRuleViolation: the digit already occupies a shared house.
//   - ErrInvalidFormat: malformed 81-character serialization.
package board
