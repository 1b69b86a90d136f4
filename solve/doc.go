// Package solve implements the human-style technique engines and the
// dispatcher that turns them into a solver, a hint source and a
// difficulty rater.
//
// What:
//
//   - Technique is a closed, exhaustively-enumerated family of deduction
//     patterns, each with a fixed numeric weight on the community 1.0–11.0
//     scale: singles, locked candidates, naked/hidden subsets, fish
//     (Basic/Franken/Mutant sector taxonomy, finned variants), wings,
//     almost-locked-set chains, alternating inference chains and
//     uniqueness-based eliminations.
//   - Every engine is a pure detector over a read-only candidate fabric:
//     detect(grid) → moves, never mutating, stably ordered for identical
//     input. A Move carries its technique, weight and justification cells.
//   - Solver runs engines lowest-weight-first, applies only the first
//     move of the first non-empty result, folds the weight into a running
//     rating and repeats: states Scanning → Applying → … → Solved│Stuck.
//     Stuck with unfilled cells is a legitimate terminal outcome
//     (ErrUnratable from Rate), not a failure.
//
// Determinism contract:
//
//   - Identical grid and engine order always produce the identical next
//     move. Hints, ratings and solve trails are therefore reproducible.
//
// Uniqueness gating:
//
//   - Unique-rectangle and BUG+1 eliminations are only sound on grids
//     already proven uniquely solvable. They run only when
//     Options.AssumeUnique is set by the caller (the generator sets it
//     after the verifier's proof); they are never consulted while
//     uniqueness itself is being established. See package verify.
//
// Rating:
//
//   - Aggregation is a pluggable RatingPolicy (MaxWeight by default,
//     WeightedSum as the alternative reading of the published bands);
//     Tier maps the scalar onto named difficulty bands.
//
// Errors:
//
//   - ErrStuck: no engine yields a move on an incomplete grid.
//   - ErrSolved: a step was requested on a completed grid.
//   - ErrUnratable: the dispatcher got stuck before completion, so no
//     full-trail rating exists.
package solve
