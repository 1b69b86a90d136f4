// Package sudoku is a deterministic engine for generating, validating,
// solving and difficulty-rating classic 9×9 constraint-grid puzzles.
//
// 🚀 What is sudoku?
//
//	A pure-Go library built around a human-style technique solver:
//		• Grid/candidate store: flat 81-cell arenas, per-house digit indices
//		• Technique engines: singles, locked candidates, subsets, fish
//		  (Basic/Franken/Mutant), wings, ALS chains, alternating inference
//		  chains, uniqueness-based eliminations
//		• Dispatcher: fixed precedence order, reproducible move trails,
//		  numeric difficulty ratings with named tiers
//		• Uniqueness verifier: MRV backtracking with a solution cap
//		• Generator: symmetric clue removal at a target difficulty band
//		• Share codes: a short code ↔ (tier, seed) bijection for
//		  deterministic regeneration
//
// ✨ Why choose this engine?
//
//   - Deterministic – identical grid and engine order always yield the
//     identical next move, so hints, ratings and trails are reproducible
//   - Explainable – every move carries its technique, weight and the
//     cells that justify it
//   - Pure computation – no I/O in the core, no hidden global state
//
// Packages, in dependency order:
//
//	board/    — cells, houses, candidates, canonical 81-char codec
//	solve/    — technique engines, dispatcher, rating policies, tiers
//	verify/   — exhaustive solution counting (independent of solve)
//	generate/ — bounded puzzle generation with symmetry modes
//	puzzle/   — play instances (undo/redo, hints), share codes, tier cache
//	cmd/      — a thin CLI front end (gen, rate, solve, code)
//
// Quick ASCII example:
//
//	5 3 . │ . 7 . │ . . .
//	6 . . │ 1 9 5 │ . . .
//	. 9 8 │ . . . │ . 6 .
//
//	is the top band of a classic puzzle in the canonical 81-char form
//	"530070000600195000098000060…" (dots or zeros mark empty cells).
//
//	go get github.com/katalvlaran/sudoku
package sudoku
