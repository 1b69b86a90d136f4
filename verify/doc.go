// Package verify proves solution counts for 9×9 grids by exhaustive
// constraint-propagating backtracking, entirely independent of the
// human-technique pipeline in package solve.
//
// What:
//
//   - CountSolutions(g, cap) reports 0, 1 or cap ("at least cap")
//     distinct completions. The generator calls it with cap=2 after
//     every clue removal, so the search short-circuits the instant a
//     second solution appears and prunes dead branches early.
//   - FirstSolution completes a grid to any one full solution, with an
//     optional rand source to shuffle digit order (the generator uses
//     this to produce random complete grids).
//
// Why independent:
//
//   - Uniqueness-assuming techniques (unique rectangles, BUG) are only
//     sound on grids already proven unique. Proving uniqueness with an
//     engine that assumes it would be circular, so this package never
//     consults package solve, and solve never calls back into it.
//
// Algorithm:
//
//   - Minimum-remaining-values branching: always split on the cell with
//     the fewest open candidates; propagate forced placements between
//     branchings. Worst case exponential, but a cap of 2 plus MRV makes
//     the generation-time workload (tens of calls per puzzle) cheap.
package verify
