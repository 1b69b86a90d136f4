package verify

import (
	"math/rand"

	"github.com/katalvlaran/sudoku/board"
)

// search is a compact working state: values plus live candidate masks.
// It deliberately bypasses *board.Grid during recursion — the verifier
// is on the generator's hot path and must not allocate per branch.
type search struct {
	values [board.CellCount]uint8
	cands  [board.CellCount]board.Candidates
}

func newSearch(g *board.Grid) *search {
	s := &search{}
	for idx := 0; idx < board.CellCount; idx++ {
		p := board.PositionOf(idx)
		s.values[idx] = g.Value(p)
		// Stored candidate sets are honored, not rebuilt: eliminations a
		// caller has applied constrain the count (monotonically).
		s.cands[idx] = g.CandidatesAt(p)
	}
	return s
}

// assign places d at idx and strips it from peers, recording touched
// peers in undo for cheap rollback. Returns false on a contradiction
// (some peer left with no candidates).
func (s *search) assign(idx int, d uint8, undo *[]int) bool {
	s.values[idx] = d
	ok := true
	for _, peer := range board.Peers(idx) {
		if s.values[peer] == 0 && s.cands[peer].Has(d) {
			s.cands[peer] = s.cands[peer].Remove(d)
			*undo = append(*undo, peer)
			if s.cands[peer] == 0 {
				ok = false
			}
		}
	}
	return ok
}

func (s *search) unassign(idx int, d uint8, undo []int) {
	s.values[idx] = 0
	for _, peer := range undo {
		s.cands[peer] = s.cands[peer].Add(d)
	}
}

// mrvCell returns the empty cell with the fewest candidates, or -1 when
// the grid is full. A 0-candidate cell is returned immediately: the
// branch is dead.
func (s *search) mrvCell() int {
	best, bestN := -1, 10
	for idx := 0; idx < board.CellCount; idx++ {
		if s.values[idx] != 0 {
			continue
		}
		n := s.cands[idx].Count()
		if n == 0 {
			return idx
		}
		if n < bestN {
			best, bestN = idx, n
			if n == 1 {
				break
			}
		}
	}
	return best
}

// CountSolutions reports the number of distinct completions of g,
// capped at cap (cap must be ≥ 1; the classic contract is cap=2, where
// 2 means "at least two"). The search stops the instant the cap is
// reached — an all-empty grid with cap=2 returns almost immediately.
func CountSolutions(g *board.Grid, cap int) int {
	if cap < 1 {
		cap = 1
	}
	s := newSearch(g)
	count := 0
	s.countRecursive(&count, cap)
	return count
}

func (s *search) countRecursive(count *int, cap int) {
	idx := s.mrvCell()
	if idx < 0 {
		*count++
		return
	}
	cands := s.cands[idx]
	if cands == 0 {
		return
	}
	undo := make([]int, 0, 20)
	for _, d := range cands.Digits() {
		undo = undo[:0]
		if s.assign(idx, d, &undo) {
			s.countRecursive(count, cap)
		}
		s.unassign(idx, d, undo)
		if *count >= cap {
			return
		}
	}
}

// FirstSolution completes g to any one full solution, returning the
// solved grid and true, or nil and false when none exists. When rng is
// non-nil, digit order is shuffled per cell, yielding a uniformly
// random completion of an empty grid; with rng nil the result is the
// deterministic lowest-digit-first solution.
func FirstSolution(g *board.Grid, rng *rand.Rand) (*board.Grid, bool) {
	s := newSearch(g)
	if !s.solveRecursive(rng) {
		return nil, false
	}
	out := board.NewGrid()
	for idx := 0; idx < board.CellCount; idx++ {
		if _, err := out.Place(board.PositionOf(idx), s.values[idx]); err != nil {
			panic("verify: backtracking produced an inconsistent solution: " + err.Error())
		}
	}
	return out, true
}

func (s *search) solveRecursive(rng *rand.Rand) bool {
	idx := s.mrvCell()
	if idx < 0 {
		return true
	}
	digits := s.cands[idx].Digits()
	if len(digits) == 0 {
		return false
	}
	if rng != nil {
		rng.Shuffle(len(digits), func(i, j int) { digits[i], digits[j] = digits[j], digits[i] })
	}
	undo := make([]int, 0, 20)
	for _, d := range digits {
		undo = undo[:0]
		if s.assign(idx, d, &undo) && s.solveRecursive(rng) {
			return true
		}
		s.unassign(idx, d, undo)
	}
	return false
}

// IsUnique is shorthand for CountSolutions(g, 2) == 1.
func IsUnique(g *board.Grid) bool { return CountSolutions(g, 2) == 1 }
