package board

import "fmt"

// Grid is the 81-cell store: placed values, given flags and per-cell
// candidate sets, plus a per-house index of placed digits. The zero
// value is not usable; construct with NewGrid or Parse.
//
// Grid is not safe for concurrent mutation; each solving or generation
// attempt owns its Grid.
type Grid struct {
	values [CellCount]uint8
	given  [CellCount]bool
	cands  [CellCount]Candidates
	// placed[h] is the set of digits already placed in house h,
	// a denormalized cache giving O(1) conflict checks.
	placed [NumHouses]Candidates
}

// NewGrid returns an empty grid with all 9 candidates open in every cell.
func NewGrid() *Grid {
	g := &Grid{}
	for i := range g.cands {
		g.cands[i] = AllCandidates
	}
	return g
}

// Clone returns a deep copy. Grids are value-sized, so this is a plain
// struct copy.
func (g *Grid) Clone() *Grid {
	dup := *g
	return &dup
}

// Value returns the placed digit at p, or 0 if the cell is empty.
func (g *Grid) Value(p Position) uint8 { return g.values[p.Index()] }

// IsGiven reports whether the cell at p is a fixed given.
func (g *Grid) IsGiven(p Position) bool { return g.given[p.Index()] }

// CandidatesAt returns the candidate set of the cell at p. Filled cells
// have an empty set.
func (g *Grid) CandidatesAt(p Position) Candidates { return g.cands[p.Index()] }

// EmptyCount returns the number of unfilled cells.
func (g *Grid) EmptyCount() int {
	n := 0
	for _, v := range g.values {
		if v == 0 {
			n++
		}
	}
	return n
}

// GivenCount returns the number of fixed given cells.
func (g *Grid) GivenCount() int {
	n := 0
	for _, f := range g.given {
		if f {
			n++
		}
	}
	return n
}

// IsComplete reports whether all 81 cells are filled.
func (g *Grid) IsComplete() bool { return g.EmptyCount() == 0 }

// Place writes digit d (1..9) into the empty or previously placed cell
// at p. It fails with ErrGivenConflict when the cell is a fixed given
// and with ErrRuleViolation when d already occupies one of the cell's
// three houses. On success the digit is removed from the candidate set
// of every peer, and the positions whose state changed (the cell itself
// first, then affected peers in index order) are returned.
func (g *Grid) Place(p Position, d uint8) ([]Position, error) {
	if d < 1 || d > 9 {
		return nil, fmt.Errorf("%w: digit %d", ErrRuleViolation, d)
	}
	idx := p.Index()
	if g.given[idx] {
		return nil, ErrGivenConflict
	}
	for _, h := range cellHouses[idx] {
		if g.placed[h].Has(d) && g.values[idx] != d {
			return nil, fmt.Errorf("%w: %d in %s", ErrRuleViolation, d, h)
		}
	}

	changed := make([]Position, 0, 21)
	changed = append(changed, p)
	g.setValue(idx, d)
	for _, peer := range peers[idx] {
		if g.values[peer] == 0 && g.cands[peer].Has(d) {
			g.cands[peer] = g.cands[peer].Remove(d)
			changed = append(changed, PositionOf(peer))
		}
	}
	g.assertHouseInvariant(idx)
	return changed, nil
}

// SetGiven fixes digit d at p as an immutable given. Same rule checks
// as Place; used by Parse and the generator while shaping puzzles.
func (g *Grid) SetGiven(p Position, d uint8) error {
	idx := p.Index()
	wasGiven := g.given[idx]
	g.given[idx] = false
	if _, err := g.Place(p, d); err != nil {
		g.given[idx] = wasGiven
		return err
	}
	g.given[idx] = true
	return nil
}

// Clear empties the cell at p, releasing its given flag if set. Candidate
// sets are stale after Clear; callers batch Clears and finish with
// RecomputeCandidates (the generator's removal loop does exactly this).
func (g *Grid) Clear(p Position) {
	idx := p.Index()
	if d := g.values[idx]; d != 0 {
		for _, h := range cellHouses[idx] {
			g.placed[h] = g.placed[h].Remove(d)
		}
	}
	g.values[idx] = 0
	g.given[idx] = false
}

// RemoveCandidate removes digit d from the candidate set of the empty
// cell at p, reporting whether the set changed.
func (g *Grid) RemoveCandidate(p Position, d uint8) bool {
	idx := p.Index()
	if g.values[idx] != 0 || !g.cands[idx].Has(d) {
		return false
	}
	g.cands[idx] = g.cands[idx].Remove(d)
	return true
}

// RecomputeCandidates rebuilds every empty cell's candidate set from the
// placed digits alone, discarding any technique-derived eliminations.
func (g *Grid) RecomputeCandidates() {
	for idx := 0; idx < CellCount; idx++ {
		if g.values[idx] != 0 {
			g.cands[idx] = 0
			continue
		}
		c := AllCandidates
		for _, h := range cellHouses[idx] {
			c &^= g.placed[h]
		}
		g.cands[idx] = c
	}
}

// HasConflict reports whether any house currently holds a duplicate
// placed digit, or any empty cell has no remaining candidate.
func (g *Grid) HasConflict() bool {
	for h := House(0); h < NumHouses; h++ {
		var seen Candidates
		for _, idx := range houseCells[h] {
			d := g.values[idx]
			if d == 0 {
				continue
			}
			if seen.Has(d) {
				return true
			}
			seen = seen.Add(d)
		}
	}
	for idx := 0; idx < CellCount; idx++ {
		if g.values[idx] == 0 && g.cands[idx] == 0 {
			return true
		}
	}
	return false
}

// Equal reports whether both grids hold identical values, given flags
// and candidate sets.
func (g *Grid) Equal(o *Grid) bool {
	return g.values == o.values && g.given == o.given && g.cands == o.cands
}

// PlacedIn returns the set of digits placed in house h.
func (g *Grid) PlacedIn(h House) Candidates { return g.placed[h] }

// setValue writes d at idx and maintains the per-house placed index.
func (g *Grid) setValue(idx int, d uint8) {
	if old := g.values[idx]; old != 0 {
		for _, h := range cellHouses[idx] {
			g.placed[h] = g.placed[h].Remove(old)
		}
	}
	g.values[idx] = d
	g.cands[idx] = 0
	for _, h := range cellHouses[idx] {
		g.placed[h] = g.placed[h].Add(d)
	}
}

// assertHouseInvariant panics when a house holds a duplicate after an
// accepted placement. Reaching it means Place's checks are broken — a
// programming error, not a recoverable condition.
func (g *Grid) assertHouseInvariant(idx int) {
	for _, h := range cellHouses[idx] {
		var seen Candidates
		for _, cell := range houseCells[h] {
			d := g.values[cell]
			if d == 0 {
				continue
			}
			if seen.Has(d) {
				panic(fmt.Sprintf("board: duplicate digit %d in %s after accepted placement", d, h))
			}
			seen = seen.Add(d)
		}
	}
}
