package solve

import "github.com/katalvlaran/sudoku/board"

// fabric is the read-only dual-indexed candidate view every engine
// detects against: per-cell candidate sets plus, per house and digit,
// the bitmask of in-house positions still open for that digit. It is
// rebuilt from the grid once per dispatcher step; engines never mutate
// it, which is what makes detectors pure and stably ordered.
type fabric struct {
	values [board.CellCount]uint8
	cands  [board.CellCount]board.Candidates
	// houseDigit[h][d-1]: bits 0..8 over the house's scan positions that
	// still hold candidate d.
	houseDigit [board.NumHouses][9]uint16
}

func newFabric(g *board.Grid) *fabric {
	f := &fabric{}
	for idx := 0; idx < board.CellCount; idx++ {
		p := board.PositionOf(idx)
		f.values[idx] = g.Value(p)
		f.cands[idx] = g.CandidatesAt(p)
	}
	for h := board.House(0); h < board.NumHouses; h++ {
		for slot, idx := range board.HouseCells(h) {
			if f.values[idx] != 0 {
				continue
			}
			for _, d := range f.cands[idx].Digits() {
				f.houseDigit[h][d-1] |= 1 << uint(slot)
			}
		}
	}
	return f
}

// candCount returns how many cells of house h still hold candidate d.
func (f *fabric) candCount(h board.House, d uint8) int {
	m := f.houseDigit[h][d-1]
	n := 0
	for m != 0 {
		m &= m - 1
		n++
	}
	return n
}

// houseCandCells returns the cell indices of house h holding candidate
// d, in house scan order.
func (f *fabric) houseCandCells(h board.House, d uint8) []int {
	cells := board.HouseCells(h)
	mask := f.houseDigit[h][d-1]
	out := make([]int, 0, 9)
	for slot := 0; slot < board.GridSize; slot++ {
		if mask&(1<<uint(slot)) != 0 {
			out = append(out, cells[slot])
		}
	}
	return out
}

// candMask returns the 81-cell bitmask of house h's cells holding
// candidate d.
func (f *fabric) candMask(h board.House, d uint8) cellSet {
	var s cellSet
	for _, idx := range f.houseCandCells(h, d) {
		s.add(idx)
	}
	return s
}

// emptyCellsIn returns the empty cell indices of house h in scan order.
func (f *fabric) emptyCellsIn(h board.House) []int {
	out := make([]int, 0, 9)
	for _, idx := range board.HouseCells(h) {
		if f.values[idx] == 0 {
			out = append(out, idx)
		}
	}
	return out
}
