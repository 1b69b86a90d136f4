package solve

import "github.com/katalvlaran/sudoku/board"

// Naked and hidden subsets of sizes 2..4 within a single house.
//
// A naked subset is n cells whose candidate union has exactly n digits:
// those digits leave every other cell of the house. A hidden subset is
// n digits confined to n cells: every other digit leaves those cells.

func findNakedSubset(f *fabric, size int) []Move {
	t := nakedSubsetTechnique(size)
	for h := board.House(0); h < board.NumHouses; h++ {
		empty := f.emptyCellsIn(h)
		if len(empty) <= size {
			continue // removing anything would leave nothing to eliminate from
		}
		for _, combo := range combinations(len(empty), size) {
			var union board.Candidates
			cells := make([]int, 0, size)
			for _, i := range combo {
				union |= f.cands[empty[i]]
				cells = append(cells, empty[i])
			}
			if union.Count() != size {
				continue
			}
			for _, idx := range empty {
				if contains(cells, idx) {
					continue
				}
				if strip := f.cands[idx] & union; strip != 0 {
					return []Move{elimination(t, idx, strip.Digits(), cells, h)}
				}
			}
		}
	}
	return nil
}

func findHiddenSubset(f *fabric, size int) []Move {
	t := hiddenSubsetTechnique(size)
	for h := board.House(0); h < board.NumHouses; h++ {
		// Digits still open in this house with at least one candidate cell.
		open := make([]uint8, 0, 9)
		for d := uint8(1); d <= 9; d++ {
			if n := f.candCount(h, d); n >= 2 && n <= size {
				open = append(open, d)
			}
		}
		if len(open) < size {
			continue
		}
		for _, combo := range combinations(len(open), size) {
			var slots uint16
			var digits board.Candidates
			for _, i := range combo {
				slots |= f.houseDigit[h][open[i]-1]
				digits = digits.Add(open[i])
			}
			if popcount9(slots) != size {
				continue
			}
			houseCells := board.HouseCells(h)
			cells := make([]int, 0, size)
			for slot := 0; slot < board.GridSize; slot++ {
				if slots&(1<<uint(slot)) != 0 {
					cells = append(cells, houseCells[slot])
				}
			}
			for _, idx := range cells {
				if strip := f.cands[idx] &^ digits; strip != 0 {
					return []Move{elimination(t, idx, strip.Digits(), cells, h)}
				}
			}
		}
	}
	return nil
}

func nakedSubsetTechnique(size int) Technique {
	switch size {
	case 2:
		return NakedPair
	case 3:
		return NakedTriple
	default:
		return NakedQuad
	}
}

func hiddenSubsetTechnique(size int) Technique {
	switch size {
	case 2:
		return HiddenPair
	case 3:
		return HiddenTriple
	default:
		return HiddenQuad
	}
}

// combinations enumerates all k-element index subsets of 0..n-1 in
// lexicographic order. Engines rely on that order for determinism.
func combinations(n, k int) [][]int {
	if k <= 0 || k > n {
		return nil
	}
	var out [][]int
	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}
	for {
		out = append(out, append([]int(nil), idx...))
		i := k - 1
		for i >= 0 && idx[i] == n-k+i {
			i--
		}
		if i < 0 {
			return out
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}

func contains(xs []int, x int) bool {
	for _, v := range xs {
		if v == x {
			return true
		}
	}
	return false
}

func popcount9(m uint16) int {
	n := 0
	for m != 0 {
		m &= m - 1
		n++
	}
	return n
}
