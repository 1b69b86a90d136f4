package solve

import "github.com/katalvlaran/sudoku/board"

// findNakedSingle: an empty cell whose candidate set shrank to one
// digit. The cheapest deduction there is, and the backbone of every
// beginner-tier puzzle.
func findNakedSingle(f *fabric) []Move {
	for idx := 0; idx < board.CellCount; idx++ {
		if f.values[idx] != 0 {
			continue
		}
		if c := f.cands[idx]; c.Count() == 1 {
			return []Move{placement(NakedSingle, idx, c.Lowest(), nil)}
		}
	}
	return nil
}

// findHiddenSingle: a digit with exactly one remaining home within a
// house, regardless of how many candidates that cell still lists.
func findHiddenSingle(f *fabric) []Move {
	for h := board.House(0); h < board.NumHouses; h++ {
		for d := uint8(1); d <= 9; d++ {
			if f.candCount(h, d) != 1 {
				continue
			}
			idx := f.houseCandCells(h, d)[0]
			// A naked single is reported by the cheaper engine first;
			// only genuine hidden singles surface here.
			if f.cands[idx].Count() == 1 {
				continue
			}
			return []Move{placement(HiddenSingle, idx, d, nil, h)}
		}
	}
	return nil
}
