package solve

import "github.com/katalvlaran/sudoku/board"

// Locked candidates: size-1 fish between a block and a line.
//
//   - Pointing: all of a block's candidates for a digit lie on one line →
//     the digit leaves the rest of that line.
//   - Claiming: all of a line's candidates for a digit lie in one block →
//     the digit leaves the rest of that block.

func findPointing(f *fabric) []Move {
	for d := uint8(1); d <= 9; d++ {
		for b := 0; b < board.GridSize; b++ {
			base := board.BlockHouse(b)
			if m := lockedMove(f, Pointing, base, d, lineHouses()); m != nil {
				return m
			}
		}
	}
	return nil
}

func findClaiming(f *fabric) []Move {
	for d := uint8(1); d <= 9; d++ {
		for _, base := range lineHouses() {
			if m := lockedMove(f, Claiming, base, d, blockHouses()); m != nil {
				return m
			}
		}
	}
	return nil
}

// lockedMove reports the first elimination where every base-house
// candidate for d sits inside one cover house, in stable scan order.
func lockedMove(f *fabric, t Technique, base board.House, d uint8, covers []board.House) []Move {
	baseMask := f.candMask(base, d)
	n := baseMask.count()
	if n < 2 || n > 3 {
		return nil
	}
	for _, cover := range covers {
		coverMask := f.candMask(cover, d)
		if !baseMask.andNot(coverMask).empty() {
			continue
		}
		elims := coverMask.andNot(baseMask)
		if elims.empty() {
			continue
		}
		cell := elims.cells()[0]
		return []Move{elimination(t, cell, []uint8{d}, baseMask.cells(), base, cover)}
	}
	return nil
}

func lineHouses() []board.House {
	out := make([]board.House, 0, 18)
	for i := 0; i < board.GridSize; i++ {
		out = append(out, board.RowHouse(i))
	}
	for i := 0; i < board.GridSize; i++ {
		out = append(out, board.ColHouse(i))
	}
	return out
}

func blockHouses() []board.House {
	out := make([]board.House, 0, 9)
	for i := 0; i < board.GridSize; i++ {
		out = append(out, board.BlockHouse(i))
	}
	return out
}
