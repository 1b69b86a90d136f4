package solve

import "github.com/katalvlaran/sudoku/board"

// Uniqueness-based engines. All three assume the puzzle has exactly one
// solution: a candidate assignment that would complete a deadly
// pattern (two rows, two columns, two blocks, two interchangeable
// digits) cannot be part of it. The dispatcher only runs these when
// the caller vouches for uniqueness.

// findUniqueRectangle reports the first type 1 or type 2 rectangle.
// Type 1: three corners bivalue on the same pair, so the pair falls
// from the fourth corner. Type 2: a bivalue floor and a roof pair each
// carrying one identical extra digit, which falls from every cell
// seeing both roof corners.
func findUniqueRectangle(f *fabric) []Move {
	rects := rectangles(f)
	for _, rect := range rects {
		for roof := 0; roof < 4; roof++ {
			pair := board.Candidates(0)
			floor := true
			for i, cell := range rect {
				if i == roof {
					continue
				}
				m := f.cands[cell]
				if m.Count() != 2 || (pair != 0 && m != pair) {
					floor = false
					break
				}
				pair = m
			}
			if !floor {
				continue
			}
			rc := rect[roof]
			if f.cands[rc]&pair != pair || f.cands[rc] == pair {
				continue
			}
			others := make([]int, 0, 3)
			for i, cell := range rect {
				if i != roof {
					others = append(others, cell)
				}
			}
			return []Move{elimination(UniqueRectangle, rc, pair.Digits(), others)}
		}
	}
	for _, rect := range rects {
		// Roof corners share a row or a column: index pairs (0,1),
		// (2,3), (0,2), (1,3) in reading order.
		for _, roof := range [][2]int{{0, 1}, {2, 3}, {0, 2}, {1, 3}} {
			a, b := rect[roof[0]], rect[roof[1]]
			fa, fb := rect[3-roof[0]], rect[3-roof[1]]
			pair := f.cands[fa]
			if pair.Count() != 2 || f.cands[fb] != pair {
				continue
			}
			if f.cands[a] != f.cands[b] || f.cands[a].Count() != 3 || f.cands[a]&pair != pair {
				continue
			}
			z := (f.cands[a] &^ pair).Lowest()
			corners := []int{rect[0], rect[1], rect[2], rect[3]}
			for cell := 0; cell < board.CellCount; cell++ {
				if f.values[cell] != 0 || !f.cands[cell].Has(z) || contains(corners, cell) {
					continue
				}
				if board.Sees(cell, a) && board.Sees(cell, b) {
					return []Move{elimination(UniqueRectangle, cell, []uint8{z}, corners)}
				}
			}
		}
	}
	return nil
}

// findHiddenRectangle reports the first hidden rectangle: one bivalue
// corner {x, y}, and y confined to the rectangle in the opposite
// corner's row and column, which bars x from that corner.
func findHiddenRectangle(f *fabric) []Move {
	for _, rect := range rectangles(f) {
		for bi, base := range rect {
			bm := f.cands[base]
			if bm.Count() != 2 {
				continue
			}
			opp := rect[3-bi]
			if f.cands[opp]&bm != bm {
				continue
			}
			side1, side2 := rect[sideIndex(bi, true)], rect[sideIndex(bi, false)]
			if f.cands[side1]&bm != bm || f.cands[side2]&bm != bm {
				continue
			}
			ds := bm.Digits()
			for k, y := range ds {
				x := ds[1-k]
				or := board.PositionOf(opp).Row
				oc := board.PositionOf(opp).Col
				if f.candCount(board.RowHouse(or), y) != 2 || f.candCount(board.ColHouse(oc), y) != 2 {
					continue
				}
				others := make([]int, 0, 3)
				for _, cell := range rect {
					if cell != opp {
						others = append(others, cell)
					}
				}
				return []Move{elimination(HiddenRectangle, opp, []uint8{x}, others)}
			}
		}
	}
	return nil
}

// findBUG reports the BUG+1 placement: every unsolved cell bivalue
// except one trivalue cell. A digit of that cell is placed when
// stripping it would leave a bivalue universal grave, which a uniquely
// solvable grid cannot reach.
func findBUG(f *fabric) []Move {
	extra := -1
	for cell := 0; cell < board.CellCount; cell++ {
		if f.values[cell] != 0 {
			continue
		}
		switch f.cands[cell].Count() {
		case 2:
		case 3:
			if extra >= 0 {
				return nil
			}
			extra = cell
		default:
			return nil
		}
	}
	if extra < 0 {
		return nil
	}
	for _, d := range f.cands[extra].Digits() {
		if graveWithout(f, extra, d) {
			return []Move{placement(BivalueUniversalGrave, extra, d, []int{extra})}
		}
	}
	return nil
}

// graveWithout reports whether stripping d from the trivalue cell
// leaves a true grave: every remaining candidate appears exactly twice
// or not at all in each of the 27 houses. Only then is the placement
// forced; an odd count in the cell's own houses alone is not enough.
func graveWithout(f *fabric, cell int, d uint8) bool {
	houses := board.CellHouses(cell)
	for h := board.House(0); h < board.NumHouses; h++ {
		own := h == houses[0] || h == houses[1] || h == houses[2]
		for dd := uint8(1); dd <= 9; dd++ {
			n := f.candCount(h, dd)
			if own && dd == d {
				n--
			}
			if n != 0 && n != 2 {
				return false
			}
		}
	}
	return true
}

// rectangles enumerates four-cell rectangles spanning exactly two
// blocks with every corner unsolved. Corners come back in reading
// order: (r1c1, r1c2, r2c1, r2c2).
func rectangles(f *fabric) [][4]int {
	var out [][4]int
	for r1 := 0; r1 < board.GridSize; r1++ {
		for r2 := r1 + 1; r2 < board.GridSize; r2++ {
			for c1 := 0; c1 < board.GridSize; c1++ {
				for c2 := c1 + 1; c2 < board.GridSize; c2++ {
					rect := [4]int{
						r1*board.GridSize + c1, r1*board.GridSize + c2,
						r2*board.GridSize + c1, r2*board.GridSize + c2,
					}
					blocks := map[int]bool{}
					ok := true
					for _, cell := range rect {
						if f.values[cell] != 0 {
							ok = false
							break
						}
						blocks[board.PositionOf(cell).Block()] = true
					}
					if ok && len(blocks) == 2 {
						out = append(out, rect)
					}
				}
			}
		}
	}
	return out
}

// sideIndex maps a corner index to the corner sharing its row (or its
// column) in the reading-order rectangle layout.
func sideIndex(corner int, sameRow bool) int {
	if sameRow {
		return corner ^ 1
	}
	return corner ^ 2
}
