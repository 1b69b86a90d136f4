package solve

import "github.com/katalvlaran/sudoku/board"

// Candidate-level links. A node is one candidate digit in one cell,
// encoded as cell*9 + digit - 1. A strong link means "not A implies B"
// (the only two options somewhere); a weak link means "A implies not B"
// (the two cannot both hold). Every strong link is also weak.

const numNodes = board.CellCount * board.GridSize

func nodeOf(cell int, d uint8) int { return cell*board.GridSize + int(d) - 1 }
func nodeCell(n int) int           { return n / board.GridSize }
func nodeDigit(n int) uint8        { return uint8(n%board.GridSize) + 1 }

type linkGraph struct {
	strong [numNodes][]int
	weak   [numNodes][]int
}

func buildLinks(f *fabric) *linkGraph {
	g := &linkGraph{}
	addStrong := func(a, b int) {
		g.strong[a] = append(g.strong[a], b)
		g.strong[b] = append(g.strong[b], a)
	}
	addWeak := func(a, b int) {
		g.weak[a] = append(g.weak[a], b)
		g.weak[b] = append(g.weak[b], a)
	}

	for cell := 0; cell < board.CellCount; cell++ {
		if f.values[cell] != 0 {
			continue
		}
		ds := f.cands[cell].Digits()
		for i := 0; i < len(ds); i++ {
			for j := i + 1; j < len(ds); j++ {
				addWeak(nodeOf(cell, ds[i]), nodeOf(cell, ds[j]))
			}
		}
		if len(ds) == 2 {
			addStrong(nodeOf(cell, ds[0]), nodeOf(cell, ds[1]))
		}
	}
	for h := board.House(0); h < board.NumHouses; h++ {
		for d := uint8(1); d <= 9; d++ {
			cc := f.houseCandCells(h, d)
			for i := 0; i < len(cc); i++ {
				for j := i + 1; j < len(cc); j++ {
					addWeak(nodeOf(cc[i], d), nodeOf(cc[j], d))
				}
			}
			if len(cc) == 2 {
				addStrong(nodeOf(cc[0], d), nodeOf(cc[1], d))
			}
		}
	}
	return g
}

// weaklyLinked reports whether candidate (cell, d) is incompatible with
// the given node: same digit in a shared house, or another digit in the
// same cell.
func weaklyLinked(cell int, d uint8, n int) bool {
	if nodeCell(n) == cell {
		return nodeDigit(n) != d
	}
	return nodeDigit(n) == d && board.Sees(cell, nodeCell(n))
}
