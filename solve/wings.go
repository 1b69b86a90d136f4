package solve

import "github.com/katalvlaran/sudoku/board"

// Wing patterns: a pivot cell (or small ALS) branching into pincers
// that corner one digit. Whatever the pivot resolves to, some pincer
// ends up holding the shared digit, so cells seeing all pincers lose it.

// findXYWing reports the first XY-Wing: a bivalue pivot {x,y} with
// bivalue peers {x,z} and {y,z}; z falls from cells seeing both peers.
func findXYWing(f *fabric) []Move {
	for pivot := 0; pivot < board.CellCount; pivot++ {
		if f.values[pivot] != 0 || f.cands[pivot].Count() != 2 {
			continue
		}
		pm := f.cands[pivot]
		peers := bivaluePeers(f, pivot)
		for i := 0; i < len(peers); i++ {
			for j := i + 1; j < len(peers); j++ {
				a, b := peers[i], peers[j]
				am, bm := f.cands[a], f.cands[b]
				if am == bm || am == pm || bm == pm {
					continue
				}
				z := am & bm
				if z.Count() != 1 || pm.Has(z.Lowest()) {
					continue
				}
				if (pm|am|bm).Count() != 3 {
					continue
				}
				if m := pincerEliminate(f, XYWing, z.Lowest(), []int{pivot, a, b}, []int{a, b}); m != nil {
					return m
				}
			}
		}
	}
	return nil
}

// findXYZWing reports the first XYZ-Wing: a trivalue pivot {x,y,z} with
// pincers {x,z} and {y,z}; z falls only from cells seeing all three.
func findXYZWing(f *fabric) []Move {
	for pivot := 0; pivot < board.CellCount; pivot++ {
		if f.values[pivot] != 0 || f.cands[pivot].Count() != 3 {
			continue
		}
		pm := f.cands[pivot]
		peers := bivaluePeers(f, pivot)
		for i := 0; i < len(peers); i++ {
			for j := i + 1; j < len(peers); j++ {
				a, b := peers[i], peers[j]
				am, bm := f.cands[a], f.cands[b]
				if am == bm || am&pm != am || bm&pm != bm {
					continue
				}
				z := am & bm
				if z.Count() != 1 {
					continue
				}
				if m := pincerEliminate(f, XYZWing, z.Lowest(), []int{pivot, a, b}, []int{pivot, a, b}); m != nil {
					return m
				}
			}
		}
	}
	return nil
}

// findWXYZWing reports the first four-cell, four-digit ALS pair wing.
func findWXYZWing(f *fabric) []Move {
	return alsXZFiltered(f, buildALSIndex(f), true)
}

// findWWing reports the first W-Wing: two bivalue cells with the same
// candidates {x,y} bridged by a conjugate pair on x, letting y fall
// from cells seeing both ends.
func findWWing(f *fabric) []Move {
	var ends []int
	for c := 0; c < board.CellCount; c++ {
		if f.values[c] == 0 && f.cands[c].Count() == 2 {
			ends = append(ends, c)
		}
	}
	for i := 0; i < len(ends); i++ {
		for j := i + 1; j < len(ends); j++ {
			a, b := ends[i], ends[j]
			if f.cands[a] != f.cands[b] || board.Sees(a, b) {
				continue
			}
			for _, x := range f.cands[a].Digits() {
				y := f.cands[a].Remove(x).Lowest()
				for h := board.House(0); h < board.NumHouses; h++ {
					cc := f.houseCandCells(h, x)
					if len(cc) != 2 {
						continue
					}
					p, q := cc[0], cc[1]
					if p == a || p == b || q == a || q == b {
						continue
					}
					if !(board.Sees(p, a) && board.Sees(q, b)) && !(board.Sees(p, b) && board.Sees(q, a)) {
						continue
					}
					if m := pincerEliminate(f, WWing, y, []int{a, p, q, b}, []int{a, b}); m != nil {
						return m
					}
				}
			}
		}
	}
	return nil
}

// bivaluePeers lists the unsolved bivalue peers of a cell that share at
// least one candidate with it.
func bivaluePeers(f *fabric, cell int) []int {
	var out []int
	for _, p := range board.Peers(cell) {
		if f.values[p] == 0 && f.cands[p].Count() == 2 && f.cands[p]&f.cands[cell] != 0 {
			out = append(out, p)
		}
	}
	return out
}

// pincerEliminate drops z from the first cell outside the pattern that
// sees every pincer.
func pincerEliminate(f *fabric, t Technique, z uint8, pattern, pincers []int) []Move {
	for cell := 0; cell < board.CellCount; cell++ {
		if f.values[cell] != 0 || !f.cands[cell].Has(z) || contains(pattern, cell) {
			continue
		}
		seesAll := true
		for _, p := range pincers {
			if !board.Sees(cell, p) {
				seesAll = false
				break
			}
		}
		if seesAll {
			return []Move{elimination(t, cell, []uint8{z}, pattern)}
		}
	}
	return nil
}
