package solve

import "github.com/katalvlaran/sudoku/board"

// Almost Locked Sets: n unsolved cells in one house carrying exactly
// n+1 candidate digits. Removing any one digit locks the rest, which is
// what the ALS rules trade on.
//
// Two disjoint ALSs are linked by a restricted common candidate (RCC):
// a shared digit whose cells across both sets all see each other. The
// digit can live in at most one of the two sets, so any other shared
// digit must survive in one of them.

const maxALSSize = 5

type als struct {
	house board.House
	cells cellSet
	list  []int
	mask  board.Candidates
}

type alsLink struct {
	to     int
	digits []uint8
}

// alsIndex holds every ALS of the grid plus the RCC adjacency between
// them, built once per detector call.
type alsIndex struct {
	sets []als
	adj  [][]alsLink
}

// collectALS enumerates every ALS up to maxALSSize, deduplicated across
// houses (a cell pair inside a block may surface via its row too).
func collectALS(f *fabric) []als {
	seen := make(map[[2]uint64]bool)
	var out []als
	for h := board.House(0); h < board.NumHouses; h++ {
		empty := f.emptyCellsIn(h)
		for size := 1; size <= maxALSSize && size <= len(empty); size++ {
			for _, combo := range combinations(len(empty), size) {
				var mask board.Candidates
				var cs cellSet
				list := make([]int, size)
				for i, ci := range combo {
					list[i] = empty[ci]
					mask |= f.cands[empty[ci]]
					cs.add(empty[ci])
				}
				if mask.Count() != size+1 {
					continue
				}
				key := [2]uint64(cs)
				if seen[key] {
					continue
				}
				seen[key] = true
				out = append(out, als{house: h, cells: cs, list: list, mask: mask})
			}
		}
	}
	return out
}

func buildALSIndex(f *fabric) *alsIndex {
	idx := &alsIndex{sets: collectALS(f)}
	idx.adj = make([][]alsLink, len(idx.sets))
	for i := range idx.sets {
		for j := i + 1; j < len(idx.sets); j++ {
			digits := restrictedCommons(f, &idx.sets[i], &idx.sets[j])
			if len(digits) == 0 {
				continue
			}
			idx.adj[i] = append(idx.adj[i], alsLink{to: j, digits: digits})
			idx.adj[j] = append(idx.adj[j], alsLink{to: i, digits: digits})
		}
	}
	return idx
}

// restrictedCommons returns the digits shared by two disjoint ALSs
// whose carrier cells all see each other across the pair.
func restrictedCommons(f *fabric, a, b *als) []uint8 {
	if !a.cells.and(b.cells).empty() {
		return nil
	}
	common := a.mask & b.mask
	if common == 0 {
		return nil
	}
	var out []uint8
	for _, d := range common.Digits() {
		restricted := true
	scan:
		for _, ca := range a.list {
			if !f.cands[ca].Has(d) {
				continue
			}
			for _, cb := range b.list {
				if f.cands[cb].Has(d) && !board.Sees(ca, cb) {
					restricted = false
					break scan
				}
			}
		}
		if restricted {
			out = append(out, d)
		}
	}
	return out
}

// alsDigitCells collects the cells of an ALS that carry a digit.
func alsDigitCells(f *fabric, a *als, d uint8) []int {
	var out []int
	for _, c := range a.list {
		if f.cands[c].Has(d) {
			out = append(out, c)
		}
	}
	return out
}

// alsEliminate looks for a cell outside both sets holding z that sees
// every z-carrier in each set, and builds the elimination move.
func alsEliminate(f *fabric, t Technique, z uint8, sets ...*als) []Move {
	var carriers []int
	var inSets cellSet
	for _, a := range sets {
		carriers = append(carriers, alsDigitCells(f, a, z)...)
		inSets = inSets.or(a.cells)
	}
	if len(carriers) == 0 {
		return nil
	}
	for cell := 0; cell < board.CellCount; cell++ {
		if f.values[cell] != 0 || !f.cands[cell].Has(z) || inSets.has(cell) {
			continue
		}
		seesAll := true
		for _, c := range carriers {
			if !board.Sees(cell, c) {
				seesAll = false
				break
			}
		}
		if !seesAll {
			continue
		}
		houses := make([]board.House, 0, len(sets))
		for _, a := range sets {
			houses = append(houses, a.house)
		}
		return []Move{elimination(t, cell, []uint8{z}, inSets.cells(), houses...)}
	}
	return nil
}

// findALSXZ reports the first ALS-XZ elimination whose pair is larger
// than the four-cell wing shape (that one classifies as WXYZ-Wing).
func findALSXZ(f *fabric) []Move {
	return alsXZFiltered(f, buildALSIndex(f), false)
}

func alsXZFiltered(f *fabric, idx *alsIndex, wingOnly bool) []Move {
	for i := range idx.sets {
		for _, link := range idx.adj[i] {
			if link.to < i {
				continue
			}
			a, b := &idx.sets[i], &idx.sets[link.to]
			isWing := len(a.list)+len(b.list) == 4 && (a.mask|b.mask).Count() == 4
			if isWing != wingOnly {
				continue
			}
			t := ALSXZ
			if wingOnly {
				t = WXYZWing
			}
			for _, d := range (a.mask & b.mask).Digits() {
				if containsDigit(link.digits, d) {
					continue
				}
				if m := alsEliminate(f, t, d, a, b); m != nil {
					return m
				}
			}
		}
	}
	return nil
}

// findALSXYWing reports the first three-set pattern: a hub C linked to
// A by RCC x and to B by RCC y, with x != y. Any digit z shared by A
// and B outside {x, y} must survive in one of them.
func findALSXYWing(f *fabric) []Move {
	idx := buildALSIndex(f)
	for hub := range idx.sets {
		links := idx.adj[hub]
		for ai := 0; ai < len(links); ai++ {
			for bi := ai + 1; bi < len(links); bi++ {
				a, b := &idx.sets[links[ai].to], &idx.sets[links[bi].to]
				if !a.cells.and(b.cells).empty() {
					continue
				}
				for _, x := range links[ai].digits {
					for _, y := range links[bi].digits {
						if x == y {
							continue
						}
						for _, z := range (a.mask & b.mask).Digits() {
							if z == x || z == y {
								continue
							}
							if m := alsEliminate(f, ALSXYWing, z, a, b); m != nil {
								return m
							}
						}
					}
				}
			}
		}
	}
	return nil
}

// alsChainBudget caps the chain walk; the bound keeps the detector
// deterministic and cheap on pathological grids.
const alsChainBudget = 100000

// findALSChain walks chains of four or more ALSs joined by RCCs, with
// adjacent links on distinct digits, and eliminates any digit common to
// both chain ends that never served as a link.
func findALSChain(f *fabric) []Move {
	idx := buildALSIndex(f)

	const maxChain = 5
	budget := alsChainBudget
	var m []Move
	var walk func(path []int, links []uint8) bool
	walk = func(path []int, links []uint8) bool {
		if budget <= 0 {
			return false
		}
		budget--
		last := path[len(path)-1]
		if len(path) >= 4 {
			head, tail := &idx.sets[path[0]], &idx.sets[last]
			for _, z := range (head.mask & tail.mask).Digits() {
				if containsDigit(links, z) {
					continue
				}
				if got := alsEliminate(f, ALSChain, z, head, tail); got != nil {
					m = got
					return true
				}
			}
		}
		if len(path) == maxChain {
			return false
		}
		for _, l := range idx.adj[last] {
			if contains(path, l.to) {
				continue
			}
			if !idx.sets[l.to].cells.and(idx.sets[path[0]].cells).empty() {
				continue
			}
			for _, d := range l.digits {
				if d == links[len(links)-1] {
					continue
				}
				next := append(append([]int(nil), path...), l.to)
				nextLinks := append(append([]uint8(nil), links...), d)
				if walk(next, nextLinks) {
					return true
				}
			}
		}
		return false
	}

	for i := range idx.sets {
		for _, l := range idx.adj[i] {
			if l.to < i {
				continue
			}
			for _, d := range l.digits {
				if walk([]int{i, l.to}, []uint8{d}) {
					return m
				}
			}
		}
	}
	return nil
}

func containsDigit(ds []uint8, d uint8) bool {
	for _, x := range ds {
		if x == d {
			return true
		}
	}
	return false
}

