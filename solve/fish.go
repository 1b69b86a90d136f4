package solve

import "github.com/katalvlaran/sudoku/board"

// Unified fish search: one routine parameterized by the sector
// constraint. For a digit, choose n base houses; every base candidate
// must fall under a cover house (at most n of them), except fins. The
// digit then leaves every cover cell outside the bases. A finned fish
// still eliminates, but only inside the fins' block.
//
// Sector taxonomy:
//   - Basic:   bases one line kind, covers the other (X-Wing family).
//   - Franken: bases are lines, covers may include blocks.
//   - Mutant:  any house kind on either side, three kinds involved.

// sectorConstraint selects which house kinds may serve as base/cover.
type sectorConstraint uint8

const (
	basicFish sectorConstraint = iota
	frankenFish
	mutantFish
)

// findBasicFish reports the first unfinned basic fish of the given size
// (2=X-Wing, 3=Swordfish, 4=Jellyfish).
func findBasicFish(f *fabric, size int) []Move {
	return fishFiltered(f, size, basicFish, false)
}

// findFinnedFish reports the first finned basic fish of the given size.
func findFinnedFish(f *fabric, size int) []Move {
	return fishFiltered(f, size, basicFish, true)
}

// findFrankenFish reports the first fish using blocks among the covers.
func findFrankenFish(f *fabric) []Move {
	for size := 2; size <= 4; size++ {
		if m := fishFiltered(f, size, frankenFish, false); m != nil {
			return m
		}
		if m := fishFiltered(f, size, frankenFish, true); m != nil {
			return m
		}
	}
	return nil
}

// findMutantFish reports the first fish mixing all three house kinds.
func findMutantFish(f *fabric) []Move {
	for size := 2; size <= 4; size++ {
		if m := fishFiltered(f, size, mutantFish, false); m != nil {
			return m
		}
		if m := fishFiltered(f, size, mutantFish, true); m != nil {
			return m
		}
	}
	return nil
}

// fishFiltered runs the search for one size and finned-ness. Keeping
// the two separate preserves the dispatch split between X-Wing and
// Finned X-Wing (and their larger siblings).
func fishFiltered(f *fabric, size int, constraint sectorConstraint, finned bool) []Move {
	for d := uint8(1); d <= 9; d++ {
		if m := searchFish(f, d, size, constraint, finned); m != nil {
			return m
		}
	}
	return nil
}

func searchFish(f *fabric, d uint8, size int, constraint sectorConstraint, finned bool) []Move {
	var basePool []board.House
	switch constraint {
	case basicFish:
		basePool = append(houseRange(board.HouseRowBase), houseRange(board.HouseColBase)...)
	case frankenFish:
		basePool = append(houseRange(board.HouseRowBase), houseRange(board.HouseColBase)...)
	default:
		basePool = append(append(houseRange(board.HouseRowBase), houseRange(board.HouseColBase)...),
			houseRange(board.HouseBlockBase)...)
	}

	eligible := basePool[:0:0]
	for _, h := range basePool {
		if n := f.candCount(h, d); n >= 2 {
			eligible = append(eligible, h)
		}
	}
	if len(eligible) < size {
		return nil
	}

	for _, combo := range combinations(len(eligible), size) {
		bases := make([]board.House, size)
		var baseCells cellSet
		ok := true
		for i, bi := range combo {
			bases[i] = eligible[bi]
			mask := f.candMask(eligible[bi], d)
			// Overlapping bases would double-count candidates.
			if !mask.and(baseCells).empty() {
				ok = false
				break
			}
			baseCells = baseCells.or(mask)
		}
		if !ok || !basesAllowed(bases, constraint) {
			continue
		}
		if m := assignCovers(f, d, size, bases, baseCells, constraint, finned); m != nil {
			return m
		}
	}
	return nil
}

// basesAllowed enforces the base side of the sector taxonomy.
func basesAllowed(bases []board.House, constraint sectorConstraint) bool {
	switch constraint {
	case basicFish:
		for _, h := range bases[1:] {
			if h.Kind() != bases[0].Kind() {
				return false
			}
		}
		return bases[0].Kind() != 2
	case frankenFish:
		for _, h := range bases {
			if h.Kind() == 2 {
				return false
			}
		}
		return true
	default:
		return true
	}
}

// assignCovers walks the base candidates lowest-cell-first, branching
// over the at most three houses that could cover each one (or marking
// it a fin). The branching stays tiny because every cell sits in
// exactly three houses.
func assignCovers(f *fabric, d uint8, size int, bases []board.House, baseCells cellSet, constraint sectorConstraint, finned bool) []Move {
	var rec func(uncovered cellSet, covers []board.House, fins []int) []Move
	rec = func(uncovered cellSet, covers []board.House, fins []int) []Move {
		if uncovered.empty() {
			if len(covers) == 0 || (len(fins) > 0) != finned {
				return nil
			}
			if !coversAllowed(bases, covers, constraint) {
				return nil
			}
			var coverCells cellSet
			for _, h := range covers {
				coverCells = coverCells.or(f.candMask(h, d))
			}
			elims := coverCells.andNot(baseCells)
			if len(fins) > 0 {
				finBlock := board.PositionOf(fins[0]).Block()
				elims = elims.and(f.candMask(board.BlockHouse(finBlock), d))
			}
			return fishMove(f, d, size, bases, covers, fins, elims, constraint)
		}

		cell := uncovered.cells()[0]
		for _, h := range board.CellHouses(cell) {
			if len(covers) == size || containsHouse(bases, h) || containsHouse(covers, h) {
				continue
			}
			if constraint == basicFish && (h.Kind() == 2 || h.Kind() == bases[0].Kind()) {
				continue
			}
			next := append(append([]board.House(nil), covers...), h)
			if m := rec(uncovered.andNot(f.candMask(h, d)), next, fins); m != nil {
				return m
			}
		}
		// Fins must all live in one block.
		if finned {
			block := board.PositionOf(cell).Block()
			if len(fins) == 0 || board.PositionOf(fins[0]).Block() == block {
				var one cellSet
				one.add(cell)
				nextFins := append(append([]int(nil), fins...), cell)
				if m := rec(uncovered.andNot(one), covers, nextFins); m != nil {
					return m
				}
			}
		}
		return nil
	}
	return rec(baseCells, nil, nil)
}

// coversAllowed enforces the cover side of the sector taxonomy, and
// keeps the three searches disjoint: a shape valid under a simpler
// constraint never reports under a richer one.
func coversAllowed(bases, covers []board.House, constraint sectorConstraint) bool {
	hasBlockCover := false
	for _, h := range covers {
		if h.Kind() == 2 {
			hasBlockCover = true
		}
	}
	switch constraint {
	case basicFish:
		for _, h := range covers {
			if h.Kind() == 2 || h.Kind() == bases[0].Kind() {
				return false
			}
		}
		return true
	case frankenFish:
		return hasBlockCover
	default:
		var kinds [3]bool
		for _, h := range bases {
			kinds[h.Kind()] = true
		}
		for _, h := range covers {
			kinds[h.Kind()] = true
		}
		n := 0
		for _, k := range kinds {
			if k {
				n++
			}
		}
		if n < 3 && !(n == 2 && kinds[2]) {
			return false
		}
		// A line-based, block-covered shape belongs to Franken.
		linesOnly := true
		for _, h := range bases {
			if h.Kind() == 2 {
				linesOnly = false
			}
		}
		return !(linesOnly && hasBlockCover)
	}
}

func classifyFish(size int, finned bool, constraint sectorConstraint) Technique {
	switch constraint {
	case frankenFish:
		return FrankenFish
	case mutantFish:
		return MutantFish
	}
	switch {
	case size == 2 && !finned:
		return XWing
	case size == 2:
		return FinnedXWing
	case size == 3 && !finned:
		return Swordfish
	case size == 3:
		return FinnedSwordfish
	case !finned:
		return Jellyfish
	default:
		return FinnedJellyfish
	}
}

// fishMove materializes the first elimination outside the base houses.
func fishMove(f *fabric, d uint8, size int, bases, covers []board.House, fins []int, elims cellSet, constraint sectorConstraint) []Move {
	elims = elims.andNot(baseCellsOf(f, d, bases))
	if elims.empty() {
		return nil
	}
	cell := elims.cells()[0]
	t := classifyFish(size, len(fins) > 0, constraint)
	because := baseCellsOf(f, d, bases).cells()
	houses := append(append([]board.House(nil), bases...), covers...)
	return []Move{elimination(t, cell, []uint8{d}, because, houses...)}
}

func baseCellsOf(f *fabric, d uint8, bases []board.House) cellSet {
	var s cellSet
	for _, h := range bases {
		s = s.or(f.candMask(h, d))
	}
	return s
}

func houseRange(base board.House) []board.House {
	out := make([]board.House, board.GridSize)
	for i := range out {
		out[i] = base + board.House(i)
	}
	return out
}

func containsHouse(hs []board.House, h board.House) bool {
	for _, x := range hs {
		if x == h {
			return true
		}
	}
	return false
}
