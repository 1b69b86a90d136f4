package generate

import (
	"github.com/katalvlaran/sudoku/board"
	"github.com/katalvlaran/sudoku/solve"
)

// Symmetry selects the clue pattern kept while carving.
type Symmetry uint8

const (
	// SymmetryNone removes cells one by one.
	SymmetryNone Symmetry = iota
	// SymmetryRotational180 mirrors removals through the grid center.
	SymmetryRotational180
	// SymmetryRotational90 removes four-cell rotation orbits.
	SymmetryRotational90
	// SymmetryHorizontal mirrors removals across the middle row.
	SymmetryHorizontal
	// SymmetryVertical mirrors removals across the middle column.
	SymmetryVertical
	// SymmetryDiagonal mirrors removals across the main diagonal.
	SymmetryDiagonal
)

func (s Symmetry) String() string {
	switch s {
	case SymmetryNone:
		return "None"
	case SymmetryRotational180:
		return "Rotational180"
	case SymmetryRotational90:
		return "Rotational90"
	case SymmetryHorizontal:
		return "Horizontal"
	case SymmetryVertical:
		return "Vertical"
	default:
		return "Diagonal"
	}
}

// orbit returns the cells removed together with idx under the
// symmetry, idx included, without duplicates.
func (s Symmetry) orbit(idx int) []int {
	p := board.PositionOf(idx)
	var mates []int
	switch s {
	case SymmetryRotational180:
		mates = []int{board.CellCount - 1 - idx}
	case SymmetryRotational90:
		r, c := p.Row, p.Col
		mates = []int{
			c*board.GridSize + (board.GridSize - 1 - r),
			(board.GridSize-1-r)*board.GridSize + (board.GridSize - 1 - c),
			(board.GridSize-1-c)*board.GridSize + r,
		}
	case SymmetryHorizontal:
		mates = []int{(board.GridSize-1-p.Row)*board.GridSize + p.Col}
	case SymmetryVertical:
		mates = []int{p.Row*board.GridSize + (board.GridSize - 1 - p.Col)}
	case SymmetryDiagonal:
		mates = []int{p.Col*board.GridSize + p.Row}
	}
	out := []int{idx}
	for _, m := range mates {
		if m != idx {
			out = append(out, m)
		}
	}
	return out
}

// Options tunes a generation run.
type Options struct {
	// Tier is the target difficulty band.
	Tier solve.Tier
	// Symmetry shapes the clue pattern.
	Symmetry Symmetry
	// MaxAttempts caps full pipeline retries; 0 means the per-tier
	// default.
	MaxAttempts int
	// MinGivens / MaxGivens bound the clue count; 0 means the per-tier
	// band.
	MinGivens int
	MaxGivens int
	// Seed drives every random choice; 0 draws a fresh clock seed
	// inside the 35-bit share-code range.
	Seed int64
	// AdjacentTierOK accepts a rating that lands one tier away from
	// the target instead of burning another attempt.
	AdjacentTierOK bool
	// Policy rates carved puzzles; nil means solve.MaxWeight.
	Policy solve.RatingPolicy
}

// tierBand is the clue range and retry budget used for a tier when
// Options leaves them zero.
type tierBand struct {
	minGivens, maxGivens, attempts int
}

var tierBands = map[solve.Tier]tierBand{
	solve.Beginner:     {45, 55, 30},
	solve.Easy:         {36, 45, 50},
	solve.Medium:       {32, 38, 100},
	solve.Intermediate: {28, 34, 150},
	solve.Hard:         {24, 30, 200},
	solve.Expert:       {22, 26, 500},
	solve.Master:       {20, 24, 1000},
	solve.Extreme:      {17, 22, 2000},
}

// DefaultOptions returns the standard configuration for a tier:
// 180-degree rotational symmetry and the tier's clue band and attempt
// budget.
//
// Defaults:
//   - Symmetry:       SymmetryRotational180.
//   - MaxAttempts:    per-tier budget (30 for Beginner up to 2000 for Extreme).
//   - Min/MaxGivens:  per-tier clue band.
//   - Seed:           0 (drawn from the clock at run time, encodable).
//   - AdjacentTierOK: false.
//   - Policy:         solve.MaxWeight.
func DefaultOptions(tier solve.Tier) Options {
	band := tierBands[tier]
	return Options{
		Tier:        tier,
		Symmetry:    SymmetryRotational180,
		MaxAttempts: band.attempts,
		MinGivens:   band.minGivens,
		MaxGivens:   band.maxGivens,
		Policy:      solve.MaxWeight{},
	}
}

// normalized fills the zero fields from the tier band.
func (o Options) normalized() Options {
	band := tierBands[o.Tier]
	if o.MaxAttempts <= 0 {
		o.MaxAttempts = band.attempts
	}
	if o.MinGivens <= 0 {
		o.MinGivens = band.minGivens
	}
	if o.MaxGivens <= 0 {
		o.MaxGivens = band.maxGivens
	}
	if o.Policy == nil {
		o.Policy = solve.MaxWeight{}
	}
	return o
}
