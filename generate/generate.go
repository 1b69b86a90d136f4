package generate

import (
	"context"
	"math"
	"math/rand"
	"time"

	"github.com/katalvlaran/sudoku/board"
	"github.com/katalvlaran/sudoku/solve"
	"github.com/katalvlaran/sudoku/verify"
)

// Puzzle is one generated puzzle with its retained solution and
// rating.
type Puzzle struct {
	// Grid holds the givens only.
	Grid *board.Grid
	// Solution is the full grid the givens were carved from.
	Solution *board.Grid
	// Rating and Tier come from the technique dispatcher. They are
	// meaningless when Rated is false: the dispatcher could not finish
	// the puzzle, so no trail exists to score.
	Rating float64
	Tier   solve.Tier
	Rated  bool
	// Givens is the clue count.
	Givens int
	// Seed reproduces this exact puzzle through the same Options.
	Seed int64
	// Attempts is the number of pipeline runs spent.
	Attempts int
}

// seedSpace bounds clock-drawn seeds: share codes carry 35-bit seeds
// and zero stays reserved, so a fresh seed lands in [1, 2^35).
const seedSpace = int64(1) << 35

// Generate produces a uniquely-solvable puzzle rated inside the
// requested tier band, falling back to the closest-rated attempt when
// the budget runs out.
func Generate(ctx context.Context, opts Options) (*Puzzle, error) {
	opts = opts.normalized()
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()%(seedSpace-1) + 1
	}
	rng := rand.New(rand.NewSource(seed))

	lo, hi := opts.Tier.Bounds()
	center := (lo + hi) / 2
	var closest *Puzzle
	closestDist := math.MaxFloat64

	for attempt := 1; attempt <= opts.MaxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		full, ok := randomSolution(rng)
		if !ok {
			continue
		}
		carved, givens := carve(full, rng, opts)
		if carved == nil {
			continue
		}

		rateOpts := solve.DefaultOptions()
		rateOpts.AssumeUnique = true
		rateOpts.Policy = opts.Policy
		rating, tier, err := solve.Rate(carved, rateOpts)
		if err != nil {
			// Unratable carve: still a valid unique puzzle, keep it
			// only as a last resort, explicitly unrated.
			if closest == nil {
				closest = &Puzzle{
					Grid: carved, Solution: full,
					Givens: givens, Seed: seed, Attempts: attempt,
				}
			}
			continue
		}

		p := &Puzzle{
			Grid: carved, Solution: full,
			Rating: rating, Tier: tier, Rated: true,
			Givens: givens, Seed: seed, Attempts: attempt,
		}
		if givens <= opts.MaxGivens && acceptTier(tier, opts) {
			return p, nil
		}
		if dist := math.Abs(rating - center); dist < closestDist {
			closest, closestDist = p, dist
		}
	}

	if closest == nil {
		return nil, ErrGenerationFailed
	}
	return closest, nil
}

func acceptTier(tier solve.Tier, opts Options) bool {
	if tier == opts.Tier {
		return true
	}
	if !opts.AdjacentTierOK {
		return false
	}
	return tier == opts.Tier+1 || (opts.Tier > 0 && tier == opts.Tier-1)
}

// randomSolution fills the three diagonal blocks with independent
// shuffles and completes the rest by randomized backtracking.
func randomSolution(rng *rand.Rand) (*board.Grid, bool) {
	g := board.NewGrid()
	for _, b := range []int{0, 4, 8} {
		digits := []uint8{1, 2, 3, 4, 5, 6, 7, 8, 9}
		rng.Shuffle(len(digits), func(i, j int) { digits[i], digits[j] = digits[j], digits[i] })
		for i, cell := range board.HouseCells(board.BlockHouse(b)) {
			if _, err := g.Place(board.PositionOf(cell), digits[i]); err != nil {
				return nil, false
			}
		}
	}
	return verify.FirstSolution(g, rng)
}

// carve removes givens from a full solution in shuffled symmetric
// orbits, keeping the puzzle unique and at least MinGivens clues.
// It returns the carved grid (givens only) and the clue count.
func carve(full *board.Grid, rng *rand.Rand, opts Options) (*board.Grid, int) {
	keep := [board.CellCount]bool{}
	for i := range keep {
		keep[i] = true
	}
	givens := board.CellCount

	order := rng.Perm(board.CellCount)
	for _, idx := range order {
		if !keep[idx] {
			continue
		}
		orbit := opts.Symmetry.orbit(idx)
		removable := orbit[:0:0]
		for _, c := range orbit {
			if keep[c] {
				removable = append(removable, c)
			}
		}
		if givens-len(removable) < opts.MinGivens {
			continue
		}
		for _, c := range removable {
			keep[c] = false
		}
		trial, err := gridFrom(full, keep)
		if err != nil || !verify.IsUnique(trial) {
			for _, c := range removable {
				keep[c] = true
			}
			continue
		}
		givens -= len(removable)
	}

	carved, err := gridFrom(full, keep)
	if err != nil {
		return nil, 0
	}
	return carved, givens
}

// gridFrom rebuilds a givens-only grid from a solution and a keep
// mask.
func gridFrom(full *board.Grid, keep [board.CellCount]bool) (*board.Grid, error) {
	buf := make([]byte, board.CellCount)
	for idx := 0; idx < board.CellCount; idx++ {
		if keep[idx] {
			buf[idx] = '0' + full.Value(board.PositionOf(idx))
		} else {
			buf[idx] = '.'
		}
	}
	return board.Parse(string(buf))
}
