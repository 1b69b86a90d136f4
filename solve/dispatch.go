package solve

import (
	"fmt"

	"github.com/katalvlaran/sudoku/board"
)

// State is the dispatcher's phase after a step.
type State uint8

const (
	// StateScanning - detectors are being probed in weight order.
	StateScanning State = iota
	// StateApplying - a move was found and applied.
	StateApplying
	// StateStuck - no detector produced a move on an incomplete grid.
	StateStuck
	// StateSolved - every cell is filled.
	StateSolved
)

func (s State) String() string {
	switch s {
	case StateScanning:
		return "Scanning"
	case StateApplying:
		return "Applying"
	case StateStuck:
		return "Stuck"
	default:
		return "Solved"
	}
}

// Options tunes a solve run.
type Options struct {
	// AssumeUnique unlocks the uniqueness-based detectors. Set it only
	// when the grid is known to have exactly one solution.
	AssumeUnique bool
	// Policy folds the weight trail into a rating; nil means MaxWeight.
	Policy RatingPolicy
	// MaxSteps caps the number of applied moves; 0 means the built-in
	// bound (a 9x9 solve cannot exceed it).
	MaxSteps int
}

// DefaultOptions returns the standard solver configuration.
func DefaultOptions() Options {
	return Options{Policy: MaxWeight{}, MaxSteps: 0}
}

// defaultMaxSteps exceeds any possible trail: at most 81 placements
// plus one elimination per candidate.
const defaultMaxSteps = 81 + board.CellCount*board.GridSize

// Trail records a full dispatcher run.
type Trail struct {
	Moves  []Move
	State  State
	Rating float64
	Tier   Tier
	Grid   *board.Grid
}

// detector pairs a dispatch slot with its engine. The table is ordered
// by ascending technique weight; the dispatcher never reorders it.
type detector struct {
	technique Technique
	find      func(*fabric) []Move
}

var detectors = []detector{
	{NakedSingle, findNakedSingle},
	{HiddenSingle, findHiddenSingle},
	{Pointing, findPointing},
	{Claiming, findClaiming},
	{NakedPair, func(f *fabric) []Move { return findNakedSubset(f, 2) }},
	{HiddenPair, func(f *fabric) []Move { return findHiddenSubset(f, 2) }},
	{NakedTriple, func(f *fabric) []Move { return findNakedSubset(f, 3) }},
	{HiddenTriple, func(f *fabric) []Move { return findHiddenSubset(f, 3) }},
	{NakedQuad, func(f *fabric) []Move { return findNakedSubset(f, 4) }},
	{HiddenQuad, func(f *fabric) []Move { return findHiddenSubset(f, 4) }},
	{XWing, func(f *fabric) []Move { return findBasicFish(f, 2) }},
	{UniqueRectangle, findUniqueRectangle},
	{FinnedXWing, func(f *fabric) []Move { return findFinnedFish(f, 2) }},
	{Swordfish, func(f *fabric) []Move { return findBasicFish(f, 3) }},
	{HiddenRectangle, findHiddenRectangle},
	{FinnedSwordfish, func(f *fabric) []Move { return findFinnedFish(f, 3) }},
	{Jellyfish, func(f *fabric) []Move { return findBasicFish(f, 4) }},
	{XYWing, findXYWing},
	{FinnedJellyfish, func(f *fabric) []Move { return findFinnedFish(f, 4) }},
	{XYZWing, findXYZWing},
	{BivalueUniversalGrave, findBUG},
	{FrankenFish, findFrankenFish},
	{WWing, findWWing},
	{ALSXZ, findALSXZ},
	{MutantFish, findMutantFish},
	{WXYZWing, findWXYZWing},
	{XChain, findXChain},
	{ALSXYWing, findALSXYWing},
	{Medusa, findMedusa},
	{ALSChain, findALSChain},
	{AIC, findAIC},
}

// Step scans the detectors in weight order and returns the first move
// of the first engine that fires. ErrSolved on a complete grid,
// ErrStuck when no engine fires.
func Step(g *board.Grid, opts Options) (Move, error) {
	if g.IsComplete() {
		return Move{}, ErrSolved
	}
	f := newFabric(g)
	for _, det := range detectors {
		if det.technique.UniquenessBased() && !opts.AssumeUnique {
			continue
		}
		if moves := det.find(f); len(moves) > 0 {
			return moves[0], nil
		}
	}
	return Move{}, ErrStuck
}

// Apply commits a move to the grid.
func Apply(g *board.Grid, m Move) error {
	switch m.Kind {
	case Placement:
		if _, err := g.Place(m.Cell, m.Digits[0]); err != nil {
			return fmt.Errorf("applying %s: %w", m.Technique, err)
		}
		return nil
	default:
		for _, d := range m.Digits {
			g.RemoveCandidate(m.Cell, d)
		}
		return nil
	}
}

// Solve runs the dispatcher to completion on a clone of the grid. The
// returned trail always carries the final grid state; the error is
// ErrStuck when the engines exhaust themselves on an incomplete grid.
func Solve(g *board.Grid, opts Options) (*Trail, error) {
	if opts.Policy == nil {
		opts.Policy = MaxWeight{}
	}
	maxSteps := opts.MaxSteps
	if maxSteps <= 0 {
		maxSteps = defaultMaxSteps
	}

	work := g.Clone()
	trail := &Trail{State: StateScanning, Grid: work}
	for len(trail.Moves) < maxSteps {
		move, err := Step(work, opts)
		if err == ErrSolved {
			trail.State = StateSolved
			trail.Rating, trail.Tier = rateTrail(trail.Moves, opts.Policy)
			return trail, nil
		}
		if err == ErrStuck {
			trail.State = StateStuck
			return trail, ErrStuck
		}
		if err := Apply(work, move); err != nil {
			return trail, err
		}
		trail.State = StateApplying
		trail.Moves = append(trail.Moves, move)
	}
	trail.State = StateStuck
	return trail, ErrStuck
}

// Rate solves a clone of the grid and folds the trail into a rating.
// An incomplete solve yields ErrUnratable: the grid demands more than
// the technique engines can justify.
func Rate(g *board.Grid, opts Options) (float64, Tier, error) {
	trail, err := Solve(g, opts)
	if err != nil {
		if err == ErrStuck {
			return 0, 0, ErrUnratable
		}
		return 0, 0, err
	}
	return trail.Rating, trail.Tier, nil
}

func rateTrail(moves []Move, policy RatingPolicy) (float64, Tier) {
	if len(moves) == 0 {
		lo, _ := Beginner.Bounds()
		return lo, Beginner
	}
	weights := make([]float64, len(moves))
	for i, m := range moves {
		weights[i] = m.Weight()
	}
	r := policy.Rate(weights)
	return r, TierOf(r)
}
