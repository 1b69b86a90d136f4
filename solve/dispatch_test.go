package solve_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sudoku/board"
	"github.com/katalvlaran/sudoku/solve"
	"github.com/katalvlaran/sudoku/verify"
)

const (
	easyPuzzle = "530070000600195000098000060800060003400803001700020006060000280000419005000080079"
	// 17 clues, a known minimal uniquely-solvable puzzle.
	minimalPuzzle = "000000010400000000020000000000050407008000300001090000300400200050100000000806000"
	// A known rectangle-class puzzle: nothing below the X-Wing weight
	// finishes it.
	hardPuzzle = "000704005020010070000080002090006250600070008053200010400090000030060090200301000"
)

// TestSolve_EasyBySingles pins the classic easy grid: singles alone
// finish it, so the whole trail stays at or below the hidden-single
// weight and the tier lands on Beginner.
func TestSolve_EasyBySingles(t *testing.T) {
	g, err := board.Parse(easyPuzzle)
	require.NoError(t, err)

	trail, err := solve.Solve(g, solve.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, solve.StateSolved, trail.State)
	require.True(t, trail.Grid.IsComplete())
	require.False(t, trail.Grid.HasConflict())
	require.Equal(t, solve.Beginner, trail.Tier)

	for _, m := range trail.Moves {
		require.LessOrEqual(t, m.Weight(), solve.HiddenSingle.Weight(),
			"unexpected technique %s", m.Technique)
	}

	sol, ok := verify.FirstSolution(g, nil)
	require.True(t, ok)
	require.Equal(t, sol.String(), trail.Grid.String())
}

// TestSolve_MinimalBySingles pins the 17-clue grid: hidden singles
// finish it, so the rating is exactly the hidden-single weight.
func TestSolve_MinimalBySingles(t *testing.T) {
	g, err := board.Parse(minimalPuzzle)
	require.NoError(t, err)

	trail, err := solve.Solve(g, solve.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, solve.StateSolved, trail.State)
	require.Equal(t, solve.HiddenSingle.Weight(), trail.Rating)
	require.Equal(t, solve.Beginner, trail.Tier)
	for _, m := range trail.Moves {
		require.LessOrEqual(t, m.Weight(), solve.HiddenSingle.Weight(),
			"unexpected technique %s", m.Technique)
	}
}

// TestSolve_HardLandsExpertBand runs a grid that resists every engine
// below the fish/rectangle class: the dispatcher must still finish it
// and the rating lands at the Expert band or above.
func TestSolve_HardLandsExpertBand(t *testing.T) {
	g, err := board.Parse(hardPuzzle)
	require.NoError(t, err)
	require.True(t, verify.IsUnique(g))

	opts := solve.DefaultOptions()
	opts.AssumeUnique = true
	trail, err := solve.Solve(g, opts)
	require.NoError(t, err)
	require.Equal(t, solve.StateSolved, trail.State)

	sol, ok := verify.FirstSolution(g, nil)
	require.True(t, ok)
	require.Equal(t, sol.String(), trail.Grid.String())

	lo, _ := solve.Expert.Bounds()
	require.GreaterOrEqual(t, trail.Rating, lo)
	require.GreaterOrEqual(t, trail.Tier, solve.Expert)
}

// TestSolve_InputUntouched: the dispatcher works on a clone.
func TestSolve_InputUntouched(t *testing.T) {
	g, err := board.Parse(easyPuzzle)
	require.NoError(t, err)
	before := g.String()
	_, err = solve.Solve(g, solve.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, before, g.String())
}

func TestStep_Deterministic(t *testing.T) {
	g, err := board.Parse(minimalPuzzle)
	require.NoError(t, err)

	a, errA := solve.Step(g, solve.DefaultOptions())
	b, errB := solve.Step(g, solve.DefaultOptions())
	require.Equal(t, errA, errB)
	require.Equal(t, a, b)
}

func TestRate_Idempotent(t *testing.T) {
	g, err := board.Parse(easyPuzzle)
	require.NoError(t, err)

	r1, t1, err := solve.Rate(g, solve.DefaultOptions())
	require.NoError(t, err)
	r2, t2, err := solve.Rate(g, solve.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, r1, r2)
	require.Equal(t, t1, t2)
}

// TestSolve_EmptyGridStuck: with 81 holes no engine can justify a
// move, so the run parks on Stuck and the grid rates Unratable.
func TestSolve_EmptyGridStuck(t *testing.T) {
	g := board.NewGrid()
	trail, err := solve.Solve(g, solve.DefaultOptions())
	require.ErrorIs(t, err, solve.ErrStuck)
	require.Equal(t, solve.StateStuck, trail.State)

	_, _, err = solve.Rate(g, solve.DefaultOptions())
	require.ErrorIs(t, err, solve.ErrUnratable)
}

func TestStep_SolvedGrid(t *testing.T) {
	g, err := board.Parse(easyPuzzle)
	require.NoError(t, err)
	sol, ok := verify.FirstSolution(g, nil)
	require.True(t, ok)

	_, err = solve.Step(sol, solve.DefaultOptions())
	require.ErrorIs(t, err, solve.ErrSolved)

	trail, err := solve.Solve(sol, solve.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, solve.StateSolved, trail.State)
	require.Empty(t, trail.Moves)
	require.Equal(t, solve.Beginner, trail.Tier)
}

// TestSolve_Soundness replays every move the dispatcher makes against
// the backtracking solution: placements must match it, eliminations
// must never touch the solution digit. The run may finish or park on
// Stuck; either way no move may be wrong.
func TestSolve_Soundness(t *testing.T) {
	for _, s := range []string{easyPuzzle, minimalPuzzle, hardPuzzle} {
		g, err := board.Parse(s)
		require.NoError(t, err)
		sol, ok := verify.FirstSolution(g, nil)
		require.True(t, ok)

		opts := solve.DefaultOptions()
		opts.AssumeUnique = true

		work := g.Clone()
		for steps := 0; steps < 1000; steps++ {
			move, err := solve.Step(work, opts)
			if err != nil {
				require.Contains(t, []error{solve.ErrSolved, solve.ErrStuck}, err)
				break
			}
			want := sol.Value(move.Cell)
			if move.Kind == solve.Placement {
				require.Equal(t, want, move.Digits[0],
					"%s placed a wrong digit at %s in %s", move.Technique, move.Cell, s)
			} else {
				for _, d := range move.Digits {
					require.NotEqual(t, want, d,
						"%s removed the solution digit at %s in %s", move.Technique, move.Cell, s)
				}
			}
			require.NoError(t, solve.Apply(work, move))
		}
		require.False(t, work.HasConflict())
	}
}

func TestApply_Elimination(t *testing.T) {
	g, err := board.Parse(easyPuzzle)
	require.NoError(t, err)

	var p board.Position
	for idx := 0; idx < board.CellCount; idx++ {
		p = board.PositionOf(idx)
		if g.Value(p) == 0 && g.CandidatesAt(p).Count() > 1 {
			break
		}
	}
	d := g.CandidatesAt(p).Lowest()
	m := solve.Move{Kind: solve.Elimination, Cell: p, Digits: []uint8{d}, Technique: solve.Pointing}
	require.NoError(t, solve.Apply(g, m))
	require.False(t, g.CandidatesAt(p).Has(d))
}

func TestRatingPolicies(t *testing.T) {
	weights := []float64{1.0, 4.5, 2.0, 4.5}
	require.Equal(t, 4.5, solve.MaxWeight{}.Rate(weights))
	require.GreaterOrEqual(t, solve.WeightedSum{}.Rate(weights), 4.5)
	require.Equal(t, 1.0, solve.MaxWeight{}.Rate([]float64{1.0}))
}

func TestTierOf(t *testing.T) {
	require.Equal(t, solve.Beginner, solve.TierOf(1.0))
	require.Equal(t, solve.Beginner, solve.TierOf(1.5))
	require.Equal(t, solve.Easy, solve.TierOf(2.0))
	require.Equal(t, solve.Expert, solve.TierOf(4.5))
	require.Equal(t, solve.Extreme, solve.TierOf(7.0))
	require.Equal(t, solve.Extreme, solve.TierOf(12.0))

	lo, hi := solve.Medium.Bounds()
	require.Equal(t, 2.6, lo)
	require.Equal(t, 3.4, hi)
	require.Equal(t, "Intermediate", solve.Intermediate.String())
}

func BenchmarkStep(b *testing.B) {
	g, err := board.Parse(minimalPuzzle)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := solve.Step(g, solve.DefaultOptions()); err != nil && err != solve.ErrStuck {
			b.Fatal(err)
		}
	}
}

func BenchmarkSolveEasy(b *testing.B) {
	g, err := board.Parse(easyPuzzle)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := solve.Solve(g, solve.DefaultOptions()); err != nil {
			b.Fatal(err)
		}
	}
}
