package verify_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sudoku/board"
	"github.com/katalvlaran/sudoku/verify"
)

const (
	easyPuzzle = "530070000600195000098000060800060003400803001700020006060000280000419005000080079"
	// 17 clues, a known minimal uniquely-solvable puzzle.
	minimalPuzzle = "000000010400000000020000000000050407008000300001090000300400200050100000000806000"
)

func TestCountSolutions_Unique(t *testing.T) {
	for _, s := range []string{easyPuzzle, minimalPuzzle} {
		g, err := board.Parse(s)
		require.NoError(t, err)
		require.Equal(t, 1, verify.CountSolutions(g, 2), "puzzle %s", s)
		require.True(t, verify.IsUnique(g))
	}
}

// TestCountSolutions_EmptyGridCap verifies the early short-circuit: the
// fully empty grid must report the cap immediately rather than
// enumerating completions.
func TestCountSolutions_EmptyGridCap(t *testing.T) {
	g := board.NewGrid()
	require.Equal(t, 2, verify.CountSolutions(g, 2))
	require.Equal(t, 3, verify.CountSolutions(g, 3))
	require.False(t, verify.IsUnique(g))
}

// TestCountSolutions_None plants a legal-but-wrong digit into a unique
// puzzle; since the only solution disagrees there, the count must drop
// to zero.
func TestCountSolutions_None(t *testing.T) {
	g, err := board.Parse(easyPuzzle)
	require.NoError(t, err)
	sol, ok := verify.FirstSolution(g, nil)
	require.True(t, ok)

	planted := false
	for idx := 0; idx < board.CellCount && !planted; idx++ {
		p := board.PositionOf(idx)
		if g.Value(p) != 0 {
			continue
		}
		for _, d := range g.CandidatesAt(p).Digits() {
			if d != sol.Value(p) {
				_, err := g.Place(p, d)
				require.NoError(t, err)
				planted = true
				break
			}
		}
	}
	require.True(t, planted)
	require.Equal(t, 0, verify.CountSolutions(g, 2))
}

func TestFirstSolution_Completes(t *testing.T) {
	g, err := board.Parse(easyPuzzle)
	require.NoError(t, err)
	sol, ok := verify.FirstSolution(g, nil)
	require.True(t, ok)
	require.True(t, sol.IsComplete())
	require.False(t, sol.HasConflict())

	// Givens survive into the solution.
	for idx := 0; idx < board.CellCount; idx++ {
		p := board.PositionOf(idx)
		if v := g.Value(p); v != 0 {
			require.Equal(t, v, sol.Value(p))
		}
	}
}

// TestFirstSolution_Deterministic pins the nil-rng contract: repeated
// runs produce the identical completion.
func TestFirstSolution_Deterministic(t *testing.T) {
	g, err := board.Parse(minimalPuzzle)
	require.NoError(t, err)
	a, ok := verify.FirstSolution(g, nil)
	require.True(t, ok)
	b, ok := verify.FirstSolution(g, nil)
	require.True(t, ok)
	require.Equal(t, a.String(), b.String())
}

// TestFirstSolution_SeededShuffleReproducible verifies that a seeded
// rand source yields a reproducible random completion of the empty grid.
func TestFirstSolution_SeededShuffleReproducible(t *testing.T) {
	a, ok := verify.FirstSolution(board.NewGrid(), rand.New(rand.NewSource(42)))
	require.True(t, ok)
	require.True(t, a.IsComplete())
	require.False(t, a.HasConflict())

	b, ok := verify.FirstSolution(board.NewGrid(), rand.New(rand.NewSource(42)))
	require.True(t, ok)
	require.Equal(t, a.String(), b.String())
}

// TestMonotonicity: removing a candidate never increases the solution
// count, and placing the true solution digit keeps a unique puzzle
// unique.
func TestMonotonicity(t *testing.T) {
	g, err := board.Parse(easyPuzzle)
	require.NoError(t, err)
	sol, ok := verify.FirstSolution(g, nil)
	require.True(t, ok)

	// Remove one candidate from the first empty cell.
	removed := g.Clone()
	for idx := 0; idx < board.CellCount; idx++ {
		p := board.PositionOf(idx)
		if removed.Value(p) == 0 {
			removed.RemoveCandidate(p, removed.CandidatesAt(p).Lowest())
			break
		}
	}
	require.LessOrEqual(t, verify.CountSolutions(removed, 2), verify.CountSolutions(g, 2))

	// Place the solution digit in the first empty cell.
	placed := g.Clone()
	for idx := 0; idx < board.CellCount; idx++ {
		p := board.PositionOf(idx)
		if placed.Value(p) == 0 {
			_, err := placed.Place(p, sol.Value(p))
			require.NoError(t, err)
			break
		}
	}
	require.Equal(t, 1, verify.CountSolutions(placed, 2))
}

func BenchmarkCountSolutions(b *testing.B) {
	g, err := board.Parse(minimalPuzzle)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if verify.CountSolutions(g, 2) != 1 {
			b.Fatal("expected unique")
		}
	}
}
