package puzzle_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sudoku/board"
	"github.com/katalvlaran/sudoku/generate"
	"github.com/katalvlaran/sudoku/puzzle"
	"github.com/katalvlaran/sudoku/solve"
	"github.com/katalvlaran/sudoku/verify"
)

const easyPuzzle = "530070000600195000098000060800060003400803001700020006060000280000419005000080079"

func newTestInstance(t *testing.T) *puzzle.Instance {
	t.Helper()
	g, err := board.Parse(easyPuzzle)
	require.NoError(t, err)
	sol, ok := verify.FirstSolution(g, nil)
	require.True(t, ok)
	return puzzle.NewInstance(&generate.Puzzle{
		Grid: g, Solution: sol,
		Rating: 1.5, Tier: solve.Beginner,
		Givens: g.GivenCount(), Seed: 42,
	})
}

// firstEmpty returns the first open cell of the instance's grid.
func firstEmpty(in *puzzle.Instance) board.Position {
	g := in.Grid()
	for idx := 0; idx < board.CellCount; idx++ {
		p := board.PositionOf(idx)
		if g.Value(p) == 0 {
			return p
		}
	}
	return board.Position{}
}

func TestInstance_ApplyCountsMistakes(t *testing.T) {
	in := newTestInstance(t)
	p := firstEmpty(in)
	want := in.Solution.Value(p)

	var wrong uint8
	for d := uint8(1); d <= 9; d++ {
		if d != want {
			wrong = d
			break
		}
	}
	ok, err := in.Apply(p, wrong)
	require.NoError(t, err)
	require.False(t, ok)
	require.Equal(t, 1, in.Mistakes)
	require.Zero(t, in.Grid().Value(p), "a wrong digit must not land on the grid")

	ok, err = in.Apply(p, want)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, want, in.Grid().Value(p))
	require.Equal(t, 1, in.Mistakes)
}

func TestInstance_UndoRedo(t *testing.T) {
	in := newTestInstance(t)
	require.ErrorIs(t, in.Undo(), puzzle.ErrNothingToUndo)
	require.ErrorIs(t, in.Redo(), puzzle.ErrNothingToRedo)

	p := firstEmpty(in)
	want := in.Solution.Value(p)
	ok, err := in.Apply(p, want)
	require.NoError(t, err)
	require.True(t, ok)

	require.NoError(t, in.Undo())
	require.Zero(t, in.Grid().Value(p))
	require.NoError(t, in.Redo())
	require.Equal(t, want, in.Grid().Value(p))
	require.ErrorIs(t, in.Redo(), puzzle.ErrNothingToRedo)
}

// TestInstance_ApplyDropsRedoTail: playing after an undo forgets the
// undone future.
func TestInstance_ApplyDropsRedoTail(t *testing.T) {
	in := newTestInstance(t)
	p1 := firstEmpty(in)
	_, err := in.Apply(p1, in.Solution.Value(p1))
	require.NoError(t, err)
	require.NoError(t, in.Undo())

	p2 := firstEmpty(in)
	_, err = in.Apply(p2, in.Solution.Value(p2))
	require.NoError(t, err)
	require.ErrorIs(t, in.Redo(), puzzle.ErrNothingToRedo)
}

func TestInstance_Hint(t *testing.T) {
	in := newTestInstance(t)
	move, err := in.Hint()
	require.NoError(t, err)
	require.Equal(t, 1, in.HintsUsed)

	require.Equal(t, solve.Placement, move.Kind)
	require.Equal(t, in.Solution.Value(move.Cell), move.Digits[0])

	// The hint is playable as-is.
	ok, err := in.Apply(move.Cell, move.Digits[0])
	require.NoError(t, err)
	require.True(t, ok)
}

func TestInstance_PlayThrough(t *testing.T) {
	in := newTestInstance(t)
	for !in.Solved() {
		p := firstEmpty(in)
		ok, err := in.Apply(p, in.Solution.Value(p))
		require.NoError(t, err)
		require.True(t, ok)
	}
	require.Zero(t, in.Mistakes)
	require.Equal(t, in.Solution.String(), in.Serialize())
}
