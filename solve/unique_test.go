package solve

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sudoku/board"
)

// A near-grave grid: every unsolved cell bivalue except r9c7 {2,5,7},
// but digit 5 occurs only once in row 9, so stripping any digit from
// r9c7 leaves no grave and no placement is forced. The unique solution
// puts 5 there; claiming the pattern on house parity alone would have
// placed 2.
func TestBUG_RejectsNearGrave(t *testing.T) {
	g, err := board.Parse("563918.4.7493526812187469359345671286712834598254913763..12.8..1..87...348.639.1.")
	require.NoError(t, err)

	f := newFabric(g)
	require.Equal(t, board.Candidates(0).Add(2).Add(5).Add(7), f.cands[78])
	require.Empty(t, findBUG(f))
}

func TestGraveWithout(t *testing.T) {
	g, err := board.Parse("563918.4.7493526812187469359345671286712834598254913763..12.8..1..87...348.639.1.")
	require.NoError(t, err)

	f := newFabric(g)
	for _, d := range []uint8{2, 5, 7} {
		require.False(t, graveWithout(f, 78, d), "digit %d", d)
	}
}
