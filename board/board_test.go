package board

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const easyPuzzle = "530070000600195000098000060800060003400803001700020006060000280000419005000080079"

// TestPlace_RemovesPeerCandidates verifies that a successful placement
// strips the digit from every peer's candidate set and reports exactly
// the cells whose state changed.
func TestPlace_RemovesPeerCandidates(t *testing.T) {
	g := NewGrid()
	changed, err := g.Place(Pos(4, 4), 5)
	require.NoError(t, err)
	require.Equal(t, Pos(4, 4), changed[0], "placed cell reported first")
	require.Len(t, changed, 21, "cell plus its 20 peers")

	require.EqualValues(t, 5, g.Value(Pos(4, 4)))
	require.False(t, g.CandidatesAt(Pos(4, 0)).Has(5), "row peer candidate removed")
	require.False(t, g.CandidatesAt(Pos(0, 4)).Has(5), "column peer candidate removed")
	require.False(t, g.CandidatesAt(Pos(3, 3)).Has(5), "block peer candidate removed")
	require.True(t, g.CandidatesAt(Pos(0, 0)).Has(5), "non-peer unaffected")
}

// TestPlace_RuleViolation verifies house collision detection on all
// three house kinds.
func TestPlace_RuleViolation(t *testing.T) {
	cases := []struct {
		name string
		at   Position
	}{
		{"same row", Pos(2, 8)},
		{"same column", Pos(8, 2)},
		{"same block", Pos(1, 1)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := NewGrid()
			_, err := g.Place(Pos(2, 2), 7)
			require.NoError(t, err)
			_, err = g.Place(tc.at, 7)
			require.ErrorIs(t, err, ErrRuleViolation)
			require.EqualValues(t, 0, g.Value(tc.at), "rejected placement must not stick")
		})
	}
}

// TestPlace_GivenConflict verifies that fixed givens are immutable.
func TestPlace_GivenConflict(t *testing.T) {
	g := NewGrid()
	require.NoError(t, g.SetGiven(Pos(0, 0), 3))
	_, err := g.Place(Pos(0, 0), 4)
	require.ErrorIs(t, err, ErrGivenConflict)
	require.EqualValues(t, 3, g.Value(Pos(0, 0)))
}

// TestCandidateInvariant verifies that no empty cell ever lists a digit
// already placed in one of its houses, after parsing a real puzzle.
func TestCandidateInvariant(t *testing.T) {
	g, err := Parse(easyPuzzle)
	require.NoError(t, err)

	for idx := 0; idx < CellCount; idx++ {
		p := PositionOf(idx)
		if g.Value(p) != 0 {
			continue
		}
		for _, d := range g.CandidatesAt(p).Digits() {
			for _, h := range CellHouses(idx) {
				require.False(t, g.PlacedIn(h).Has(d),
					"cell %s candidate %d already placed in %s", p, d, h)
			}
		}
	}
}

// TestParse_RoundTrip covers the byte-for-byte interchange contract,
// including the '0'-as-empty input alias.
func TestParse_RoundTrip(t *testing.T) {
	g, err := Parse(easyPuzzle)
	require.NoError(t, err)
	canonical := g.String()

	back, err := Parse(canonical)
	require.NoError(t, err)
	require.Equal(t, canonical, back.String())
	require.True(t, g.Equal(back))

	// '0' normalizes to '.' on output.
	require.NotContains(t, canonical, "0")
	require.EqualValues(t, 30, g.GivenCount())
}

// TestParse_Invalid rejects wrong lengths, bad bytes and duplicate digits.
func TestParse_Invalid(t *testing.T) {
	_, err := Parse("123")
	require.ErrorIs(t, err, ErrInvalidFormat)

	bad := []byte(easyPuzzle)
	bad[5] = 'x'
	_, err = Parse(string(bad))
	require.ErrorIs(t, err, ErrInvalidFormat)

	dup := []byte(easyPuzzle)
	dup[1] = '5' // second 5 in row 1
	_, err = Parse(string(dup))
	require.ErrorIs(t, err, ErrRuleViolation)
}

// TestClearAndRecompute verifies the generator's remove-then-recompute
// path restores candidates for the vacated cell and its peers.
func TestClearAndRecompute(t *testing.T) {
	g, err := Parse(easyPuzzle)
	require.NoError(t, err)

	p := Pos(0, 0) // given 5
	g.Clear(p)
	g.RecomputeCandidates()

	require.EqualValues(t, 0, g.Value(p))
	require.False(t, g.IsGiven(p))
	require.True(t, g.CandidatesAt(p).Has(5), "vacated digit is a candidate again")
	require.False(t, g.CandidatesAt(p).Has(3), "row still blocks 3")
}

func TestTopology(t *testing.T) {
	// Every cell belongs to exactly one house of each kind.
	for idx := 0; idx < CellCount; idx++ {
		hs := CellHouses(idx)
		require.Equal(t, 0, hs[0].Kind())
		require.Equal(t, 1, hs[1].Kind())
		require.Equal(t, 2, hs[2].Kind())
	}
	// Sees is symmetric and irreflexive.
	require.True(t, Sees(0, 8))   // same row
	require.True(t, Sees(0, 72))  // same column
	require.True(t, Sees(0, 10))  // same block
	require.False(t, Sees(0, 80)) // nothing shared
	require.False(t, Sees(40, 40))
}

func TestCandidatesBitset(t *testing.T) {
	var c Candidates
	c = c.Add(3).Add(7).Add(9)
	require.Equal(t, 3, c.Count())
	require.Equal(t, []uint8{3, 7, 9}, c.Digits())
	require.EqualValues(t, 3, c.Lowest())
	c = c.Remove(3)
	require.False(t, c.Has(3))
	require.Equal(t, 9, AllCandidates.Count())
}
