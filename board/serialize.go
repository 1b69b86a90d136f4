package board

import (
	"fmt"
	"strings"
)

// Empty is the canonical placeholder for an empty cell in the 81-char
// serialization. Parse additionally accepts '0'.
const Empty = '.'

// Parse builds a grid from the canonical 81-character row-major string.
// Filled cells become fixed givens with candidates propagated. Returns
// ErrInvalidFormat on wrong length or alphabet, ErrRuleViolation when
// the input places a digit twice in one house.
func Parse(s string) (*Grid, error) {
	if len(s) != CellCount {
		return nil, fmt.Errorf("%w: got %d chars", ErrInvalidFormat, len(s))
	}
	g := NewGrid()
	for i := 0; i < CellCount; i++ {
		ch := s[i]
		switch {
		case ch == Empty || ch == '0':
			continue
		case ch >= '1' && ch <= '9':
			if err := g.SetGiven(PositionOf(i), ch-'0'); err != nil {
				return nil, fmt.Errorf("cell %s: %w", PositionOf(i), err)
			}
		default:
			return nil, fmt.Errorf("%w: byte %q at index %d", ErrInvalidFormat, ch, i)
		}
	}
	return g, nil
}

// String renders the grid in the canonical 81-character row-major form,
// the exact interchange format for share codes and imports. The output
// is byte-for-byte stable for a given value assignment.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow(CellCount)
	for _, v := range g.values {
		if v == 0 {
			b.WriteByte(Empty)
		} else {
			b.WriteByte('0' + v)
		}
	}
	return b.String()
}

// Pretty renders a human-readable 9×9 layout with block separators.
// Diagnostic output only; the canonical form is String.
func (g *Grid) Pretty() string {
	var b strings.Builder
	for r := 0; r < GridSize; r++ {
		if r > 0 && r%3 == 0 {
			b.WriteString("──────┼───────┼──────\n")
		}
		for c := 0; c < GridSize; c++ {
			if c > 0 && c%3 == 0 {
				b.WriteString("│ ")
			}
			if v := g.values[r*GridSize+c]; v == 0 {
				b.WriteString(". ")
			} else {
				b.WriteByte('0' + v)
				b.WriteByte(' ')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
