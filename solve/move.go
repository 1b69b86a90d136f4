package solve

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/sudoku/board"
)

// MoveKind distinguishes the two inference outcomes.
type MoveKind uint8

const (
	// Placement writes a digit into a cell.
	Placement MoveKind = iota
	// Elimination removes candidate digits from a cell.
	Elimination
)

// Move is one deduction: place Digits[0] at Cell, or remove every digit
// in Digits from Cell's candidates. Because and Houses carry the cells
// and houses that justify the inference, enough to explain a hint.
type Move struct {
	Kind      MoveKind
	Cell      board.Position
	Digits    []uint8
	Technique Technique
	Because   []board.Position
	Houses    []board.House
}

// Weight returns the weight of the move's technique.
func (m Move) Weight() float64 { return m.Technique.Weight() }

// Explain renders a one-line human-readable justification.
func (m Move) Explain() string {
	var b strings.Builder
	if m.Kind == Placement {
		fmt.Fprintf(&b, "%s: %s = %d", m.Technique, m.Cell, m.Digits[0])
	} else {
		fmt.Fprintf(&b, "%s: %s −%v", m.Technique, m.Cell, m.Digits)
	}
	if len(m.Houses) > 0 {
		names := make([]string, len(m.Houses))
		for i, h := range m.Houses {
			names[i] = h.String()
		}
		fmt.Fprintf(&b, " in %s", strings.Join(names, ","))
	}
	if len(m.Because) > 0 {
		cells := make([]string, len(m.Because))
		for i, p := range m.Because {
			cells[i] = p.String()
		}
		fmt.Fprintf(&b, " (because %s)", strings.Join(cells, ","))
	}
	return b.String()
}

// placement is a small constructor helper used by every engine.
func placement(t Technique, cell int, d uint8, because []int, houses ...board.House) Move {
	return Move{
		Kind:      Placement,
		Cell:      board.PositionOf(cell),
		Digits:    []uint8{d},
		Technique: t,
		Because:   positionsOf(because),
		Houses:    houses,
	}
}

// elimination mirrors placement for candidate removals.
func elimination(t Technique, cell int, digits []uint8, because []int, houses ...board.House) Move {
	return Move{
		Kind:      Elimination,
		Cell:      board.PositionOf(cell),
		Digits:    digits,
		Technique: t,
		Because:   positionsOf(because),
		Houses:    houses,
	}
}

func positionsOf(cells []int) []board.Position {
	if len(cells) == 0 {
		return nil
	}
	out := make([]board.Position, len(cells))
	for i, c := range cells {
		out[i] = board.PositionOf(c)
	}
	return out
}
