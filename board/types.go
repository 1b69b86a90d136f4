// Package board defines core types for the 9×9 grid/candidate store.
package board

import "fmt"

// GridSize is the side length of the classic grid.
const GridSize = 9

// CellCount is the total number of cells.
const CellCount = GridSize * GridSize

// NumHouses is the number of houses: 9 rows + 9 columns + 9 blocks.
const NumHouses = 27

// Position identifies a cell by row and column, both in 0..8.
type Position struct {
	Row, Col int
}

// Pos constructs a Position. Fails loudly on out-of-range coordinates,
// since positions are produced by internal iteration, not user input.
func Pos(row, col int) Position {
	if row < 0 || row >= GridSize || col < 0 || col >= GridSize {
		panic(fmt.Sprintf("board: position (%d,%d) out of range", row, col))
	}
	return Position{Row: row, Col: col}
}

// Index maps the position to its row-major linear index 0..80.
func (p Position) Index() int { return p.Row*GridSize + p.Col }

// Block returns the 3×3 block index 0..8 containing the position.
func (p Position) Block() int { return (p.Row/3)*3 + p.Col/3 }

// String renders the position in r1c1 notation (1-based), the notation
// used throughout move justifications.
func (p Position) String() string {
	return fmt.Sprintf("r%dc%d", p.Row+1, p.Col+1)
}

// PositionOf converts a linear cell index 0..80 back to a Position.
func PositionOf(idx int) Position {
	return Position{Row: idx / GridSize, Col: idx % GridSize}
}

// Candidates is a set of digits 1..9 stored as a bitmask (bit d = digit d).
type Candidates uint16

// AllCandidates is the full set {1..9}.
const AllCandidates Candidates = 0x3FE

// Has reports whether digit d is in the set.
func (c Candidates) Has(d uint8) bool { return c&(1<<d) != 0 }

// Add returns the set with digit d included.
func (c Candidates) Add(d uint8) Candidates { return c | 1<<d }

// Remove returns the set with digit d excluded.
func (c Candidates) Remove(d uint8) Candidates { return c &^ (1 << d) }

// Count returns the number of digits in the set.
func (c Candidates) Count() int {
	n := 0
	for d := uint8(1); d <= 9; d++ {
		if c.Has(d) {
			n++
		}
	}
	return n
}

// Digits returns the digits in ascending order.
func (c Candidates) Digits() []uint8 {
	out := make([]uint8, 0, 9)
	for d := uint8(1); d <= 9; d++ {
		if c.Has(d) {
			out = append(out, d)
		}
	}
	return out
}

// Lowest returns the smallest digit in the set, or 0 if the set is empty.
func (c Candidates) Lowest() uint8 {
	for d := uint8(1); d <= 9; d++ {
		if c.Has(d) {
			return d
		}
	}
	return 0
}

// House identifies one of the 27 cell groups. The arena convention is
// fixed: 0..8 rows, 9..17 columns, 18..26 blocks.
type House int

// House arena bases.
const (
	HouseRowBase   House = 0
	HouseColBase   House = 9
	HouseBlockBase House = 18
)

// Kind reports the house family: 0 row, 1 column, 2 block.
func (h House) Kind() int { return int(h) / GridSize }

// String renders the house in short community notation: r1, c1 or b1.
func (h House) String() string {
	switch {
	case h < HouseColBase:
		return fmt.Sprintf("r%d", int(h)+1)
	case h < HouseBlockBase:
		return fmt.Sprintf("c%d", int(h-HouseColBase)+1)
	default:
		return fmt.Sprintf("b%d", int(h-HouseBlockBase)+1)
	}
}

// RowHouse, ColHouse and BlockHouse map a 0-based index to its House.
func RowHouse(r int) House   { return HouseRowBase + House(r) }
func ColHouse(c int) House   { return HouseColBase + House(c) }
func BlockHouse(b int) House { return HouseBlockBase + House(b) }
