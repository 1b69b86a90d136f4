package board

// Static house topology. The 9×9 shape never changes, so membership
// tables are flat arenas computed once at package init and shared by
// every Grid.

// houseCells[h] lists the 9 linear cell indices of house h in scan order
// (left→right for rows, top→bottom for columns, row-major for blocks).
var houseCells [NumHouses][GridSize]int

// cellHouses[idx] lists the three houses of a cell: row, column, block.
var cellHouses [CellCount][3]House

// peers[idx] lists the 20 cells sharing a house with idx, excluding idx.
var peers [CellCount][20]int

func init() {
	for r := 0; r < GridSize; r++ {
		for c := 0; c < GridSize; c++ {
			houseCells[RowHouse(r)][c] = r*GridSize + c
			houseCells[ColHouse(c)][r] = r*GridSize + c
		}
	}
	for b := 0; b < GridSize; b++ {
		br, bc := (b/3)*3, (b%3)*3
		for i := 0; i < GridSize; i++ {
			houseCells[BlockHouse(b)][i] = (br+i/3)*GridSize + bc + i%3
		}
	}
	for idx := 0; idx < CellCount; idx++ {
		p := PositionOf(idx)
		cellHouses[idx] = [3]House{RowHouse(p.Row), ColHouse(p.Col), BlockHouse(p.Block())}

		n := 0
		for c := 0; c < GridSize; c++ {
			if c != p.Col {
				peers[idx][n] = p.Row*GridSize + c
				n++
			}
		}
		for r := 0; r < GridSize; r++ {
			if r != p.Row {
				peers[idx][n] = r*GridSize + p.Col
				n++
			}
		}
		br, bc := (p.Row/3)*3, (p.Col/3)*3
		for r := br; r < br+3; r++ {
			for c := bc; c < bc+3; c++ {
				if r != p.Row && c != p.Col {
					peers[idx][n] = r*GridSize + c
					n++
				}
			}
		}
	}
}

// HouseCells returns the 9 linear cell indices of house h in scan order.
func HouseCells(h House) [GridSize]int { return houseCells[h] }

// CellHouses returns the row, column and block houses of a cell index.
func CellHouses(idx int) [3]House { return cellHouses[idx] }

// Peers returns the 20 peer cell indices of a cell index.
func Peers(idx int) [20]int { return peers[idx] }

// Sees reports whether two distinct cells share at least one house.
func Sees(a, b int) bool {
	if a == b {
		return false
	}
	pa, pb := PositionOf(a), PositionOf(b)
	return pa.Row == pb.Row || pa.Col == pb.Col || pa.Block() == pb.Block()
}
