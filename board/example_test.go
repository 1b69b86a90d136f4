package board_test

import (
	"fmt"

	"github.com/katalvlaran/sudoku/board"
)

// ExampleParse demonstrates the canonical 81-character interchange form
// and the rule-checked placement API.
func ExampleParse() {
	g, _ := board.Parse("530070000600195000098000060800060003400803001700020006060000280000419005000080079")

	fmt.Println("givens:", g.GivenCount())
	fmt.Println("empty: ", g.EmptyCount())

	// r1c3 is empty; the row already holds 5,3,7 and the block 6,9,8.
	fmt.Println("candidates at r1c3:", g.CandidatesAt(board.Pos(0, 2)).Digits())

	if _, err := g.Place(board.Pos(0, 2), 5); err != nil {
		fmt.Println("placing 5:", err)
	}
	if _, err := g.Place(board.Pos(0, 2), 4); err == nil {
		fmt.Println("placed 4 at r1c3")
	}

	// Output:
	// givens: 30
	// empty:  51
	// candidates at r1c3: [1 2 4]
	// placing 5: board: digit already placed in row, column or block: 5 in r1
	// placed 4 at r1c3
}
