package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/sudoku/board"
	"github.com/katalvlaran/sudoku/solve"
	"github.com/katalvlaran/sudoku/verify"
)

var (
	solveExplain   bool
	solveBacktrack bool
)

func init() {
	solveCmd := &cobra.Command{
		Use:   "solve <grid>",
		Short: "Solve a puzzle",
		Long: `Solve a puzzle with human techniques, falling back to
backtracking search with --force when the engines get stuck.

Examples:
  sudoku solve 53..7....6..195....98....6.8...6...34..8.3..17...2...6.6....28....419..5....8..79
  sudoku solve --explain <grid>`,
		Args: cobra.ExactArgs(1),
		RunE: runSolve,
	}
	solveCmd.Flags().BoolVar(&solveExplain, "explain", false, "Print every technique step")
	solveCmd.Flags().BoolVar(&solveBacktrack, "force", false, "Fall back to backtracking when stuck")
	rootCmd.AddCommand(solveCmd)
}

func runSolve(_ *cobra.Command, args []string) error {
	g, err := board.Parse(args[0])
	if err != nil {
		return err
	}

	opts := solve.DefaultOptions()
	opts.AssumeUnique = verify.IsUnique(g)
	trail, err := solve.Solve(g, opts)
	if err != nil && !errors.Is(err, solve.ErrStuck) {
		return err
	}

	if solveExplain {
		for i, m := range trail.Moves {
			fmt.Printf("%3d. %s\n", i+1, m.Explain())
		}
	}

	if trail.State == solve.StateSolved {
		fmt.Println(trail.Grid)
		return nil
	}
	if !solveBacktrack {
		return fmt.Errorf("stuck after %d moves; rerun with --force for a backtracking solve", len(trail.Moves))
	}
	sol, ok := verify.FirstSolution(g, nil)
	if !ok {
		return fmt.Errorf("puzzle has no solution")
	}
	log.Debug("techniques stuck, solved by backtracking")
	fmt.Println(sol)
	return nil
}
