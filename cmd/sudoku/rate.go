package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/sudoku/board"
	"github.com/katalvlaran/sudoku/solve"
	"github.com/katalvlaran/sudoku/verify"
)

func init() {
	rateCmd := &cobra.Command{
		Use:   "rate <grid>",
		Short: "Rate a puzzle's difficulty",
		Long: `Rate a puzzle by solving it with human techniques only.

The grid is checked for solution uniqueness first; uniqueness-based
techniques are enabled only when it holds. A puzzle the engines cannot
finish reports "unratable".`,
		Args: cobra.ExactArgs(1),
		RunE: runRate,
	}
	rootCmd.AddCommand(rateCmd)
}

func runRate(_ *cobra.Command, args []string) error {
	g, err := board.Parse(args[0])
	if err != nil {
		return err
	}
	unique := verify.IsUnique(g)
	if !unique {
		log.Warn("puzzle does not have a unique solution")
	}

	opts := solve.DefaultOptions()
	opts.AssumeUnique = unique
	trail, err := solve.Solve(g, opts)
	if errors.Is(err, solve.ErrStuck) {
		fmt.Printf("unratable: stuck after %d moves\n", len(trail.Moves))
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Printf("rating=%.1f tier=%s moves=%d unique=%t\n",
		trail.Rating, trail.Tier, len(trail.Moves), unique)

	// Technique histogram, hardest last.
	counts := make(map[solve.Technique]int)
	for _, m := range trail.Moves {
		counts[m.Technique]++
	}
	for t := solve.NakedSingle; t <= solve.AIC; t++ {
		if n, ok := counts[t]; ok {
			fmt.Printf("  %-24s x%d (%.1f)\n", t, n, t.Weight())
		}
	}
	return nil
}
