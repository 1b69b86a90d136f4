package main

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/sudoku/solve"
)

var log = logrus.New()

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "sudoku",
	Short: "Generate, rate and solve classic 9x9 sudoku puzzles",
	Long: `sudoku works on the 81-character wire form: rows concatenated
top to bottom, digits for givens, '.' or '0' for empty cells.

Difficulty tiers: Beginner, Easy, Medium, Intermediate, Hard, Expert,
Master, Extreme.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(*cobra.Command, []string) {
		log.SetLevel(logrus.WarnLevel)
		if verbose {
			log.SetLevel(logrus.DebugLevel)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log generation progress")
}

// parseTier resolves a tier name, case-insensitively.
func parseTier(s string) (solve.Tier, error) {
	for t := solve.Beginner; t <= solve.Extreme; t++ {
		if strings.EqualFold(s, t.String()) {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown tier %q", s)
}
