package puzzle

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/katalvlaran/sudoku/board"
	"github.com/katalvlaran/sudoku/generate"
	"github.com/katalvlaran/sudoku/solve"
)

// Instance is one playable game built from a generated puzzle. It is
// not safe for concurrent use; the Cache serializes access for you.
type Instance struct {
	// ID is a process-local handle; Code, when set, is the portable
	// share code.
	ID   uuid.UUID
	Code string

	// Givens is the starting grid, Solution the completed one.
	Givens   *board.Grid
	Solution *board.Grid
	Rating   float64
	Tier     solve.Tier

	// Mistakes counts rejected wrong placements, HintsUsed the moves
	// handed out by Hint.
	Mistakes  int
	HintsUsed int

	current   *board.Grid
	snapshots []*board.Grid
	cursor    int
}

// NewInstance wraps a generated puzzle into a fresh game.
func NewInstance(p *generate.Puzzle) *Instance {
	start := p.Grid.Clone()
	return &Instance{
		ID:        uuid.New(),
		Givens:    p.Grid,
		Solution:  p.Solution,
		Rating:    p.Rating,
		Tier:      p.Tier,
		current:   start,
		snapshots: []*board.Grid{start.Clone()},
	}
}

// Grid returns a copy of the player's current grid.
func (in *Instance) Grid() *board.Grid { return in.current.Clone() }

// Solved reports whether the player's grid is complete.
func (in *Instance) Solved() bool { return in.current.IsComplete() }

// Apply plays a digit. A digit that disagrees with the solution is
// rejected and counted as a mistake; a correct one is placed and
// pushed onto the undo log, dropping any redo tail.
func (in *Instance) Apply(p board.Position, d uint8) (bool, error) {
	if in.Solution.Value(p) != d {
		in.Mistakes++
		return false, nil
	}
	if _, err := in.current.Place(p, d); err != nil {
		return false, fmt.Errorf("puzzle: applying %d at %s: %w", d, p, err)
	}
	in.snapshots = append(in.snapshots[:in.cursor+1], in.current.Clone())
	in.cursor++
	return true, nil
}

// Undo steps the grid back one applied move.
func (in *Instance) Undo() error {
	if in.cursor == 0 {
		return ErrNothingToUndo
	}
	in.cursor--
	in.current = in.snapshots[in.cursor].Clone()
	return nil
}

// Redo replays the move most recently undone.
func (in *Instance) Redo() error {
	if in.cursor == len(in.snapshots)-1 {
		return ErrNothingToRedo
	}
	in.cursor++
	in.current = in.snapshots[in.cursor].Clone()
	return nil
}

// Hint asks the technique dispatcher for the next justified move on
// the current grid and counts it.
func (in *Instance) Hint() (solve.Move, error) {
	opts := solve.DefaultOptions()
	opts.AssumeUnique = true
	move, err := solve.Step(in.current, opts)
	if err != nil {
		return solve.Move{}, err
	}
	in.HintsUsed++
	return move, nil
}

// Serialize renders the player's current grid in the 81-character
// wire form.
func (in *Instance) Serialize() string { return in.current.String() }
