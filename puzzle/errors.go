package puzzle

import "errors"

var (
	// ErrInvalidCode - the share code is malformed: wrong length,
	// unknown tier letter, or a character outside the alphabet.
	ErrInvalidCode = errors.New("puzzle: invalid share code")

	// ErrInvalidSeed - the seed does not fit the 35-bit code space.
	ErrInvalidSeed = errors.New("puzzle: seed out of code range")

	// ErrNothingToUndo - the move log cursor is at the start.
	ErrNothingToUndo = errors.New("puzzle: nothing to undo")

	// ErrNothingToRedo - the move log cursor is at the end.
	ErrNothingToRedo = errors.New("puzzle: nothing to redo")
)
