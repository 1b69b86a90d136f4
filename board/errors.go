package board

import "errors"

// Sentinel errors for board operations.
var (
	// ErrGivenConflict indicates an attempt to overwrite a fixed given cell.
	ErrGivenConflict = errors.New("board: cell is a fixed given")
	// ErrRuleViolation indicates the digit already occupies a shared house.
	ErrRuleViolation = errors.New("board: digit already placed in row, column or block")
	// ErrInvalidFormat indicates a malformed 81-character grid serialization.
	ErrInvalidFormat = errors.New("board: serialized grid must be 81 chars of '1'-'9', '.' or '0'")
)
