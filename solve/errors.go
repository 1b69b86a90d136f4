package solve

import "errors"

// Sentinel errors for dispatcher outcomes.
var (
	// ErrStuck indicates no engine yields a move on an incomplete grid —
	// a legitimate terminal state, not a failure.
	ErrStuck = errors.New("solve: no applicable technique")
	// ErrSolved indicates a step was requested on an already complete grid.
	ErrSolved = errors.New("solve: grid already complete")
	// ErrUnratable indicates the dispatcher stuck before completion, so
	// the technique trail cannot produce a full rating.
	ErrUnratable = errors.New("solve: grid not solvable by the technique set")
)
