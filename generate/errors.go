package generate

import "errors"

// ErrGenerationFailed - no attempt produced a uniquely-solvable
// puzzle within the attempt budget.
var ErrGenerationFailed = errors.New("generate: generation failed")
