package score

import "errors"

var (
	// ErrInvalidWeights indicates a NaN, infinite or negative multiplier.
	ErrInvalidWeights = errors.New("score: invalid weights")

	// ErrDegenerateName flags a name with no alphabetic characters. Such a name
	// is not an error for Score (it yields 0); callers opt in via CheckName.
	ErrDegenerateName = errors.New("score: name has no letters")
)
