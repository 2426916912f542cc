package assign

import (
	"errors"
	"fmt"
)

var (
	// ErrInputShape is returned when street and driver counts differ, or a
	// matrix handed to the solver is not square. Raised before any matrix work.
	ErrInputShape = errors.New("assign: input shape")

	// ErrEmptyInput is returned when either sequence (or matrix) is empty.
	// It wraps ErrInputShape, so errors.Is(err, ErrInputShape) also holds.
	ErrEmptyInput = fmt.Errorf("%w: empty input", ErrInputShape)

	// ErrInvalidScore indicates a ScoreFunc returned NaN, ±Inf or a negative value.
	ErrInvalidScore = errors.New("assign: invalid score")

	// ErrNilMatrix indicates a nil base or cost matrix.
	ErrNilMatrix = errors.New("assign: nil matrix")

	// ErrUnsupportedMethod indicates an unknown Method value or name.
	ErrUnsupportedMethod = errors.New("assign: unsupported method")

	// ErrNotBijective indicates a result that is not a one-to-one assignment.
	ErrNotBijective = errors.New("assign: result is not a bijection")
)
