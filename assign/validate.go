// Package assign - validation shared by the builder and the solvers.
//
// Design principles:
//   - Deterministic, side-effect free functions.
//   - No logging, no panics on user input - only sentinels from errors.go.
package assign

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/ssassign/matrix"
)

// validateSequences enforces the square precondition on the raw inputs.
// Empty wins over mismatch so that ([]{}, []{"x"}) reports ErrEmptyInput.
//
// Complexity: O(1).
func validateSequences(streets, drivers []string) error {
	if len(streets) == 0 || len(drivers) == 0 {
		return fmt.Errorf("%d streets, %d drivers: %w", len(streets), len(drivers), ErrEmptyInput)
	}
	if len(streets) != len(drivers) {
		return fmt.Errorf("%d streets, %d drivers: %w", len(streets), len(drivers), ErrInputShape)
	}

	return nil
}

// validateBase checks a matrix handed to the solver: non-nil, square, finite.
// Matrix sentinels are translated into assign sentinels while keeping the
// original error in the chain.
//
// Complexity: O(n²) (finite scan).
func validateBase(m matrix.Matrix) (int, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrNilMatrix, err)
	}
	if m.Rows() == 0 || m.Cols() == 0 {
		return 0, ErrEmptyInput
	}
	if err := matrix.ValidateSquare(m); err != nil {
		return 0, fmt.Errorf("%d×%d: %w: %w", m.Rows(), m.Cols(), ErrInputShape, err)
	}
	if err := matrix.ValidateFinite(m); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidScore, err)
	}

	return m.Rows(), nil
}

// ValidateResult verifies the bijection invariant for an n×n problem:
// one pair per street in street order, each driver used exactly once.
//
// Complexity: O(n) time, O(n) space.
func ValidateResult(res Result, n int) error {
	if len(res.Pairs) != n {
		return fmt.Errorf("%d pairs for n=%d: %w", len(res.Pairs), n, ErrNotBijective)
	}
	seen := make([]bool, n)
	for i, p := range res.Pairs {
		if p.Street != i {
			return fmt.Errorf("pair %d has street %d: %w", i, p.Street, ErrNotBijective)
		}
		if p.Driver < 0 || p.Driver >= n || seen[p.Driver] {
			return fmt.Errorf("driver %d reused or out of range: %w", p.Driver, ErrNotBijective)
		}
		seen[p.Driver] = true
	}

	return nil
}

// IsShapeError reports whether err is an input-shape failure.
func IsShapeError(err error) bool {
	return errors.Is(err, ErrInputShape)
}
