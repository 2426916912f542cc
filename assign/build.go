package assign

import (
	"fmt"
	"math"

	"github.com/katalvlaran/ssassign/matrix"
	"github.com/katalvlaran/ssassign/score"
)

// BuildBase scores every (street, driver) pair into an n×n base matrix:
// base[i][j] = fn(streets[i], drivers[j]). A nil fn means score.Score.
//
// Contracts:
//   - both sequences non-empty and of equal length, checked before allocation;
//   - every score finite and ≥ 0.
//
// Errors: ErrEmptyInput, ErrInputShape, ErrInvalidScore.
//
// Complexity: O(n²) score calls, O(n²) memory. No caching between cells.
func BuildBase(streets, drivers []string, fn ScoreFunc) (*matrix.Dense, error) {
	if err := validateSequences(streets, drivers); err != nil {
		return nil, err
	}
	if fn == nil {
		fn = score.Score
	}

	base, err := matrix.NewDense(len(streets), len(drivers))
	if err != nil {
		return nil, err
	}

	var (
		i, j int
		w    float64
	)
	for i = 0; i < len(streets); i++ {
		for j = 0; j < len(drivers); j++ {
			w = fn(streets[i], drivers[j])
			if math.IsNaN(w) || math.IsInf(w, 0) || w < 0 {
				return nil, fmt.Errorf("score(%q, %q)=%v: %w", streets[i], drivers[j], w, ErrInvalidScore)
			}
			if err = base.Set(i, j, w); err != nil {
				return nil, err
			}
		}
	}

	return base, nil
}
