package assign

import (
	"fmt"

	"github.com/katalvlaran/ssassign/matrix"
)

// Extract performs the greedy extraction (step 5) on a reduced cost matrix.
//
// The shrinking matrix is modelled with two active index sets instead of
// deleting rows and columns: at each step the first active row is matched to
// the first active column (lowest original index) holding that row's minimum
// over the active columns; the pair is recorded with its weight from base and
// both indices leave their sets. Exactly n steps.
//
// The choice is local: a perfect matching of zeros is not searched for, so
// later rows may be forced onto non-zero cells even when an all-zero
// assignment exists. See KuhnMunkres for the optimal alternative.
//
// Errors: ErrNilMatrix, ErrEmptyInput, ErrInputShape, ErrInvalidScore.
// Complexity: O(n²) time, O(n) extra space.
func Extract(base, cost matrix.Matrix) (Result, error) {
	n, err := validateBase(base)
	if err != nil {
		return Result{}, err
	}
	if err = matrix.ValidateNotNil(cost); err != nil {
		return Result{}, fmt.Errorf("%w: %w", ErrNilMatrix, err)
	}
	if err = matrix.ValidateSameShape(base, cost); err != nil {
		return Result{}, fmt.Errorf("cost %d×%d vs base %d×%d: %w: %w",
			cost.Rows(), cost.Cols(), n, n, ErrInputShape, err)
	}

	rows := matrix.Sequence(n)
	cols := matrix.Sequence(n)
	res := Result{Method: Greedy, Pairs: make([]Pair, 0, n)}

	var (
		i, j int
		w    float64
	)
	for len(rows) > 0 {
		i = rows[0]
		if _, j, err = matrix.RowMin(cost, i, cols); err != nil {
			return Result{}, err
		}
		w, _ = base.At(i, j)
		res.Pairs = append(res.Pairs, Pair{Street: i, Driver: j, Weight: w})
		res.Total += w

		cols = removeIndex(cols, j)
		rows = rows[1:]
	}

	return res, nil
}

// removeIndex drops the first occurrence of v from set, preserving order.
func removeIndex(set []int, v int) []int {
	for k, x := range set {
		if x == v {
			return append(set[:k], set[k+1:]...)
		}
	}

	return set
}
