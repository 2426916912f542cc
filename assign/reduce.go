package assign

import (
	"github.com/katalvlaran/ssassign/matrix"
)

// Reduce derives the reduced cost matrix from base (steps 1–4):
//
//	cost[i][j] = max(base) - base[i][j]         negate + shift
//	cost[i][*] -= min(cost[i][*])               row reduction
//	cost[*][j] -= min(cost[*][j])               column reduction
//
// base is never modified. On return every row and every column of the cost
// matrix holds at least one exact zero, and all entries are ≥ 0.
//
// Errors: ErrNilMatrix, ErrEmptyInput, ErrInputShape, ErrInvalidScore.
// Complexity: O(n²).
func Reduce(base matrix.Matrix) (*matrix.Dense, error) {
	n, err := validateBase(base)
	if err != nil {
		return nil, err
	}

	cost, err := negateShift(base)
	if err != nil {
		return nil, err
	}
	if err = reduceRows(cost, n); err != nil {
		return nil, err
	}
	if err = reduceCols(cost, n); err != nil {
		return nil, err
	}

	return cost, nil
}

// negateShift builds the working copy: a clone of base mapped to max(base) - v.
// The shift is taken over the ORIGINAL base, so the largest score maps to 0.
func negateShift(base matrix.Matrix) (*matrix.Dense, error) {
	shift, err := matrix.Max(base)
	if err != nil {
		return nil, err
	}
	cost, err := matrix.ToDense(base)
	if err != nil {
		return nil, err
	}
	if err = cost.Apply(func(_, _ int, v float64) float64 { return shift - v }); err != nil {
		return nil, err
	}

	return cost, nil
}

// reduceRows subtracts each row minimum from its row.
func reduceRows(cost *matrix.Dense, n int) error {
	cols := matrix.Sequence(n)
	mins := make([]float64, n)
	var err error
	for i := 0; i < n; i++ {
		if mins[i], _, err = matrix.RowMin(cost, i, cols); err != nil {
			return err
		}
	}

	return cost.Apply(func(i, _ int, v float64) float64 { return v - mins[i] })
}

// reduceCols subtracts each column minimum (of the row-reduced matrix) from its column.
func reduceCols(cost *matrix.Dense, n int) error {
	rows := matrix.Sequence(n)
	mins := make([]float64, n)
	var err error
	for j := 0; j < n; j++ {
		if mins[j], _, err = matrix.ColMin(cost, j, rows); err != nil {
			return err
		}
	}

	return cost.Apply(func(_, j int, v float64) float64 { return v - mins[j] })
}
