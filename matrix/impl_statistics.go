// SPDX-License-Identifier: MIT

// Package matrix - extremum scans used by row/column reduction.
//
// Purpose:
//   - Max over all cells (shift constant for the negate-and-shift transform).
//   - RowMin / ColMin restricted to explicit index sets, so a caller can model a
//     shrinking matrix (rows/cols removed) without physically resizing storage.
//
// Determinism:
//   - Index sets are scanned in the order given; ties resolve to the FIRST
//     index attaining the extremum (strict < comparison).
package matrix

import "fmt"

// Max returns the largest value over all cells of m.
//
// Errors: ErrNilMatrix.
// Complexity: O(r*c).
func Max(m Matrix) (float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, fmt.Errorf("Max: %w", err)
	}

	best, _ := m.At(0, 0) // Dense forbids 0×0, so (0,0) always exists
	var (
		i, j int
		v    float64
	)
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			v, _ = m.At(i, j)
			if v > best {
				best = v
			}
		}
	}

	return best, nil
}

// RowMin returns the minimum of row i over the columns listed in cols and the
// first column (in cols order) attaining it.
//
// Errors: ErrNilMatrix, ErrEmptyIndexSet, ErrOutOfRange.
// Complexity: O(len(cols)).
func RowMin(m Matrix, i int, cols []int) (minVal float64, at int, err error) {
	if err = ValidateNotNil(m); err != nil {
		return 0, -1, fmt.Errorf("RowMin: %w", err)
	}
	if len(cols) == 0 {
		return 0, -1, fmt.Errorf("RowMin(%d): %w", i, ErrEmptyIndexSet)
	}

	at = -1
	var v float64
	for _, j := range cols {
		if v, err = m.At(i, j); err != nil {
			return 0, -1, fmt.Errorf("RowMin: %w", err)
		}
		if at < 0 || v < minVal { // strict: first minimum wins
			minVal, at = v, j
		}
	}

	return minVal, at, nil
}

// ColMin returns the minimum of column j over the rows listed in rows and the
// first row (in rows order) attaining it.
//
// Errors: ErrNilMatrix, ErrEmptyIndexSet, ErrOutOfRange.
// Complexity: O(len(rows)).
func ColMin(m Matrix, j int, rows []int) (minVal float64, at int, err error) {
	if err = ValidateNotNil(m); err != nil {
		return 0, -1, fmt.Errorf("ColMin: %w", err)
	}
	if len(rows) == 0 {
		return 0, -1, fmt.Errorf("ColMin(%d): %w", j, ErrEmptyIndexSet)
	}

	at = -1
	var v float64
	for _, i := range rows {
		if v, err = m.At(i, j); err != nil {
			return 0, -1, fmt.Errorf("ColMin: %w", err)
		}
		if at < 0 || v < minVal {
			minVal, at = v, i
		}
	}

	return minVal, at, nil
}

// Sequence returns the index set [0, 1, ..., n-1].
// Complexity: O(n).
func Sequence(n int) []int {
	if n <= 0 {
		return nil
	}
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}

	return out
}
