package assign_test

import (
	"math/rand/v2"
	"testing"

	"github.com/katalvlaran/ssassign/matrix"
	"github.com/stretchr/testify/require"
)

// mustDense builds a Dense from literal rows or fails the test.
func mustDense(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(rows)
	require.NoError(t, err)

	return m
}

// randomBase returns an n×n matrix of non-negative weights on a 0.5 grid,
// which produces plenty of ties (the interesting case for greedy extraction).
func randomBase(t testing.TB, rng *rand.Rand, n int) *matrix.Dense {
	t.Helper()
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n)
		for j := range rows[i] {
			rows[i][j] = float64(rng.IntN(9)) * 0.5
		}
	}

	return mustDense(t, rows)
}

// bruteForceMax returns the maximum total weight over all permutations.
func bruteForceMax(m matrix.Matrix) float64 {
	n := m.Rows()
	perm := matrix.Sequence(n)
	best := -1.0

	var walk func(k int, acc float64)
	walk = func(k int, acc float64) {
		if k == n {
			if acc > best {
				best = acc
			}
			return
		}
		for i := k; i < n; i++ {
			perm[k], perm[i] = perm[i], perm[k]
			w, _ := m.At(k, perm[k])
			walk(k+1, acc+w)
			perm[k], perm[i] = perm[i], perm[k]
		}
	}
	walk(0, 0)

	return best
}
