package assign

import (
	"math"

	"github.com/katalvlaran/ssassign/matrix"
)

// kuhnMunkres solves the square assignment problem on cost optimally and
// returns rowToCol[i] = column assigned to row i.
//
// Kuhn–Munkres with potentials (Jonker–Volgenant style shortest augmenting
// paths). Arrays are 1-indexed internally; index 0 is a virtual column.
//
// Complexity: O(n³) time, O(n) extra space beyond the n×n read-only input.
func kuhnMunkres(cost matrix.Matrix, n int) []int {
	inf := math.MaxFloat64 / 2

	u := make([]float64, n+1) // row potentials
	v := make([]float64, n+1) // column potentials
	p := make([]int, n+1)     // p[j] = row matched to column j (0 = free)
	way := make([]int, n+1)   // way[j] = previous column on the augmenting path
	minv := make([]float64, n+1)
	used := make([]bool, n+1)

	var c float64
	for i := 1; i <= n; i++ {
		p[0] = i
		j0 := 0
		for j := 1; j <= n; j++ {
			minv[j] = inf
			used[j] = false
		}

		for {
			used[j0] = true
			i0 := p[j0]
			delta := inf
			j1 := -1

			for j := 1; j <= n; j++ {
				if used[j] {
					continue
				}
				c, _ = cost.At(i0-1, j-1)
				cur := c - u[i0] - v[j]
				if cur < minv[j] {
					minv[j] = cur
					way[j] = j0
				}
				if minv[j] < delta {
					delta = minv[j]
					j1 = j
				}
			}
			if j1 < 0 {
				break // unreachable for finite square input
			}

			for j := 0; j <= n; j++ {
				if used[j] {
					u[p[j]] += delta
					v[j] -= delta
				} else {
					minv[j] -= delta
				}
			}

			j0 = j1
			if p[j0] == 0 {
				break
			}
		}

		// Augment along the path.
		for j0 != 0 {
			j1 := way[j0]
			p[j0] = p[j1]
			j0 = j1
		}
	}

	rowToCol := make([]int, n)
	for j := 1; j <= n; j++ {
		if p[j] > 0 {
			rowToCol[p[j]-1] = j - 1
		}
	}

	return rowToCol
}

// extractOptimal runs kuhnMunkres on the reduced cost matrix and reads the
// weights back from base.
func extractOptimal(base, cost matrix.Matrix, n int) Result {
	rowToCol := kuhnMunkres(cost, n)
	res := Result{Method: KuhnMunkres, Pairs: make([]Pair, n)}
	for i, j := range rowToCol {
		w, _ := base.At(i, j)
		res.Pairs[i] = Pair{Street: i, Driver: j, Weight: w}
		res.Total += w
	}

	return res
}
