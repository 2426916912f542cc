package assign

import "github.com/katalvlaran/ssassign/matrix"

// gapTol absorbs floating-point noise when deciding whether greedy is optimal.
const gapTol = 1e-9

// Comparison reports how far the greedy extraction is from the optimum.
type Comparison struct {
	Greedy  Result  `json:"greedy" yaml:"greedy"`
	Optimal Result  `json:"optimal" yaml:"optimal"`
	Gap     float64 `json:"gap" yaml:"gap"` // Optimal.Total - Greedy.Total, ≥ 0
}

// IsOptimal reports whether greedy reached the optimal total.
func (c Comparison) IsOptimal() bool { return c.Gap <= gapTol }

// Compare solves base with both methods.
func Compare(base matrix.Matrix) (Comparison, error) {
	g, err := Solve(base, Options{Method: Greedy})
	if err != nil {
		return Comparison{}, err
	}
	o, err := Solve(base, Options{Method: KuhnMunkres})
	if err != nil {
		return Comparison{}, err
	}

	gap := o.Total - g.Total
	if gap < 0 && -gap <= gapTol {
		gap = 0
	}

	return Comparison{Greedy: g, Optimal: o, Gap: gap}, nil
}
