package report

import (
	"fmt"

	"github.com/katalvlaran/ssassign/assign"
	"github.com/katalvlaran/ssassign/matrix"
)

// Row is one resolved street→driver line.
type Row struct {
	Street string  `json:"street" yaml:"street"`
	Driver string  `json:"driver" yaml:"driver"`
	Score  float64 `json:"score" yaml:"score"`
}

// Assignment is a Result with names in place of indices.
type Assignment struct {
	Method string  `json:"method" yaml:"method"`
	Rows   []Row   `json:"rows" yaml:"rows"`
	Total  float64 `json:"total" yaml:"total"`
}

// Comparison pairs the greedy and optimal assignments.
type Comparison struct {
	Greedy  Assignment `json:"greedy" yaml:"greedy"`
	Optimal Assignment `json:"optimal" yaml:"optimal"`
	Gap     float64    `json:"gap" yaml:"gap"`
}

// Grid is a labelled base matrix.
type Grid struct {
	Streets []string    `json:"streets" yaml:"streets"`
	Drivers []string    `json:"drivers" yaml:"drivers"`
	Scores  [][]float64 `json:"scores" yaml:"scores"`
}

// NewAssignment resolves res against the rosters it was computed from.
func NewAssignment(streets, drivers []string, res assign.Result) (Assignment, error) {
	out := Assignment{
		Method: res.Method.String(),
		Rows:   make([]Row, 0, len(res.Pairs)),
		Total:  res.Total,
	}
	for _, p := range res.Pairs {
		if p.Street < 0 || p.Street >= len(streets) || p.Driver < 0 || p.Driver >= len(drivers) {
			return Assignment{}, fmt.Errorf("pair (%d,%d) outside %d streets / %d drivers",
				p.Street, p.Driver, len(streets), len(drivers))
		}
		out.Rows = append(out.Rows, Row{
			Street: streets[p.Street],
			Driver: drivers[p.Driver],
			Score:  p.Weight,
		})
	}

	return out, nil
}

// NewComparison resolves both sides of cmp.
func NewComparison(streets, drivers []string, cmp assign.Comparison) (Comparison, error) {
	g, err := NewAssignment(streets, drivers, cmp.Greedy)
	if err != nil {
		return Comparison{}, err
	}
	o, err := NewAssignment(streets, drivers, cmp.Optimal)
	if err != nil {
		return Comparison{}, err
	}

	return Comparison{Greedy: g, Optimal: o, Gap: cmp.Gap}, nil
}

// NewGrid labels base with the roster names.
func NewGrid(streets, drivers []string, base *matrix.Dense) (Grid, error) {
	if base == nil {
		return Grid{}, matrix.ErrNilMatrix
	}
	if base.Rows() != len(streets) || base.Cols() != len(drivers) {
		return Grid{}, fmt.Errorf("%d×%d matrix for %d streets / %d drivers: %w",
			base.Rows(), base.Cols(), len(streets), len(drivers), matrix.ErrDimensionMismatch)
	}

	return Grid{Streets: streets, Drivers: drivers, Scores: base.ToRows()}, nil
}
