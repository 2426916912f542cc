package assign

import (
	"fmt"
	"strings"
)

//go:generate go tool stringer -type=Method

// Method selects the extraction strategy run after row/column reduction.
type Method int

const (
	// Greedy takes, row by row, the first column holding the row minimum.
	Greedy Method = iota

	// KuhnMunkres solves the reduced matrix optimally (potentials + augmenting paths).
	KuhnMunkres
)

// ParseMethod maps a user-facing name to a Method. Case-insensitive;
// accepts "greedy", "kuhn-munkres", "kuhnmunkres" and "hungarian".
func ParseMethod(name string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "greedy":
		return Greedy, nil
	case "kuhn-munkres", "kuhnmunkres", "kuhn_munkres", "hungarian":
		return KuhnMunkres, nil
	}

	return Greedy, fmt.Errorf("%q: %w", name, ErrUnsupportedMethod)
}

// Options configures Solve.
type Options struct {
	// Method picks the extraction strategy. Zero value is Greedy.
	Method Method
}

// DefaultOptions returns Options{Method: Greedy}.
func DefaultOptions() Options {
	return Options{Method: Greedy}
}

// ScoreFunc scores one (street, driver) pair. score.Score and
// (*score.Scorer).Score both satisfy it.
type ScoreFunc func(street, driver string) float64

// Pair is one street→driver assignment.
type Pair struct {
	Street int `json:"street" yaml:"street"`
	Driver int `json:"driver" yaml:"driver"`
	// Weight is the BASE matrix entry at (Street, Driver), never a reduced cost.
	Weight float64 `json:"weight" yaml:"weight"`
}

// Result is a complete assignment.
//   - Pairs[i].Street == i for every i.
//   - Drivers across Pairs form a permutation of 0..n-1.
//   - Total is the sum of Pair weights.
type Result struct {
	Method Method  `json:"-" yaml:"-"`
	Pairs  []Pair  `json:"pairs" yaml:"pairs"`
	Total  float64 `json:"total" yaml:"total"`
}

// DriverOf returns the driver assigned to street i, or -1 when out of range.
func (r Result) DriverOf(i int) int {
	if i < 0 || i >= len(r.Pairs) {
		return -1
	}

	return r.Pairs[i].Driver
}
