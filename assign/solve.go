// Package assign - unified dispatcher.
//
// This file provides the canonical entry points:
//
//   - Solve: base matrix → Result, routing to the requested Method after the
//     shared reduction pipeline.
//   - Assign: name sequences → Result (validate → BuildBase → Solve).
//
// Design principles:
//   - Deterministic: fixed loop orders, first-index tie-breaking.
//   - Strict sentinels: only errors from errors.go (plus wrapped matrix sentinels).
//   - Post-condition: every returned Result passes ValidateResult.
package assign

import (
	"fmt"

	"github.com/katalvlaran/ssassign/matrix"
)

// Solve reduces base and extracts an assignment with opts.Method.
// base must be square and non-empty; it is not modified.
//
// Errors: ErrNilMatrix, ErrEmptyInput, ErrInputShape, ErrInvalidScore,
// ErrUnsupportedMethod, ErrNotBijective (internal invariant breach).
//
// Complexity: O(n²) for Greedy, O(n³) for KuhnMunkres.
func Solve(base matrix.Matrix, opts Options) (Result, error) {
	// Stage 1 - options first: an unknown method must not cost a reduction.
	switch opts.Method {
	case Greedy, KuhnMunkres:
	default:
		return Result{}, fmt.Errorf("%v: %w", opts.Method, ErrUnsupportedMethod)
	}

	// Stage 2 - shared reduction (validates base).
	cost, err := Reduce(base)
	if err != nil {
		return Result{}, err
	}
	n := cost.Rows()

	// Stage 3 - route by method.
	var res Result
	switch opts.Method {
	case KuhnMunkres:
		res = extractOptimal(base, cost, n)
	default:
		if res, err = Extract(base, cost); err != nil {
			return Result{}, err
		}
	}

	// Stage 4 - invariant check.
	if err = ValidateResult(res, n); err != nil {
		return Result{}, err
	}

	return res, nil
}

// Assign runs the whole pipeline on name sequences. A nil fn means score.Score.
// Shape errors are reported before any scoring happens.
func Assign(streets, drivers []string, fn ScoreFunc, opts Options) (Result, *matrix.Dense, error) {
	base, err := BuildBase(streets, drivers, fn)
	if err != nil {
		return Result{}, nil, err
	}
	res, err := Solve(base, opts)
	if err != nil {
		return Result{}, nil, err
	}

	return res, base, nil
}
