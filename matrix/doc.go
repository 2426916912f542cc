// Package matrix provides the dense float64 storage used by the assignment engine.
//
// The matrix package provides:
//
//   - Matrix, a small interface over a two-dimensional mutable array of float64
//     values (Rows, Cols, At, Set, Clone).
//   - Dense, a row-major implementation with bounds-checked accessors and an
//     optional finite-value policy (NaN/±Inf rejected by default).
//   - Validators (ValidateNotNil, ValidateSquare, ValidateFinite, ...) returning
//     the package sentinels from errors.go.
//   - Scans used by row/column reduction: Max, RowMin and ColMin over explicit
//     index sets, so callers can model a shrinking matrix without resizing it.
//
// Dense matrices are meant for the small square problems handled by the
// assign package: O(n²) memory and O(1) element access.
//
// See example_test.go for usage patterns.
package matrix
