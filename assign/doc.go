// Package assign pairs every street with exactly one driver so that the total
// suitability score is as high as the reduction method can make it.
//
// Pipeline:
//
//	streets, drivers ──BuildBase──▶ base matrix ──Solve──▶ Result
//
// BuildBase scores the full cross product with a ScoreFunc (score.Score by
// default). Solve then runs, on a working copy of the base matrix:
//
//  1. negate every cell (maximisation → minimisation),
//  2. add max(base) to every cell (all costs ≥ 0),
//  3. subtract each row minimum from its row,
//  4. subtract each column minimum from its column,
//  5. extraction: for the first remaining row take the first remaining column
//     holding the row minimum, record the pair with its BASE weight, drop the
//     row and the column; repeat n times.
//
// Step 5 is greedy. It always yields a bijection but, unlike a full
// Hungarian method, it does not search for a perfect matching of zeros, so
// some matrices get a sub-optimal total. Greedy is the default and its output
// is stable across releases. Method KuhnMunkres solves the same reduced
// matrix optimally; Compare runs both and reports the gap.
//
// Errors (match with errors.Is):
//   - ErrInputShape    - unequal sequence lengths or non-square matrix.
//   - ErrEmptyInput    - an empty sequence (also matches ErrInputShape).
//   - ErrInvalidScore  - a ScoreFunc produced NaN, ±Inf or a negative value.
//   - ErrNilMatrix     - nil base or cost matrix.
//   - ErrUnsupportedMethod, ErrNotBijective.
//
// Complexity: BuildBase O(n²) score calls; Greedy O(n²); KuhnMunkres O(n³).
// Everything is single-threaded and allocation-bounded by two n×n matrices.
package assign
