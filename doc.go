// Package ssassign assigns drivers to streets by a name-based suitability
// score (SS) and solves the resulting square assignment problem by matrix
// reduction.
//
// Pipeline:
//
//	rosters ──▶ score ──▶ base matrix ──▶ reduce ──▶ extract ──▶ report
//	(roster)   (score)    (assign.BuildBase)  (assign.Reduce)  (assign.Solve)
//
// Packages:
//
//	score/   - the SS rule: letter parity, vowel/consonant counts, gcd multiplier
//	matrix/  - dense row-major float64 storage, validators, row/column scans
//	assign/  - base matrix builder, row/column reduction, greedy and
//	           Kuhn–Munkres extraction, greedy-vs-optimal comparison
//	roster/  - one-name-per-line loader with NFKC normalisation
//	report/  - table, JSON, YAML and spew renderings
//	config/  - YAML configuration in $HOME/.ssassign
//	store/   - SQLite run history
//	logging/ - slog handler for CLI output
//	cli/     - urfave/cli commands; cmd/ssassign is the binary
//
// Quick example:
//
//	res, _, err := assign.Assign(
//		[]string{"Elm", "Oak"}, []string{"Al", "Bo"},
//		nil, assign.DefaultOptions(),
//	)
//	// res.Pairs: Elm→Al (2), Oak→Bo (1); res.Total == 3
//
// The default extraction is greedy: each street, in order, takes the first
// remaining driver at its reduced-row minimum. It is fast and deterministic
// but not always optimal; assign.KuhnMunkres gives the optimum and
// assign.Compare reports the gap.
package ssassign
