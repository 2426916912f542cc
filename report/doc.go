// Package report renders assignment results, base matrices and score
// breakdowns for people and for machines.
//
// Formats:
//   - table: aligned columns (text/tabwriter) ending with "Total SS: %.3f";
//   - json:  indented encoding/json;
//   - yaml:  gopkg.in/yaml.v3;
//   - dump:  go-spew deep dump, for debugging.
//
// Reports carry names, not indices: the caller hands in the rosters used to
// build the base matrix and the package resolves every Pair against them.
package report
