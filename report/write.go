package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/davecgh/go-spew/spew"
	"github.com/katalvlaran/ssassign/score"
	"gopkg.in/yaml.v3"
)

const (
	headStreet = "Destination"
	headDriver = "Driver"
	headScore  = "SS"
	totalFmt   = "Total SS: %.3f\n"
)

var dumper = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// Encode writes v in a machine format. FormatTable is rejected: tables are
// only defined for the report types below.
func Encode(w io.Writer, f Format, v any) error {
	switch f {
	case FormatJSON:
		e := json.NewEncoder(w)
		e.SetIndent("", "  ")
		return e.Encode(v)
	case FormatYAML:
		e := yaml.NewEncoder(w)
		e.SetIndent(2)
		if err := e.Encode(v); err != nil {
			return err
		}
		return e.Close()
	case FormatDump:
		dumper.Fdump(w, v)
		return nil
	}

	return fmt.Errorf("%v: %w", f, ErrUnknownFormat)
}

// WriteAssignment prints a as a table or encodes it.
func WriteAssignment(w io.Writer, f Format, a Assignment) error {
	if f != FormatTable {
		return Encode(w, f, a)
	}

	return writeRows(w, a)
}

// WriteComparison prints both assignments and the gap.
func WriteComparison(w io.Writer, f Format, c Comparison) error {
	if f != FormatTable {
		return Encode(w, f, c)
	}

	for _, a := range []Assignment{c.Greedy, c.Optimal} {
		if _, err := fmt.Fprintf(w, "%s:\n", a.Method); err != nil {
			return err
		}
		if err := writeRows(w, a); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "Gap: %.3f\n", c.Gap)

	return err
}

// WriteGrid prints the base matrix with street rows and driver columns.
func WriteGrid(w io.Writer, f Format, g Grid) error {
	if f != FormatTable {
		return Encode(w, f, g)
	}

	t := newTable(w, 2, tabwriter.AlignRight)
	t.printf("\t")
	for _, d := range g.Drivers {
		t.printf("%s\t", d)
	}
	t.printf("\n")
	for i, s := range g.Streets {
		t.printf("%s\t", s)
		for _, v := range g.Scores[i] {
			t.printf("%s\t", formatScore(v))
		}
		t.printf("\n")
	}

	return t.flush()
}

// WriteBreakdown prints every step of one score computation.
func WriteBreakdown(w io.Writer, f Format, b score.Breakdown) error {
	if f != FormatTable {
		return Encode(w, f, b)
	}

	parity, counted, n := "odd", "consonants", b.Consonants
	if b.Even {
		parity, counted, n = "even", "vowels", b.Vowels
	}

	t := newTable(w, 2, 0)
	t.printf("street\t%q\n", b.Street)
	t.printf("driver\t%q\n", b.Driver)
	t.printf("letters\t%q (%d, %s)\n", b.Letters, len(b.Letters), parity)
	t.printf("sub-score\t%d %s -> %s\n", n, counted, formatScore(b.SubScore))
	t.printf("gcd(%d, %d)\t%d -> x%s\n", b.StreetLen, b.DriverLen, b.GCD, formatScore(b.Multiplier))
	t.printf("score\t%s\n", formatScore(b.Total))

	return t.flush()
}

func writeRows(w io.Writer, a Assignment) error {
	t := newTable(w, 1, 0)
	t.printf("%s\t| %s\t| %s\n", headStreet, headDriver, headScore)
	t.printf("%s\t| %s\t| %s\n",
		strings.Repeat("-", len(headStreet)), strings.Repeat("-", len(headDriver)), strings.Repeat("-", len(headScore)))
	for _, r := range a.Rows {
		t.printf("%s\t| %s\t| %s\n", r.Street, r.Driver, formatScore(r.Score))
	}
	if err := t.flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, totalFmt, a.Total)

	return err
}

// table is a tabwriter that keeps the first write error; later writes are
// skipped and flush reports it.
type table struct {
	tw  *tabwriter.Writer
	err error
}

func newTable(w io.Writer, padding int, flags uint) *table {
	return &table{tw: tabwriter.NewWriter(w, 0, 0, padding, ' ', flags)}
}

func (t *table) printf(format string, args ...any) {
	if t.err != nil {
		return
	}
	_, t.err = fmt.Fprintf(t.tw, format, args...)
}

func (t *table) flush() error {
	if t.err != nil {
		return t.err
	}

	return t.tw.Flush()
}

// formatScore prints the shortest exact representation ("2", "2.25").
func formatScore(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
