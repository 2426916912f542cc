package report

import (
	"errors"
	"fmt"
	"strings"
)

//go:generate go tool stringer -type=Format -linecomment

// Format selects an output encoding.
type Format int

const (
	FormatTable Format = iota // table
	FormatJSON                // json
	FormatYAML                // yaml
	FormatDump                // dump
)

// ErrUnknownFormat is returned by ParseFormat for unrecognised names.
var ErrUnknownFormat = errors.New("report: unknown format")

// ParseFormat maps a name ("table", "json", "yaml"/"yml", "dump") to a Format.
// The empty string means FormatTable.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "table", "text":
		return FormatTable, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "dump", "spew":
		return FormatDump, nil
	}

	return FormatTable, fmt.Errorf("%q: %w", name, ErrUnknownFormat)
}

// Formats lists every supported format name, for flag usage strings.
func Formats() []string {
	return []string{FormatTable.String(), FormatJSON.String(), FormatYAML.String(), FormatDump.String()}
}
