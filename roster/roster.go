package roster

import (
	"bufio"
	"context"
	"io"
	"os"
	"strings"
	"unicode"

	"github.com/katalvlaran/ssassign/score"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/unicode/norm"
)

// maxLineSize bounds a single roster line.
const maxLineSize = 1 << 20

// ErrNoPath is returned when a roster path is empty.
var ErrNoPath = errors.New("roster path required")

// Options controls how lines become names.
type Options struct {
	// Normalize applies NFKC and strips control characters.
	Normalize bool `yaml:"normalize"`
	// Strict rejects names that carry no letters.
	Strict bool `yaml:"strict"`
}

// DefaultOptions returns Normalize and Strict off. Lines are still trimmed of
// surrounding whitespace, which shortens the byte length used for scoring.
func DefaultOptions() Options {
	return Options{}
}

// Normalize performs NFKC normalisation, drops control characters and trims.
func Normalize(name string) string {
	s := norm.NFKC.String(name)
	s = strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, s)

	return strings.TrimSpace(s)
}

// Read parses names from r.
func Read(r io.Reader, opts Options) ([]string, error) {
	if r == nil {
		return nil, errors.New("reader required")
	}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), maxLineSize)

	var (
		names []string
		line  int
	)
	for sc.Scan() {
		line++
		name := strings.TrimSpace(sc.Text())
		if opts.Normalize {
			name = Normalize(name)
		}
		if name == "" {
			continue
		}
		if opts.Strict {
			if err := score.CheckName(name); err != nil {
				return nil, errors.Wrapf(err, "line %d", line)
			}
		}
		names = append(names, name)
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to scan line %d", line+1)
	}

	return names, nil
}

// Load reads names from the file at path.
func Load(path string, opts Options) ([]string, error) {
	if path == "" {
		return nil, ErrNoPath
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "error opening roster file: %s", path)
	}
	defer f.Close()

	names, err := Read(f, opts)
	if err != nil {
		return nil, errors.Wrapf(err, "error reading roster file: %s", path)
	}

	return names, nil
}

// LoadPair loads the street and driver rosters concurrently. The first
// failure cancels the other read; ctx cancellation is honoured before either
// file is opened.
func LoadPair(ctx context.Context, streetsPath, driversPath string, opts Options) (streets, drivers []string, err error) {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		names, err := Load(streetsPath, opts)
		if err != nil {
			return errors.Wrap(err, "streets")
		}
		streets = names
		return nil
	})
	g.Go(func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		names, err := Load(driversPath, opts)
		if err != nil {
			return errors.Wrap(err, "drivers")
		}
		drivers = names
		return nil
	})

	if err = g.Wait(); err != nil {
		return nil, nil, err
	}

	return streets, drivers, nil
}
