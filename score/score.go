package score

import (
	"fmt"
	"strings"
)

// Scorer scores name pairs with a fixed set of Weights.
// The zero value is not usable; build one with New.
type Scorer struct {
	w Weights
}

// defaultScorer backs the package-level Score.
var defaultScorer = &Scorer{w: DefaultWeights()}

// New returns a Scorer for w, or ErrInvalidWeights.
func New(w Weights) (*Scorer, error) {
	if err := w.Validate(); err != nil {
		return nil, err
	}

	return &Scorer{w: w}, nil
}

// Weights returns the multipliers in use.
func (s *Scorer) Weights() Weights { return s.w }

// Score returns the suitability score of street a for driver b.
//
// Only a's letters drive the sub-score; b contributes through the
// common-factor multiplier alone.
func (s *Scorer) Score(a, b string) float64 {
	return s.Explain(a, b).Total
}

// Score scores a pair with DefaultWeights.
func Score(a, b string) float64 {
	return defaultScorer.Score(a, b)
}

// Letters strips every character that is not an ASCII letter.
func Letters(name string) string {
	return strings.Map(func(r rune) rune {
		if isLetter(r) {
			return r
		}
		return -1
	}, name)
}

// CountLetters counts vowels (a, e, i, o, u in either case) and consonants
// (every other ASCII letter) in name. Non-letters are ignored.
func CountLetters(name string) (vowels, consonants int) {
	for _, r := range name {
		switch {
		case !isLetter(r):
			continue
		case isVowel(r):
			vowels++
		default:
			consonants++
		}
	}

	return vowels, consonants
}

// GCD returns the greatest common divisor of a and b (GCD(0, 0) == 0).
func GCD(a, b int) int {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}

	return a
}

// CheckName returns ErrDegenerateName when name carries no letters.
func CheckName(name string) error {
	if Letters(name) == "" {
		return fmt.Errorf("%q: %w", name, ErrDegenerateName)
	}

	return nil
}

// RawLen is the raw length used by the common-factor rule, counted in bytes
// of the UTF-8 encoding ("Żabka" is 6).
func RawLen(name string) int {
	return len(name)
}

func isLetter(r rune) bool {
	return ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z')
}

func isVowel(r rune) bool {
	switch r {
	case 'a', 'e', 'i', 'o', 'u', 'A', 'E', 'I', 'O', 'U':
		return true
	}

	return false
}
