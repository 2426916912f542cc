package score

import (
	"fmt"
	"math"
)

// Default multipliers.
const (
	DefaultVowelMultiplier     = 1.5
	DefaultConsonantMultiplier = 1.0
	DefaultCommonFactor        = 1.5
	DefaultNoCommonFactor      = 1.0
)

// Weights holds the four multipliers of the scoring rule.
type Weights struct {
	// Vowel scales the vowel count when the letter count is even.
	Vowel float64 `json:"vowel" yaml:"vowel_multiplier"`
	// Consonant scales the consonant count when the letter count is odd.
	Consonant float64 `json:"consonant" yaml:"consonant_multiplier"`
	// CommonFactor applies when gcd(len(a), len(b)) > 1.
	CommonFactor float64 `json:"common_factor" yaml:"common_factor"`
	// NoCommonFactor applies otherwise.
	NoCommonFactor float64 `json:"no_common_factor" yaml:"no_common_factor"`
}

// DefaultWeights returns the standard multipliers.
func DefaultWeights() Weights {
	return Weights{
		Vowel:          DefaultVowelMultiplier,
		Consonant:      DefaultConsonantMultiplier,
		CommonFactor:   DefaultCommonFactor,
		NoCommonFactor: DefaultNoCommonFactor,
	}
}

// Validate rejects NaN, infinite and negative multipliers. Scores must stay
// non-negative and finite for the solver's shift step.
func (w Weights) Validate() error {
	fields := []struct {
		name string
		v    float64
	}{
		{"vowel", w.Vowel},
		{"consonant", w.Consonant},
		{"common_factor", w.CommonFactor},
		{"no_common_factor", w.NoCommonFactor},
	}
	for _, f := range fields {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) || f.v < 0 {
			return fmt.Errorf("%s=%v: %w", f.name, f.v, ErrInvalidWeights)
		}
	}

	return nil
}
