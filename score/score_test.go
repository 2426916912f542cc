package score_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/ssassign/score"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScore_Table(t *testing.T) {
	tests := []struct {
		name   string
		street string
		driver string
		want   float64
	}{
		{"common factor applies", "ab", "cd", 2.25},
		{"no common factor", "ab", "cde", 1.5},
		{"odd letters use consonants", "Elm", "Al", 2.0},
		{"odd letters with common factor", "Elm", "Bob", 3.0},
		{"one consonant", "Oak", "Bo", 1.0},
		{"digits are not letters", "5th Ave", "Ann", 3.0},
		{"no letters scores zero", "123", "Al", 0},
		{"empty street", "", "Bo", 0},
		{"punctuation counts toward raw length", "a-b", "xyz", 1.5 * 1.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, score.Score(tt.street, tt.driver), 1e-12)
		})
	}
}

// TestScore_ParityBoundary: "Elm" has 3 letters → consonant branch; "Elms" has 4 → vowel branch.
func TestScore_ParityBoundary(t *testing.T) {
	odd := score.Explain("Elm", "Xy")
	assert.False(t, odd.Even)
	assert.Equal(t, 2, odd.Consonants)
	assert.Equal(t, 2.0, odd.SubScore)

	even := score.Explain("Elms", "Xyz")
	assert.True(t, even.Even)
	assert.Equal(t, 1, even.Vowels)
	assert.Equal(t, 1.5, even.SubScore)
}

func TestScore_CaseInsensitive(t *testing.T) {
	assert.Equal(t, score.Score("AEIOUX", "q"), score.Score("aeioux", "q"))
	v, c := score.CountLetters("AbEcI")
	assert.Equal(t, 3, v)
	assert.Equal(t, 2, c)
}

func TestScore_Deterministic(t *testing.T) {
	for i := 0; i < 10; i++ {
		assert.Equal(t, score.Score("Main Street", "Jonathan"), score.Score("Main Street", "Jonathan"))
	}
}

// TestScore_DriverOnlyAffectsMultiplier: with equal raw lengths, any driver gives the same score.
func TestScore_DriverOnlyAffectsMultiplier(t *testing.T) {
	assert.Equal(t, score.Score("Baker", "Alice"), score.Score("Baker", "Zzzzz"))
}

func TestScore_RawLengthInBytes(t *testing.T) {
	tests := []struct {
		name      string
		street    string
		driver    string
		streetLen int
		gcd       int
		want      float64
	}{
		// 'Ż' is two bytes: 6 and 4 share 2, so 2 vowels × 1.5 × 1.5.
		{"two-byte letter", "Żabka", "Anna", 6, 2, 4.5},
		// 7 bytes; only 'd' is an ASCII letter: odd, 1 consonant.
		{"polish city", "Łódź", "Anna", 7, 1, 1},
		{"ascii unchanged", "Elm", "Al", 3, 1, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bd := score.Explain(tt.street, tt.driver)
			assert.Equal(t, tt.streetLen, bd.StreetLen)
			assert.Equal(t, tt.gcd, bd.GCD)
			assert.Equal(t, tt.want, bd.Total)
			assert.Equal(t, tt.want, score.Score(tt.street, tt.driver))
		})
	}
}

func TestGCD(t *testing.T) {
	assert.Equal(t, 2, score.GCD(2, 2))
	assert.Equal(t, 1, score.GCD(2, 3))
	assert.Equal(t, 6, score.GCD(12, 18))
	assert.Equal(t, 5, score.GCD(0, 5))
	assert.Equal(t, 0, score.GCD(0, 0))
	assert.Equal(t, 3, score.GCD(-9, 6))
}

func TestLetters(t *testing.T) {
	assert.Equal(t, "MainSt", score.Letters("Main St. #12"))
	assert.Equal(t, "", score.Letters("42-7"))
}

func TestCheckName(t *testing.T) {
	assert.NoError(t, score.CheckName("Elm"))
	assert.ErrorIs(t, score.CheckName("1234"), score.ErrDegenerateName)
	assert.ErrorIs(t, score.CheckName(""), score.ErrDegenerateName)
}

func TestNew_CustomWeights(t *testing.T) {
	s, err := score.New(score.Weights{Vowel: 2, Consonant: 3, CommonFactor: 10, NoCommonFactor: 1})
	require.NoError(t, err)
	assert.Equal(t, 6.0, s.Score("Elm", "Al"))   // 2 consonants × 3
	assert.Equal(t, 20.0, s.Score("ab", "cd"))   // 1 vowel × 2 × 10
	assert.Equal(t, 2.0, s.Score("ab", "cde"))   // 1 vowel × 2 × 1
	assert.Equal(t, 2.0, s.Weights().Vowel)
}

func TestWeights_Validate(t *testing.T) {
	assert.NoError(t, score.DefaultWeights().Validate())

	bad := []score.Weights{
		{Vowel: -1, Consonant: 1, CommonFactor: 1, NoCommonFactor: 1},
		{Vowel: 1, Consonant: math.NaN(), CommonFactor: 1, NoCommonFactor: 1},
		{Vowel: 1, Consonant: 1, CommonFactor: math.Inf(1), NoCommonFactor: 1},
	}
	for _, w := range bad {
		_, err := score.New(w)
		assert.ErrorIs(t, err, score.ErrInvalidWeights)
	}
}
