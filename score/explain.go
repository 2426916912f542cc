package score

// Breakdown exposes every intermediate quantity of a score computation.
type Breakdown struct {
	Street     string  `json:"street" yaml:"street"`
	Driver     string  `json:"driver" yaml:"driver"`
	Letters    string  `json:"letters" yaml:"letters"`
	Even       bool    `json:"even" yaml:"even"`
	Vowels     int     `json:"vowels" yaml:"vowels"`
	Consonants int     `json:"consonants" yaml:"consonants"`
	SubScore   float64 `json:"sub_score" yaml:"sub_score"`
	StreetLen  int     `json:"street_len" yaml:"street_len"`
	DriverLen  int     `json:"driver_len" yaml:"driver_len"`
	GCD        int     `json:"gcd" yaml:"gcd"`
	Multiplier float64 `json:"multiplier" yaml:"multiplier"`
	Total      float64 `json:"total" yaml:"total"`
}

// Explain scores (a, b) and returns the full breakdown.
func (s *Scorer) Explain(a, b string) Breakdown {
	letters := Letters(a)
	vowels, consonants := CountLetters(letters)

	bd := Breakdown{
		Street:     a,
		Driver:     b,
		Letters:    letters,
		Even:       len(letters)%2 == 0, // letters are ASCII, so bytes == runes
		Vowels:     vowels,
		Consonants: consonants,
		StreetLen:  RawLen(a),
		DriverLen:  RawLen(b),
	}

	if bd.Even {
		bd.SubScore = float64(vowels) * s.w.Vowel
	} else {
		bd.SubScore = float64(consonants) * s.w.Consonant
	}

	bd.GCD = GCD(bd.StreetLen, bd.DriverLen)
	bd.Multiplier = s.w.NoCommonFactor
	if bd.GCD > 1 {
		bd.Multiplier = s.w.CommonFactor
	}
	bd.Total = bd.SubScore * bd.Multiplier

	return bd
}

// Explain uses DefaultWeights.
func Explain(a, b string) Breakdown {
	return defaultScorer.Explain(a, b)
}
