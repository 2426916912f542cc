package score_test

import (
	"fmt"

	"github.com/katalvlaran/ssassign/score"
)

func ExampleScore() {
	fmt.Println(score.Score("ab", "cd"))
	fmt.Println(score.Score("ab", "cde"))
	fmt.Println(score.Score("Elm", "Al"))
	// Output:
	// 2.25
	// 1.5
	// 2
}

func ExampleExplain() {
	bd := score.Explain("Oak", "Bo")
	fmt.Printf("letters=%s even=%v consonants=%d gcd=%d total=%g\n",
		bd.Letters, bd.Even, bd.Consonants, bd.GCD, bd.Total)
	// Output:
	// letters=Oak even=false consonants=1 gcd=1 total=1
}
