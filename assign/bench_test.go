package assign_test

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/katalvlaran/ssassign/assign"
)

func BenchmarkSolve(b *testing.B) {
	for _, n := range []int{8, 32, 128} {
		rng := rand.New(rand.NewPCG(uint64(n), 3))
		base := randomBase(b, rng, n)
		for _, m := range []assign.Method{assign.Greedy, assign.KuhnMunkres} {
			b.Run(fmt.Sprintf("%v/n=%d", m, n), func(b *testing.B) {
				opts := assign.Options{Method: m}
				b.ReportAllocs()
				for b.Loop() {
					if _, err := assign.Solve(base, opts); err != nil {
						b.Fatal(err)
					}
				}
			})
		}
	}
}
