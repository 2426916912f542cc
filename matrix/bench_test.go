package matrix_test

import (
	"testing"

	"github.com/katalvlaran/ssassign/matrix"
)

// benchmarkRowMin scans every row of an n×n matrix over the full column set.
func benchmarkRowMin(b *testing.B, n int) {
	m, err := matrix.NewDense(n, n)
	if err != nil {
		b.Fatalf("NewDense failed: %v", err)
	}
	_ = m.Apply(func(i, j int, _ float64) float64 { return float64((i*31 + j*17) % 97) })
	cols := matrix.Sequence(n)

	b.ResetTimer()
	for k := 0; k < b.N; k++ {
		for i := 0; i < n; i++ {
			if _, _, err = matrix.RowMin(m, i, cols); err != nil {
				b.Fatalf("RowMin failed: %v", err)
			}
		}
	}
}

func BenchmarkRowMin_64(b *testing.B)  { benchmarkRowMin(b, 64) }
func BenchmarkRowMin_256(b *testing.B) { benchmarkRowMin(b, 256) }
