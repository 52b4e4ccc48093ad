// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/Paradox644/mp2-lab2-matrix/matrix"
)

// benchSize keeps one product in the low milliseconds.
const benchSize = 128

func BenchmarkMul(b *testing.B) {
	b.Run("sequential", func(b *testing.B) {
		m := SeqInts(b, benchSize, matrix.WithSequential())
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_, _ = m.Mul(m)
		}
	})

	b.Run("parallel", func(b *testing.B) {
		m := SeqInts(b, benchSize)
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_, _ = m.Mul(m)
		}
	})
}

func BenchmarkAdd(b *testing.B) {
	m := SeqInts(b, benchSize)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = m.Add(m)
	}
}
