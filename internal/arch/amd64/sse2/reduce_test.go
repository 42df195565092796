//go:build amd64 && !purego

package sse2

import (
	"fmt"
	"math"
	"testing"
)

func TestReductions_SSE2(t *testing.T) {
	sizes := []int{0, 1, 2, 3, 4, 5, 8, 17, 100}

	for _, n := range sizes {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			a := make([]float64, n)
			b := make([]float64, n)
			for i := 0; i < n; i++ {
				a[i] = float64(i)*0.5 - 2
				b[i] = float64(n-i) * 0.3
			}

			var wantSum, wantDot, wantMax float64
			for i := 0; i < n; i++ {
				wantSum += a[i]
				wantDot += a[i] * b[i]
				if v := math.Abs(a[i]); v > wantMax {
					wantMax = v
				}
			}

			const eps = 1e-9
			if got := Sum(a); math.Abs(got-wantSum) > eps {
				t.Errorf("Sum = %v, want %v", got, wantSum)
			}
			if got := DotProduct(a, b); math.Abs(got-wantDot) > eps {
				t.Errorf("DotProduct = %v, want %v", got, wantDot)
			}
			if got := MaxAbs(a); got != wantMax {
				t.Errorf("MaxAbs = %v, want %v", got, wantMax)
			}
		})
	}
}

func TestDotProductPanicsOnMismatch_SSE2(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("DotProduct should panic on mismatched lengths")
		}
	}()
	DotProduct(make([]float64, 2), make([]float64, 3))
}
