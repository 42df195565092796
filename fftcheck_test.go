package vecops

import (
	"testing"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/cwbudde/algo-vecops/internal/testutil"
)

// Convolution theorem: the spectral product computed by MulComplexBlock
// must transform back to the circular convolution of the time-domain
// inputs. This exercises the complex kernel against an independent FFT
// rather than against its own definition.
func TestMulComplexBlock_ConvolutionTheorem(t *testing.T) {
	const n = 64

	a := testutil.DeterministicNoise(301, 1.0, n)
	b := testutil.DeterministicNoise(302, 1.0, n)

	// Direct circular convolution.
	want := make([]float64, n)
	for k := 0; k < n; k++ {
		var acc float64
		for j := 0; j < n; j++ {
			acc += a[j] * b[(k-j+n)%n]
		}
		want[k] = acc
	}

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		t.Fatalf("NewPlan64: %v", err)
	}

	ca := make([]complex128, n)
	cb := make([]complex128, n)
	for i := 0; i < n; i++ {
		ca[i] = complex(a[i], 0)
		cb[i] = complex(b[i], 0)
	}

	specA := make([]complex128, n)
	specB := make([]complex128, n)
	if err := plan.Forward(specA, ca); err != nil {
		t.Fatalf("Forward(a): %v", err)
	}
	if err := plan.Forward(specB, cb); err != nil {
		t.Fatalf("Forward(b): %v", err)
	}

	MulComplexBlockInPlace(specA, specB)

	conv := make([]complex128, n)
	if err := plan.Inverse(conv, specA); err != nil {
		t.Fatalf("Inverse: %v", err)
	}

	got := make([]float64, n)
	for i := 0; i < n; i++ {
		got[i] = real(conv[i])
	}

	testutil.RequireSliceNearlyEqual(t, got, want, 1e-9)
}

// Correlation theorem: multiplying by the conjugated spectrum must
// transform back to the circular cross-correlation.
func TestMulConjComplexBlock_CorrelationTheorem(t *testing.T) {
	const n = 32

	a := testutil.DeterministicNoise(303, 1.0, n)
	b := testutil.DeterministicNoise(304, 1.0, n)

	// Direct circular cross-correlation: r[k] = sum_j a[j+k] * b[j].
	want := make([]float64, n)
	for k := 0; k < n; k++ {
		var acc float64
		for j := 0; j < n; j++ {
			acc += a[(j+k)%n] * b[j]
		}
		want[k] = acc
	}

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		t.Fatalf("NewPlan64: %v", err)
	}

	ca := make([]complex128, n)
	cb := make([]complex128, n)
	for i := 0; i < n; i++ {
		ca[i] = complex(a[i], 0)
		cb[i] = complex(b[i], 0)
	}

	specA := make([]complex128, n)
	specB := make([]complex128, n)
	if err := plan.Forward(specA, ca); err != nil {
		t.Fatalf("Forward(a): %v", err)
	}
	if err := plan.Forward(specB, cb); err != nil {
		t.Fatalf("Forward(b): %v", err)
	}

	cross := make([]complex128, n)
	MulConjComplexBlock(cross, specA, specB)

	corr := make([]complex128, n)
	if err := plan.Inverse(corr, cross); err != nil {
		t.Fatalf("Inverse: %v", err)
	}

	got := make([]float64, n)
	for i := 0; i < n; i++ {
		got[i] = real(corr[i])
	}

	testutil.RequireSliceNearlyEqual(t, got, want, 1e-9)
}
