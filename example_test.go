package vecops_test

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"

	vecops "github.com/cwbudde/algo-vecops"
)

func ExampleAddBlock() {
	a := []float64{1, 2, 3, 4}
	b := []float64{10, 20, 30, 40}

	dst := make([]float64, len(a))
	vecops.AddBlock(dst, a, b)

	fmt.Println(dst)

	// The destination may alias an input for in-place use.
	vecops.AddBlock(a, a, b)
	fmt.Println(a)

	// Output:
	// [11 22 33 44]
	// [11 22 33 44]
}

func ExampleMulComplexBlock() {
	a := []complex128{complex(1, 2)}
	b := []complex128{complex(3, 4)}

	dst := make([]complex128, 1)
	vecops.MulComplexBlock(dst, a, b)

	fmt.Println(dst[0])

	// Output:
	// (-5+10i)
}

// Fast linear convolution: transform both operands, multiply the spectra
// element-wise, transform back. The spectral product is a single
// MulComplexBlockInPlace call.
func ExampleMulComplexBlockInPlace() {
	signal := []float64{1, 2, 3, 4}
	kernel := []float64{1, 1}

	// Next power of two >= len(signal)+len(kernel)-1.
	const fftSize = 8

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		fmt.Println("plan:", err)
		return
	}

	x := make([]complex128, fftSize)
	h := make([]complex128, fftSize)
	for i, v := range signal {
		x[i] = complex(v, 0)
	}
	for i, v := range kernel {
		h[i] = complex(v, 0)
	}

	specX := make([]complex128, fftSize)
	specH := make([]complex128, fftSize)
	if err := plan.Forward(specX, x); err != nil {
		fmt.Println("forward:", err)
		return
	}
	if err := plan.Forward(specH, h); err != nil {
		fmt.Println("forward:", err)
		return
	}

	vecops.MulComplexBlockInPlace(specX, specH)

	y := make([]complex128, fftSize)
	if err := plan.Inverse(y, specX); err != nil {
		fmt.Println("inverse:", err)
		return
	}

	for i := 0; i < len(signal)+len(kernel)-1; i++ {
		fmt.Printf("%.0f ", real(y[i]))
	}
	fmt.Println()

	// Output:
	// 1 3 5 7 4
}
