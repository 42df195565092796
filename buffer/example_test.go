package buffer_test

import (
	"fmt"

	"github.com/cwbudde/algo-vecops/buffer"
)

func ExampleBuffer() {
	b := buffer.New(4)
	copy(b.Samples(), []float64{1, 2, 3, 4})

	b.Resize(6)
	b.ZeroRange(1, 5)

	fmt.Println(b.Samples())
	fmt.Println(b.Len())

	// Output:
	// [1 0 0 0 0 0]
	// 6
}

func ExamplePool() {
	p := buffer.NewPool()

	scratch := p.Get(4)
	copy(scratch.Samples(), []float64{1, 2, 3, 4})
	fmt.Println(scratch.Samples())
	p.Put(scratch)

	// A pooled buffer comes back zeroed.
	next := p.Get(4)
	fmt.Println(next.Samples())
	p.Put(next)

	// Output:
	// [1 2 3 4]
	// [0 0 0 0]
}
