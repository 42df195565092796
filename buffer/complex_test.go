package buffer

import "testing"

func TestNewComplexZeroFilled(t *testing.T) {
	b := NewComplex(8)
	if b.Len() != 8 {
		t.Fatalf("Len() = %d, want 8", b.Len())
	}
	for i, v := range b.Samples() {
		if v != 0 {
			t.Fatalf("Samples()[%d] = %v, want 0", i, v)
		}
	}
}

func TestNewComplexNegativeLength(t *testing.T) {
	b := NewComplex(-3)
	if b.Len() != 0 {
		t.Fatalf("Len() = %d, want 0 for negative input", b.Len())
	}
}

func TestComplexFromSliceSharesMemory(t *testing.T) {
	s := []complex128{complex(1, 2), complex(3, 4)}
	b := ComplexFromSlice(s)
	b.Samples()[0] = complex(9, -9)
	if s[0] != complex(9, -9) {
		t.Fatal("ComplexFromSlice should share underlying memory")
	}
}

func TestComplexResizeReuseClearsStaleData(t *testing.T) {
	b := NewComplex(4)
	for i := range b.Samples() {
		b.Samples()[i] = complex(float64(i+1), -float64(i+1))
	}
	b.Resize(2)
	b.Resize(4)
	if b.Samples()[2] != 0 || b.Samples()[3] != 0 {
		t.Fatalf("stale data visible after Resize: %v", b.Samples())
	}
}

func TestComplexZeroRange(t *testing.T) {
	b := ComplexFromSlice([]complex128{1, 2, 3, 4, 5})
	b.ZeroRange(1, 4)
	want := []complex128{1, 0, 0, 0, 5}
	for i, v := range b.Samples() {
		if v != want[i] {
			t.Fatalf("index %d: got %v, want %v", i, v, want[i])
		}
	}
}

func TestComplexCopyIsDeep(t *testing.T) {
	b := ComplexFromSlice([]complex128{complex(1, 1), complex(2, 2)})
	c := b.Copy()
	c.Samples()[0] = complex(99, 0)
	if b.Samples()[0] == complex(99, 0) {
		t.Fatal("Copy should not share memory")
	}
}
