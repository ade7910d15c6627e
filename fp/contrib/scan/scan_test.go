package scan

import "testing"

func TestPrefixSum(t *testing.T) {
	x := []int64{1, 2, 3, 4}
	dst := make([]int64, 4)
	if n := PrefixSum(x, dst); n != 4 {
		t.Fatalf("processed %d, want 4", n)
	}
	want := []int64{1, 3, 6, 10}
	for i := range want {
		if dst[i] != want[i] {
			t.Errorf("dst[%d] = %d, want %d", i, dst[i], want[i])
		}
	}
	for i, v := range []int64{1, 2, 3, 4} {
		if x[i] != v {
			t.Fatalf("input mutated at %d", i)
		}
	}
}

func TestDeltaInvertsPrefixSum(t *testing.T) {
	x := []uint64{13, 15, 20, 21}
	deltas := make([]uint64, len(x))
	Delta(x, 10, deltas)
	want := []uint64{3, 2, 5, 1}
	for i := range want {
		if deltas[i] != want[i] {
			t.Errorf("deltas[%d] = %d, want %d", i, deltas[i], want[i])
		}
	}

	// PrefixSum of the deltas, offset by base, reconstructs the input.
	back := make([]uint64, len(deltas))
	PrefixSum(deltas, back)
	for i := range back {
		if back[i]+10 != x[i] {
			t.Errorf("round trip [%d] = %d, want %d", i, back[i]+10, x[i])
		}
	}
}

func TestDeltaInPlace(t *testing.T) {
	x := []int32{5, 7, 12}
	Delta(x, 0, x)
	want := []int32{5, 2, 5}
	for i := range want {
		if x[i] != want[i] {
			t.Errorf("x[%d] = %d, want %d", i, x[i], want[i])
		}
	}
}

func TestEmpty(t *testing.T) {
	if n := PrefixSum([]float64{}, []float64{}); n != 0 {
		t.Errorf("PrefixSum(empty) = %d, want 0", n)
	}
	if n := Delta([]float64{}, 0, []float64{}); n != 0 {
		t.Errorf("Delta(empty) = %d, want 0", n)
	}
}
