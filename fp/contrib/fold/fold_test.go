package fold

import (
	"math"
	"math/rand"
	"testing"

	"gonum.org/v1/gonum/floats"
)

func TestDotScenario(t *testing.T) {
	a := []int64{1, 2, 3, 4, 5}
	b := []int64{2, 3, 4, 5, 6}
	if got := Dot(a, b); got != 70 {
		t.Errorf("Dot = %d, want 70", got)
	}
	if got := DotInt64(a, b); got != 70 {
		t.Errorf("DotInt64 = %d, want 70", got)
	}
}

func TestDotEmpty(t *testing.T) {
	if got := Dot([]float64{}, []float64{}); got != 0 {
		t.Errorf("Dot(empty) = %v, want 0", got)
	}
	if got := SumSquares([]int32{}); got != 0 {
		t.Errorf("SumSquares(empty) = %d, want 0", got)
	}
	if got := SumAbsDiff([]uint8{}, []uint8{}); got != 0 {
		t.Errorf("SumAbsDiff(empty) = %d, want 0", got)
	}
}

func TestDotCommutes(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for _, n := range []int{1, 5, 16, 129, 1000} {
		a := make([]float64, n)
		b := make([]float64, n)
		for i := range a {
			a[i] = rng.NormFloat64()
			b[i] = rng.NormFloat64()
		}
		ab, ba := Dot(a, b), Dot(b, a)
		if math.Abs(ab-ba) > 1e-12*math.Max(1, math.Abs(ab)) {
			t.Errorf("n=%d: Dot(a,b)=%v, Dot(b,a)=%v", n, ab, ba)
		}
	}
}

func TestDotMatchesGonum(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for _, n := range []int{1, 7, 64, 513} {
		a := make([]float64, n)
		b := make([]float64, n)
		for i := range a {
			a[i] = rng.NormFloat64()
			b[i] = rng.NormFloat64()
		}
		got := Dot(a, b)
		want := floats.Dot(a, b)
		if math.Abs(got-want) > 1e-9*math.Max(1, math.Abs(want)) {
			t.Errorf("n=%d: Dot = %v, gonum = %v", n, got, want)
		}
	}
}

func TestSumSquaresEqualsSelfDot(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	x := make([]float64, 300)
	for i := range x {
		x[i] = rng.NormFloat64()
	}
	got := SumSquares(x)
	want := Dot(x, x)
	if math.Abs(got-want) > 1e-12*math.Max(1, want) {
		t.Errorf("SumSquares = %v, Dot(x,x) = %v", got, want)
	}
}

func TestSumAbsDiff(t *testing.T) {
	a := []int64{1, 5, 3, 10}
	b := []int64{4, 2, 3, 4}
	if got := SumAbsDiff(a, b); got != 12 {
		t.Errorf("SumAbsDiff = %d, want 12", got)
	}
	// Unsigned types must not wrap when b[i] > a[i].
	ua := []uint16{1, 100}
	ub := []uint16{50, 40}
	if got := SumAbsDiff(ua, ub); got != 109 {
		t.Errorf("SumAbsDiff uint16 = %d, want 109", got)
	}
}

func TestSumAbsDiffLongMatchesReference(t *testing.T) {
	rng := rand.New(rand.NewSource(21))
	a := make([]uint32, 777)
	b := make([]uint32, 777)
	var want uint32
	for i := range a {
		a[i] = rng.Uint32() % 1000
		b[i] = rng.Uint32() % 1000
		if a[i] > b[i] {
			want += a[i] - b[i]
		} else {
			want += b[i] - a[i]
		}
	}
	if got := SumAbsDiff(a, b); got != want {
		t.Errorf("SumAbsDiff = %d, want %d", got, want)
	}
}

func TestFoldsDoNotMutateInputs(t *testing.T) {
	a := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9}
	b := []float64{9, 8, 7, 6, 5, 4, 3, 2, 1}
	beforeA := append([]float64(nil), a...)
	beforeB := append([]float64(nil), b...)
	_ = Dot(a, b)
	_ = SumSquares(a)
	_ = SumAbsDiff(a, b)
	for i := range a {
		if a[i] != beforeA[i] || b[i] != beforeB[i] {
			t.Fatalf("input mutated at %d", i)
		}
	}
}

func BenchmarkDotFloat64(b *testing.B) {
	x := make([]float64, 4096)
	y := make([]float64, 4096)
	for i := range x {
		x[i] = float64(i)
		y[i] = float64(4096 - i)
	}
	b.SetBytes(int64(len(x) * 16))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Dot(x, y)
	}
}
