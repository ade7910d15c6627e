package fp

import (
	"math"
	"testing"
)

func TestLoadStoreRoundTrip(t *testing.T) {
	src := []float64{1, 2, 3, 4, 5, 6, 7, 8}
	v := Load(src)
	if v.Len() > MaxLanes[float64]() {
		t.Fatalf("Load produced %d lanes, max is %d", v.Len(), MaxLanes[float64]())
	}
	dst := make([]float64, v.Len())
	Store(v, dst)
	for i := range dst {
		if dst[i] != src[i] {
			t.Errorf("lane %d: got %v, want %v", i, dst[i], src[i])
		}
	}
}

func TestLoadCopiesSource(t *testing.T) {
	src := []int32{1, 2, 3, 4}
	v := Load(src)
	src[0] = 99
	if v.Data()[0] != 1 {
		t.Error("Load aliased the source slice")
	}
}

func TestAddMulLanes(t *testing.T) {
	a := Load([]int32{1, 2, 3, 4})
	b := Load([]int32{10, 20, 30, 40})
	sum := Add(a, b)
	prod := Mul(a, b)
	wantSum := []int32{11, 22, 33, 44}
	wantProd := []int32{10, 40, 90, 160}
	for i := 0; i < sum.Len(); i++ {
		if sum.Data()[i] != wantSum[i] {
			t.Errorf("Add lane %d: got %d, want %d", i, sum.Data()[i], wantSum[i])
		}
		if prod.Data()[i] != wantProd[i] {
			t.Errorf("Mul lane %d: got %d, want %d", i, prod.Data()[i], wantProd[i])
		}
	}
}

func TestIntegerWraparound(t *testing.T) {
	a := Load([]int8{127, -128})
	one := Load([]int8{1, -1})
	sum := Add(a, one)
	if sum.Data()[0] != -128 {
		t.Errorf("int8 127+1 = %d, want -128 (wraparound)", sum.Data()[0])
	}
	if sum.Data()[1] != 127 {
		t.Errorf("int8 -128-1 = %d, want 127 (wraparound)", sum.Data()[1])
	}
}

func TestFMASingleRounding(t *testing.T) {
	a := Load([]float64{1e16})
	b := Load([]float64{1 + 1e-16})
	c := Load([]float64{-1e16})
	got := FMA(a, b, c).Data()[0]
	want := math.FMA(1e16, 1+1e-16, -1e16)
	if got != want {
		t.Errorf("FMA = %v, want %v", got, want)
	}
	// A separate multiply-then-add loses the low bits entirely.
	if got == 1e16*(1+1e-16)-1e16 && want != 1e16*(1+1e-16)-1e16 {
		t.Error("FMA rounded twice")
	}
}

func TestHorizontalReductions(t *testing.T) {
	v := Load([]float64{4, 1, 3, 2})
	if got := ReduceSum(v); got != 10 {
		t.Errorf("ReduceSum = %v, want 10", got)
	}
	if got := ReduceMul(v); got != 24 {
		t.Errorf("ReduceMul = %v, want 24", got)
	}
	if got := ReduceMin(v); got != 1 {
		t.Errorf("ReduceMin = %v, want 1", got)
	}
	if got := ReduceMax(v); got != 4 {
		t.Errorf("ReduceMax = %v, want 4", got)
	}
}

func TestClamp(t *testing.T) {
	v := Load([]float32{-5, 0, 5, 15})
	got := Clamp(v, 0, 10).Data()
	want := []float32{0, 0, 5, 10}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Clamp lane %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestIfThenElse(t *testing.T) {
	a := Load([]int64{1, 2, 3, 4})
	b := Load([]int64{10, 20, 30, 40})
	mask := LessThan(a, Load([]int64{3, 3, 3, 3}))
	got := IfThenElse(mask, a, b).Data()
	want := []int64{1, 2, 30, 40}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("IfThenElse lane %d: got %d, want %d", i, got[i], want[i])
		}
	}
}

func TestOpsDoNotMutateOperands(t *testing.T) {
	a := Load([]float64{1, 2, 3, 4})
	b := Load([]float64{5, 6, 7, 8})
	_ = Add(a, b)
	_ = Mul(a, b)
	_ = Sub(a, b)
	_ = Min(a, b)
	_ = Max(a, b)
	_ = Neg(a)
	_ = Abs(a)
	for i, want := range []float64{1, 2, 3, 4} {
		if a.Data()[i] != want {
			t.Fatalf("operand a mutated at lane %d: %v", i, a.Data()[i])
		}
	}
	for i, want := range []float64{5, 6, 7, 8} {
		if b.Data()[i] != want {
			t.Fatalf("operand b mutated at lane %d: %v", i, b.Data()[i])
		}
	}
}
