package generic

import (
	"cmp"
	"math/rand"
	"strings"
	"testing"
)

func TestSortScenario(t *testing.T) {
	in := []int{3, 1, 2}
	got := Sort(in, cmp.Compare)
	want := []int{1, 2, 3}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got[%d] = %d, want %d", i, got[i], want[i])
		}
	}
	// Input untouched.
	for i, v := range []int{3, 1, 2} {
		if in[i] != v {
			t.Fatalf("input mutated at %d", i)
		}
	}
}

func TestSortIsPermutationAndOrdered(t *testing.T) {
	rng := rand.New(rand.NewSource(17))
	in := make([]int64, 500)
	counts := map[int64]int{}
	for i := range in {
		in[i] = rng.Int63n(50)
		counts[in[i]]++
	}
	out := Sort(in, cmp.Compare)
	if len(out) != len(in) {
		t.Fatalf("length changed: %d != %d", len(out), len(in))
	}
	for i := 0; i+1 < len(out); i++ {
		if cmp.Compare(out[i], out[i+1]) > 0 {
			t.Fatalf("not sorted at %d: %d > %d", i, out[i], out[i+1])
		}
	}
	for _, v := range out {
		counts[v]--
	}
	for k, c := range counts {
		if c != 0 {
			t.Fatalf("not a permutation: key %d off by %d", k, c)
		}
	}
}

type record struct {
	key int
	seq int
}

func TestSortStablePreservesTieOrder(t *testing.T) {
	rng := rand.New(rand.NewSource(23))
	in := make([]record, 200)
	for i := range in {
		in[i] = record{key: rng.Intn(5), seq: i}
	}
	out := SortStable(in, func(a, b record) int { return cmp.Compare(a.key, b.key) })
	for i := 0; i+1 < len(out); i++ {
		if out[i].key > out[i+1].key {
			t.Fatalf("not sorted at %d", i)
		}
		if out[i].key == out[i+1].key && out[i].seq > out[i+1].seq {
			t.Fatalf("equal keys reordered at %d: seq %d before %d",
				i, out[i].seq, out[i+1].seq)
		}
	}
}

func TestMapCardinalityAndOrder(t *testing.T) {
	calls := 0
	got := Map([]int{1, 2, 3}, func(v int) string {
		calls++
		return strings.Repeat("x", v)
	})
	if calls != 3 {
		t.Errorf("transform called %d times, want 3", calls)
	}
	want := []string{"x", "xx", "xxx"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestFilterComplementReconstructsInput(t *testing.T) {
	rng := rand.New(rand.NewSource(31))
	in := make([]int, 300)
	for i := range in {
		in[i] = rng.Intn(100)
	}
	even := func(v int) bool { return v%2 == 0 }
	odd := func(v int) bool { return !even(v) }

	evens := Filter(in, even)
	odds := Filter(in, odd)
	if len(evens)+len(odds) != len(in) {
		t.Fatalf("counts %d+%d != %d", len(evens), len(odds), len(in))
	}
	// Merging the two outputs by walking the input reconstructs it
	// exactly, since both preserve relative order.
	ei, oi := 0, 0
	for i, v := range in {
		if even(v) {
			if evens[ei] != v {
				t.Fatalf("evens[%d] = %d, want %d (input index %d)", ei, evens[ei], v, i)
			}
			ei++
		} else {
			if odds[oi] != v {
				t.Fatalf("odds[%d] = %d, want %d (input index %d)", oi, odds[oi], v, i)
			}
			oi++
		}
	}
}

func TestPartitionStableBothSides(t *testing.T) {
	in := []int{5, 1, 8, 2, 9, 3}
	hi, lo := Partition(in, func(v int) bool { return v >= 5 })
	wantHi := []int{5, 8, 9}
	wantLo := []int{1, 2, 3}
	if len(hi) != len(wantHi) || len(lo) != len(wantLo) {
		t.Fatalf("sizes %d/%d, want 3/3", len(hi), len(lo))
	}
	for i := range wantHi {
		if hi[i] != wantHi[i] {
			t.Errorf("matched[%d] = %d, want %d", i, hi[i], wantHi[i])
		}
	}
	for i := range wantLo {
		if lo[i] != wantLo[i] {
			t.Errorf("unmatched[%d] = %d, want %d", i, lo[i], wantLo[i])
		}
	}
}

func TestFoldThreadsAccumulator(t *testing.T) {
	got := Fold([]int{1, 2, 3, 4}, 0, func(acc, v int) int { return acc*10 + v })
	if got != 1234 {
		t.Errorf("Fold = %d, want 1234", got)
	}
}

func TestZipWithHeterogeneous(t *testing.T) {
	names := []string{"a", "b", "c"}
	nums := []int{1, 2, 3, 4}
	got := ZipWith(names, nums, func(s string, n int) string {
		return s + strings.Repeat("!", n)
	})
	want := []string{"a!", "b!!", "c!!!"}
	if len(got) != 3 {
		t.Fatalf("length %d, want 3 (shorter input)", len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestTakeDropWhile(t *testing.T) {
	in := []int{2, 4, 6, 1, 8}
	even := func(v int) bool { return v%2 == 0 }
	take := TakeWhile(in, even)
	drop := DropWhile(in, even)
	if len(take) != 3 || take[2] != 6 {
		t.Errorf("TakeWhile = %v, want [2 4 6]", take)
	}
	if len(drop) != 2 || drop[0] != 1 || drop[1] != 8 {
		t.Errorf("DropWhile = %v, want [1 8]", drop)
	}
}

func TestUniqueAndReverse(t *testing.T) {
	got := Unique([]int{1, 1, 2, 2, 2, 3}, func(a, b int) bool { return a == b })
	if len(got) != 3 || got[0] != 1 || got[1] != 2 || got[2] != 3 {
		t.Errorf("Unique = %v, want [1 2 3]", got)
	}
	rev := Reverse([]int{1, 2, 3, 4})
	want := []int{4, 3, 2, 1}
	for i := range want {
		if rev[i] != want[i] {
			t.Errorf("Reverse[%d] = %d, want %d", i, rev[i], want[i])
		}
	}
}

func TestEmptyInputsYieldEmptyOutputs(t *testing.T) {
	if got := Sort([]int{}, cmp.Compare); got == nil || len(got) != 0 {
		t.Error("Sort(empty) should be empty non-nil")
	}
	if got := Map([]int{}, func(v int) int { return v }); got == nil || len(got) != 0 {
		t.Error("Map(empty) should be empty non-nil")
	}
	if got := Filter([]int{}, func(int) bool { return true }); got == nil || len(got) != 0 {
		t.Error("Filter(empty) should be empty non-nil")
	}
	m, u := Partition([]int{}, func(int) bool { return true })
	if m == nil || u == nil || len(m) != 0 || len(u) != 0 {
		t.Error("Partition(empty) should be empty non-nil pairs")
	}
}
