//go:generate go run ../../../cmd/fpgen -input fold_base.go -output z_entrypoints.go -kind "fused fold"

package fold

import "github.com/ajroetker/go-purefp/fp"

// Dot computes the dot product Σ a[i]*b[i] over the shorter of the two
// lengths. Returns 0 if either slice is empty.
//
// Example:
//
//	fold.Dot([]int64{1, 2, 3, 4, 5}, []int64{2, 3, 4, 5, 6})  // 70
func Dot[T fp.Lanes](a, b []T) T {
	n := min(len(a), len(b))
	lanes := fp.MaxLanes[T]()
	if n < lanes {
		var sum T
		for i := 0; i < n; i++ {
			sum = fp.MulAddScalar(a[i], b[i], sum)
		}
		return sum
	}

	acc := fp.Zero[T]()
	i := 0
	for ; i+lanes <= n; i += lanes {
		acc = fp.MulAdd(fp.Load(a[i:i+lanes]), fp.Load(b[i:i+lanes]), acc)
	}
	sum := fp.ReduceSum(acc)
	for ; i < n; i++ {
		sum = fp.MulAddScalar(a[i], b[i], sum)
	}
	return sum
}

// SumSquares computes Σ x[i]² in one fused pass. Equivalent to
// Dot(x, x) and implemented as the same accumulation with one load per
// chunk instead of two.
func SumSquares[T fp.Lanes](x []T) T {
	n := len(x)
	lanes := fp.MaxLanes[T]()
	if n < lanes {
		var sum T
		for _, v := range x {
			sum = fp.MulAddScalar(v, v, sum)
		}
		return sum
	}

	acc := fp.Zero[T]()
	i := 0
	for ; i+lanes <= n; i += lanes {
		v := fp.Load(x[i : i+lanes])
		acc = fp.MulAdd(v, v, acc)
	}
	sum := fp.ReduceSum(acc)
	for ; i < n; i++ {
		sum = fp.MulAddScalar(x[i], x[i], sum)
	}
	return sum
}

// SumAbsDiff computes Σ |a[i] - b[i]| over the shorter of the two
// lengths. The per-element difference is taken in whichever order is
// non-negative, so unsigned instantiations never wrap.
func SumAbsDiff[T fp.Lanes](a, b []T) T {
	n := min(len(a), len(b))
	lanes := fp.MaxLanes[T]()
	if n < lanes*2 {
		var sum T
		for i := 0; i < n; i++ {
			sum += absDiff(a[i], b[i])
		}
		return sum
	}

	acc := make([]T, lanes)
	i := 0
	for ; i+lanes <= n; i += lanes {
		ca, cb := a[i:i+lanes], b[i:i+lanes]
		for j := range acc {
			acc[j] += absDiff(ca[j], cb[j])
		}
	}
	var sum T
	for _, v := range acc {
		sum += v
	}
	for ; i < n; i++ {
		sum += absDiff(a[i], b[i])
	}
	return sum
}

func absDiff[T fp.Lanes](x, y T) T {
	if x > y {
		return x - y
	}
	return y - x
}
