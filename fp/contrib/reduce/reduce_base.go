//go:generate go run ../../../cmd/fpgen -input reduce_base.go -output z_entrypoints.go -kind reduction

package reduce

import (
	"math"

	"github.com/ajroetker/go-purefp/fp"
)

// Add returns the sum of all elements of x, or 0 for an empty slice.
// Integer sums wrap around at the type's width.
//
// Example:
//
//	reduce.Add([]int64{1, 2, 3, 4, 5})  // 15
func Add[T fp.Lanes](x []T) T {
	n := len(x)
	lanes := fp.MaxLanes[T]()
	if n < lanes {
		var sum T
		for _, v := range x {
			sum += v
		}
		return sum
	}

	acc := fp.Zero[T]()
	i := 0
	for ; i+lanes <= n; i += lanes {
		acc = fp.Add(acc, fp.Load(x[i:i+lanes]))
	}
	sum := fp.ReduceSum(acc)
	for ; i < n; i++ {
		sum += x[i]
	}
	return sum
}

// Mul returns the product of all elements of x, or 1 for an empty slice.
// Integer products wrap around at the type's width.
func Mul[T fp.Lanes](x []T) T {
	n := len(x)
	lanes := fp.MaxLanes[T]()
	if n < lanes {
		prod := T(1)
		for _, v := range x {
			prod *= v
		}
		return prod
	}

	acc := fp.Set[T](1)
	i := 0
	for ; i+lanes <= n; i += lanes {
		acc = fp.Mul(acc, fp.Load(x[i:i+lanes]))
	}
	prod := fp.ReduceMul(acc)
	for ; i < n; i++ {
		prod *= x[i]
	}
	return prod
}

// Min returns the smallest element of x. An empty slice returns the
// type's largest representable value (+Inf for floats), the identity of
// the operation. If any element is NaN the result is NaN.
func Min[T fp.Lanes](x []T) T {
	if len(x) == 0 {
		return maxValue[T]()
	}
	return minmax(x, minStep[T])
}

// Max returns the largest element of x. An empty slice returns the
// type's smallest representable value (-Inf for floats). If any element
// is NaN the result is NaN.
func Max[T fp.Lanes](x []T) T {
	if len(x) == 0 {
		return minValue[T]()
	}
	return minmax(x, maxStep[T])
}

// minmax runs the striped-accumulator loop with the given ordering step.
// The accumulator stripe is seeded from the first chunk so no sentinel
// ever enters the data path.
func minmax[T fp.Lanes](x []T, step func(a, b T) T) T {
	n := len(x)
	lanes := fp.MaxLanes[T]()
	if n < lanes*2 {
		m := x[0]
		for _, v := range x[1:] {
			m = step(m, v)
		}
		return m
	}

	acc := make([]T, lanes)
	copy(acc, x[:lanes])
	i := lanes
	for ; i+lanes <= n; i += lanes {
		chunk := x[i : i+lanes]
		for j, v := range chunk {
			acc[j] = step(acc[j], v)
		}
	}
	m := acc[0]
	for _, v := range acc[1:] {
		m = step(m, v)
	}
	for ; i < n; i++ {
		m = step(m, x[i])
	}
	return m
}

// minStep is the NaN-propagating ordering step. The v != v test is the
// portable NaN check; it is statically false for every integer
// instantiation, so the same body serves all ten lane types.
func minStep[T fp.Lanes](a, b T) T {
	if b != b {
		return b
	}
	if a != a {
		return a
	}
	if b < a {
		return b
	}
	return a
}

func maxStep[T fp.Lanes](a, b T) T {
	if b != b {
		return b
	}
	if a != a {
		return a
	}
	if b > a {
		return b
	}
	return a
}

// maxValue returns the largest representable T: the identity of Min.
// The dead branches still type-check for every instantiation, which is
// why the limits go through a non-constant conversion.
func maxValue[T fp.Lanes]() T {
	var zero T
	switch any(zero).(type) {
	case float32, float64:
		return T(math.Inf(1))
	case int8:
		v := int64(math.MaxInt8)
		return T(v)
	case int16:
		v := int64(math.MaxInt16)
		return T(v)
	case int32:
		v := int64(math.MaxInt32)
		return T(v)
	case int64:
		v := int64(math.MaxInt64)
		return T(v)
	case uint8:
		v := uint64(math.MaxUint8)
		return T(v)
	case uint16:
		v := uint64(math.MaxUint16)
		return T(v)
	case uint32:
		v := uint64(math.MaxUint32)
		return T(v)
	default:
		v := uint64(math.MaxUint64)
		return T(v)
	}
}

// minValue returns the smallest representable T: the identity of Max.
func minValue[T fp.Lanes]() T {
	var zero T
	switch any(zero).(type) {
	case float32, float64:
		return T(math.Inf(-1))
	case int8:
		v := int64(math.MinInt8)
		return T(v)
	case int16:
		v := int64(math.MinInt16)
		return T(v)
	case int32:
		v := int64(math.MinInt32)
		return T(v)
	case int64:
		v := int64(math.MinInt64)
		return T(v)
	default:
		return zero
	}
}
