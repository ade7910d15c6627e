package fp

import "math"

// Portable lanewise implementations of the core vector operations. These
// are the "base" tier: one loop per op, written so the compiler can keep
// the lane arrays in registers. Accelerated backends may replace them per
// dispatch level without changing results (floating summation order aside).

// Load creates a vector from the first MaxLanes[T]() elements of src, or
// fewer if src is shorter. The slice contents are copied; src is never
// aliased or mutated.
func Load[T Lanes](src []T) Vec[T] {
	n := min(MaxLanes[T](), len(src))
	data := make([]T, n)
	copy(data, src[:n])
	return Vec[T]{data: data}
}

// Store writes the vector's lanes to dst, stopping at the shorter of the
// two lengths. This is the only core operation that writes to caller
// memory, and it writes each destination element exactly once.
func Store[T Lanes](v Vec[T], dst []T) {
	n := min(len(v.data), len(dst))
	copy(dst[:n], v.data[:n])
}

// Set creates a full-width vector with every lane equal to value.
func Set[T Lanes](value T) Vec[T] {
	data := make([]T, MaxLanes[T]())
	for i := range data {
		data[i] = value
	}
	return Vec[T]{data: data}
}

// Zero creates a full-width vector of zero lanes.
func Zero[T Lanes]() Vec[T] {
	return Vec[T]{data: make([]T, MaxLanes[T]())}
}

// Iota creates a full-width vector with lanes start, start+step, ...
func Iota[T Lanes](start, step T) Vec[T] {
	data := make([]T, MaxLanes[T]())
	v := start
	for i := range data {
		data[i] = v
		v += step
	}
	return Vec[T]{data: data}
}

func binary[T Lanes](a, b Vec[T], op func(x, y T) T) Vec[T] {
	n := min(len(a.data), len(b.data))
	result := make([]T, n)
	for i := 0; i < n; i++ {
		result[i] = op(a.data[i], b.data[i])
	}
	return Vec[T]{data: result}
}

// Add performs lanewise addition. Integer lanes wrap around.
func Add[T Lanes](a, b Vec[T]) Vec[T] {
	return binary(a, b, func(x, y T) T { return x + y })
}

// Sub performs lanewise subtraction. Integer lanes wrap around.
func Sub[T Lanes](a, b Vec[T]) Vec[T] {
	return binary(a, b, func(x, y T) T { return x - y })
}

// Mul performs lanewise multiplication. Integer lanes wrap around.
func Mul[T Lanes](a, b Vec[T]) Vec[T] {
	return binary(a, b, func(x, y T) T { return x * y })
}

// Div performs lanewise division for float lanes.
func Div[T Floats](a, b Vec[T]) Vec[T] {
	n := min(len(a.data), len(b.data))
	result := make([]T, n)
	for i := 0; i < n; i++ {
		result[i] = a.data[i] / b.data[i]
	}
	return Vec[T]{data: result}
}

// Min returns the lanewise minimum. NaN lanes are not given special
// treatment here; NaN-propagating reductions live in fp/contrib/reduce.
func Min[T Lanes](a, b Vec[T]) Vec[T] {
	return binary(a, b, func(x, y T) T {
		if x < y {
			return x
		}
		return y
	})
}

// Max returns the lanewise maximum.
func Max[T Lanes](a, b Vec[T]) Vec[T] {
	return binary(a, b, func(x, y T) T {
		if x > y {
			return x
		}
		return y
	})
}

// Neg negates every lane.
func Neg[T Lanes](v Vec[T]) Vec[T] {
	result := make([]T, len(v.data))
	for i, x := range v.data {
		result[i] = -x
	}
	return Vec[T]{data: result}
}

// Abs computes the lanewise absolute value. For signed integers the
// minimum value wraps to itself, matching native semantics.
func Abs[T Lanes](v Vec[T]) Vec[T] {
	result := make([]T, len(v.data))
	for i, x := range v.data {
		if x < 0 {
			x = -x
		}
		result[i] = x
	}
	return Vec[T]{data: result}
}

// Sqrt computes the lanewise square root for float lanes.
func Sqrt[T Floats](v Vec[T]) Vec[T] {
	result := make([]T, len(v.data))
	for i, x := range v.data {
		result[i] = T(math.Sqrt(float64(x)))
	}
	return Vec[T]{data: result}
}

// FMA computes a*b + c per lane with a single rounding, matching the
// hardware fused multiply-add.
func FMA[T Floats](a, b, c Vec[T]) Vec[T] {
	n := min(len(a.data), len(b.data), len(c.data))
	result := make([]T, n)
	for i := 0; i < n; i++ {
		result[i] = fmaScalar(a.data[i], b.data[i], c.data[i])
	}
	return Vec[T]{data: result}
}

func fmaScalar[T Floats](a, b, c T) T {
	return T(math.FMA(float64(a), float64(b), float64(c)))
}

// MulAdd computes a*b + acc per lane for any lane type: float lanes use
// the fused multiply-add, integer lanes use wrapping multiply-then-add.
// This is the accumulation step of the fused fold kernels.
func MulAdd[T Lanes](a, b, acc Vec[T]) Vec[T] {
	n := min(len(a.data), len(b.data), len(acc.data))
	result := make([]T, n)
	var zero T
	switch any(zero).(type) {
	case float32, float64:
		for i := 0; i < n; i++ {
			result[i] = T(math.FMA(float64(a.data[i]), float64(b.data[i]), float64(acc.data[i])))
		}
	default:
		for i := 0; i < n; i++ {
			result[i] = a.data[i]*b.data[i] + acc.data[i]
		}
	}
	return Vec[T]{data: result}
}

// MulAddScalar is the single-lane form of MulAdd, used for kernel tails.
func MulAddScalar[T Lanes](a, b, acc T) T {
	var zero T
	switch any(zero).(type) {
	case float32, float64:
		return T(math.FMA(float64(a), float64(b), float64(acc)))
	default:
		return a*b + acc
	}
}

// Clamp limits every lane to [lo, hi].
func Clamp[T Lanes](v Vec[T], lo, hi T) Vec[T] {
	result := make([]T, len(v.data))
	for i, x := range v.data {
		if x < lo {
			x = lo
		}
		if x > hi {
			x = hi
		}
		result[i] = x
	}
	return Vec[T]{data: result}
}

// ReduceSum adds all lanes into one scalar. Integer lanes wrap around.
func ReduceSum[T Lanes](v Vec[T]) T {
	var sum T
	for _, x := range v.data {
		sum += x
	}
	return sum
}

// ReduceMul multiplies all lanes into one scalar (1 for an empty vector).
func ReduceMul[T Lanes](v Vec[T]) T {
	prod := T(1)
	for _, x := range v.data {
		prod *= x
	}
	return prod
}

// ReduceMin returns the smallest lane. It must not be called on an empty
// vector; the reduction kernels guarantee that.
func ReduceMin[T Lanes](v Vec[T]) T {
	m := v.data[0]
	for _, x := range v.data[1:] {
		if x < m {
			m = x
		}
	}
	return m
}

// ReduceMax returns the largest lane. It must not be called on an empty
// vector; the reduction kernels guarantee that.
func ReduceMax[T Lanes](v Vec[T]) T {
	m := v.data[0]
	for _, x := range v.data[1:] {
		if x > m {
			m = x
		}
	}
	return m
}

// Equal performs lanewise equality comparison.
func Equal[T Lanes](a, b Vec[T]) Mask[T] {
	return compare(a, b, func(x, y T) bool { return x == y })
}

// LessThan performs lanewise less-than comparison.
func LessThan[T Lanes](a, b Vec[T]) Mask[T] {
	return compare(a, b, func(x, y T) bool { return x < y })
}

// GreaterThan performs lanewise greater-than comparison.
func GreaterThan[T Lanes](a, b Vec[T]) Mask[T] {
	return compare(a, b, func(x, y T) bool { return x > y })
}

func compare[T Lanes](a, b Vec[T], pred func(x, y T) bool) Mask[T] {
	n := min(len(a.data), len(b.data))
	bits := make([]bool, n)
	for i := 0; i < n; i++ {
		bits[i] = pred(a.data[i], b.data[i])
	}
	return Mask[T]{bits: bits}
}

// IfThenElse selects a's lane where the mask is true, b's otherwise.
func IfThenElse[T Lanes](mask Mask[T], a, b Vec[T]) Vec[T] {
	n := min(len(mask.bits), len(a.data), len(b.data))
	result := make([]T, n)
	for i := 0; i < n; i++ {
		if mask.bits[i] {
			result[i] = a.data[i]
		} else {
			result[i] = b.data[i]
		}
	}
	return Vec[T]{data: result}
}
