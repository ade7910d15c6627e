//go:generate go run ../../../cmd/fpgen -input apply_base.go -output z_entrypoints.go -kind map

package apply

import (
	"math"

	"github.com/ajroetker/go-purefp/fp"
)

// Scale writes x[i]*c to dst for each i, returning the element count
// processed.
//
// Example:
//
//	dst := make([]int64, 5)
//	apply.Scale([]int64{1, 2, 3, 4, 5}, 3, dst)  // dst = [3 6 9 12 15]
func Scale[T fp.Lanes](x []T, c T, dst []T) int {
	n := min(len(x), len(dst))
	lanes := fp.MaxLanes[T]()
	cv := fp.Set(c)
	i := 0
	for ; i+lanes <= n; i += lanes {
		fp.Store(fp.Mul(fp.Load(x[i:i+lanes]), cv), dst[i:i+lanes])
	}
	for ; i < n; i++ {
		dst[i] = x[i] * c
	}
	return n
}

// Offset writes x[i]+c to dst for each i.
func Offset[T fp.Lanes](x []T, c T, dst []T) int {
	n := min(len(x), len(dst))
	lanes := fp.MaxLanes[T]()
	cv := fp.Set(c)
	i := 0
	for ; i+lanes <= n; i += lanes {
		fp.Store(fp.Add(fp.Load(x[i:i+lanes]), cv), dst[i:i+lanes])
	}
	for ; i < n; i++ {
		dst[i] = x[i] + c
	}
	return n
}

// Axpy writes c*x[i] + y[i] to dst: the classic affine combine. Float
// instantiations use a fused multiply-add per lane.
func Axpy[T fp.Lanes](c T, x, y, dst []T) int {
	n := min(len(x), len(y), len(dst))
	lanes := fp.MaxLanes[T]()
	cv := fp.Set(c)
	i := 0
	for ; i+lanes <= n; i += lanes {
		fp.Store(fp.MulAdd(cv, fp.Load(x[i:i+lanes]), fp.Load(y[i:i+lanes])), dst[i:i+lanes])
	}
	for ; i < n; i++ {
		dst[i] = fp.MulAddScalar(c, x[i], y[i])
	}
	return n
}

// Add writes a[i]+b[i] to dst for each i.
func Add[T fp.Lanes](a, b, dst []T) int {
	n := min(len(a), len(b), len(dst))
	lanes := fp.MaxLanes[T]()
	i := 0
	for ; i+lanes <= n; i += lanes {
		fp.Store(fp.Add(fp.Load(a[i:i+lanes]), fp.Load(b[i:i+lanes])), dst[i:i+lanes])
	}
	for ; i < n; i++ {
		dst[i] = a[i] + b[i]
	}
	return n
}

// Mul writes the Hadamard product a[i]*b[i] to dst for each i.
func Mul[T fp.Lanes](a, b, dst []T) int {
	n := min(len(a), len(b), len(dst))
	lanes := fp.MaxLanes[T]()
	i := 0
	for ; i+lanes <= n; i += lanes {
		fp.Store(fp.Mul(fp.Load(a[i:i+lanes]), fp.Load(b[i:i+lanes])), dst[i:i+lanes])
	}
	for ; i < n; i++ {
		dst[i] = a[i] * b[i]
	}
	return n
}

// Abs writes |x[i]| to dst for each i. The minimum signed integer wraps
// to itself.
//
//fpgen:types signed,floats
func Abs[T fp.Lanes](x, dst []T) int {
	n := min(len(x), len(dst))
	lanes := fp.MaxLanes[T]()
	i := 0
	for ; i+lanes <= n; i += lanes {
		fp.Store(fp.Abs(fp.Load(x[i:i+lanes])), dst[i:i+lanes])
	}
	for ; i < n; i++ {
		v := x[i]
		if v < 0 {
			v = -v
		}
		dst[i] = v
	}
	return n
}

// Sqrt writes √x[i] to dst for each i.
func Sqrt[T fp.Floats](x, dst []T) int {
	n := min(len(x), len(dst))
	lanes := fp.MaxLanes[T]()
	i := 0
	for ; i+lanes <= n; i += lanes {
		fp.Store(fp.Sqrt(fp.Load(x[i:i+lanes])), dst[i:i+lanes])
	}
	for ; i < n; i++ {
		dst[i] = sqrtScalar(x[i])
	}
	return n
}

func sqrtScalar[T fp.Floats](v T) T {
	return T(math.Sqrt(float64(v)))
}

// Clamp writes x[i] limited to [lo, hi] to dst for each i.
func Clamp[T fp.Lanes](x []T, lo, hi T, dst []T) int {
	n := min(len(x), len(dst))
	lanes := fp.MaxLanes[T]()
	i := 0
	for ; i+lanes <= n; i += lanes {
		fp.Store(fp.Clamp(fp.Load(x[i:i+lanes]), lo, hi), dst[i:i+lanes])
	}
	for ; i < n; i++ {
		v := x[i]
		if v < lo {
			v = lo
		}
		if v > hi {
			v = hi
		}
		dst[i] = v
	}
	return n
}
