package reduce

import "github.com/ajroetker/go-purefp/fp"

// AllEqual reports whether every element of x equals value. An empty
// slice vacuously satisfies the predicate. Exits at the first mismatch.
func AllEqual[T fp.Lanes](x []T, value T) bool {
	for _, v := range x {
		if v != value {
			return false
		}
	}
	return true
}

// AnyGreater reports whether any element of x exceeds value. Exits at
// the first hit.
func AnyGreater[T fp.Lanes](x []T, value T) bool {
	for _, v := range x {
		if v > value {
			return true
		}
	}
	return false
}

// AllGreater reports whether a[i] > b[i] for every index up to the
// shorter length. Empty input is vacuously true.
func AllGreater[T fp.Lanes](a, b []T) bool {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[i] <= b[i] {
			return false
		}
	}
	return true
}
