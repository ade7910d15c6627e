package generic

import "slices"

// Sort returns a new sorted permutation of in, ordered by cmp (negative
// for less, zero for equal, positive for greater). The input is never
// mutated. Ordering is not stable; elements comparing equal may appear
// in either order. Use SortStable when input order must survive ties.
//
// Example:
//
//	generic.Sort([]int{3, 1, 2}, cmp.Compare)  // [1 2 3]
func Sort[T any](in []T, cmp func(a, b T) int) []T {
	out := make([]T, len(in))
	copy(out, in)
	slices.SortFunc(out, cmp)
	return out
}

// SortStable is Sort with the additional guarantee that elements
// comparing equal retain their relative input order.
func SortStable[T any](in []T, cmp func(a, b T) int) []T {
	out := make([]T, len(in))
	copy(out, in)
	slices.SortStableFunc(out, cmp)
	return out
}

// Map returns transform applied to each element, in order. The transform
// runs exactly once per element.
func Map[A, B any](in []A, transform func(A) B) []B {
	out := make([]B, len(in))
	for i, v := range in {
		out[i] = transform(v)
	}
	return out
}

// Filter returns the elements satisfying pred, in their original
// relative order. The predicate runs exactly once per element.
func Filter[T any](in []T, pred func(T) bool) []T {
	out := make([]T, 0, len(in))
	for _, v := range in {
		if pred(v) {
			out = append(out, v)
		}
	}
	return out
}

// Fold threads an accumulator left-to-right across in, starting from
// init. The step runs exactly once per element.
func Fold[T, A any](in []T, init A, step func(acc A, v T) A) A {
	acc := init
	for _, v := range in {
		acc = step(acc, v)
	}
	return acc
}

// ZipWith combines a[i] and b[i] into a third type over the shorter of
// the two lengths. The combiner runs exactly once per output element.
func ZipWith[A, B, C any](a []A, b []B, combine func(A, B) C) []C {
	n := min(len(a), len(b))
	out := make([]C, n)
	for i := 0; i < n; i++ {
		out[i] = combine(a[i], b[i])
	}
	return out
}

// Partition splits in into the elements satisfying pred and those that
// do not. Both outputs preserve the input's relative order. The
// predicate runs exactly once per element.
func Partition[T any](in []T, pred func(T) bool) (matched, unmatched []T) {
	matched = make([]T, 0, len(in))
	unmatched = make([]T, 0)
	for _, v := range in {
		if pred(v) {
			matched = append(matched, v)
		} else {
			unmatched = append(unmatched, v)
		}
	}
	return matched, unmatched
}

// TakeWhile returns the longest prefix of in whose elements satisfy
// pred, stopping at the first failure.
func TakeWhile[T any](in []T, pred func(T) bool) []T {
	for i, v := range in {
		if !pred(v) {
			out := make([]T, i)
			copy(out, in[:i])
			return out
		}
	}
	out := make([]T, len(in))
	copy(out, in)
	return out
}

// DropWhile returns a copy of in with the longest satisfying prefix
// removed.
func DropWhile[T any](in []T, pred func(T) bool) []T {
	for i, v := range in {
		if !pred(v) {
			out := make([]T, len(in)-i)
			copy(out, in[i:])
			return out
		}
	}
	return []T{}
}

// Unique collapses consecutive runs of equal elements (per eq) to their
// first occurrence. On sorted input this yields the distinct elements.
func Unique[T any](in []T, eq func(a, b T) bool) []T {
	out := make([]T, 0, len(in))
	for i, v := range in {
		if i == 0 || !eq(out[len(out)-1], v) {
			out = append(out, v)
		}
	}
	return out
}

// Reverse returns a new slice with in's elements in reverse order.
func Reverse[T any](in []T) []T {
	out := make([]T, len(in))
	for i, v := range in {
		out[len(in)-1-i] = v
	}
	return out
}
