// Package generic is the fallback composition engine: purity-preserving
// sort/map/filter/fold/zip/partition over slices of any element type via
// caller-supplied closures. It trades the lane parallelism of the
// fp/contrib kernels for full generality and is the tier to reach for
// when no specialized kernel fits the element type.
//
// Every operation returns freshly allocated output and leaves its inputs
// byte-identical; an empty input yields an empty (non-nil) result. The
// engine guarantees call cardinality (transform, predicate, and step
// closures run exactly once per element, comparators O(n log n) times in
// aggregate) but makes no purity guarantee about the closures
// themselves: an impure closure is the caller's problem.
package generic
