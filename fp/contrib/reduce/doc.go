// Package reduce provides type-specialized reduction kernels that collapse
// one array to one scalar: Add, Mul, Min, Max, plus boolean predicate
// reductions.
//
// # Algorithm
//
// Arrays are processed in chunks of fp.MaxLanes[T]() elements. A vector of
// lane-count partial accumulators is combined lanewise with each chunk,
// horizontally folded into one scalar after the main loop, and any
// remaining tail elements are folded in with scalar steps seeded from the
// horizontal result.
//
// # Contract
//
// Kernels never mutate their input and read no state outside their
// arguments. There is no error path: an empty input returns the
// operation's identity (0 for Add, 1 for Mul, the type's extreme
// representable value for Min/Max, which is ±Inf for floats). Integer Add and
// Mul follow native fixed-width wraparound semantics. Min and Max
// propagate NaN: if any element is NaN, the result is NaN.
//
// The hot path deliberately performs no precondition checks; a slice
// header that lies about its backing memory is the caller's undefined
// behavior, exactly as with any out-of-bounds unsafe construction.
package reduce
