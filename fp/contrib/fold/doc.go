// Package fold provides fused two-array fold kernels: dot product, sum of
// squares, and sum of absolute differences. Each collapses its inputs to
// one scalar in a single pass without materializing an intermediate
// elementwise array.
//
// Float instantiations accumulate with a fused multiply-add, halving both
// the instruction count and the rounding steps of a separate
// multiply-then-add. Integer instantiations wrap around at the type's
// width.
//
// All kernels use the shorter of the two input lengths, return 0 for
// empty input, and never mutate their arguments.
package fold
