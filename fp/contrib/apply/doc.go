// Package apply provides fused elementwise map kernels that write their
// result into a caller-owned destination buffer: Scale, Offset, Axpy,
// Add, Mul, Abs, Sqrt, and Clamp.
//
// Each kernel processes min(input length, destination length) elements,
// writing every destination element in that range exactly once and never
// reading the destination before writing it. Inputs are never mutated.
//
// Full aliasing (dst sharing its backing array with an input at offset
// zero) is allowed: chunks are copied into vector registers before the
// store, so every kernel has a working in-place form. Partially
// overlapping buffers are undefined behavior, as with any vector store.
package apply
