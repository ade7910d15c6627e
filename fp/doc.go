// Copyright 2026 go-purefp Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package fp provides the lane-level core of go-purefp: numeric type
// constraints, per-type lane-width traits, a runtime dispatch level, and
// portable lanewise vector operations on Vec[T].
//
// Every function in this package and its subpackages honors the purity
// contract: inputs are never mutated, no state outside the declared
// arguments is read or written, and identical inputs produce identical
// outputs. Operations are therefore safe to call concurrently from any
// number of goroutines without synchronization.
//
// The kernels built on this package (fp/contrib/...) process arrays in
// chunks of MaxLanes[T]() elements. Lane count is a performance property,
// never a correctness property: results are identical at every dispatch
// level, modulo documented floating-point summation-order tolerance.
package fp
