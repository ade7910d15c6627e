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

// Package stats builds named statistical algorithms purely by composing
// the kernel tiers: reductions and fused folds for moments and products,
// map kernels for elementwise rewrites, and the generic engine's sort
// for order statistics. No function here writes its own elementwise
// loop over caller data except the documented sliding-window
// specializations, which exist because a windowed sum is cheaper carried
// than recomputed.
//
// Degenerate inputs (too few samples, zero variance) yield NaN sentinel
// results rather than errors; errors are reserved for contract
// violations a caller can fix, such as mismatched lengths or a
// non-positive window. Inputs are never mutated; order statistics sort
// an internal copy.
package stats
