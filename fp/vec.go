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

package fp

// Vec is a value-semantics vector of up to MaxLanes[T]() lanes of T.
// Vectors are immutable: every operation returns a fresh vector and no
// operation writes through a receiver or argument.
//
// A Vec loaded from a short slice carries fewer than MaxLanes lanes;
// binary operations use the shorter operand's lane count.
type Vec[T Lanes] struct {
	data []T
}

// Data returns the vector's lanes. The returned slice is the vector's
// backing storage; callers must not modify it.
func (v Vec[T]) Data() []T { return v.data }

// Len returns the number of lanes held by the vector.
func (v Vec[T]) Len() int { return len(v.data) }

// Mask is a per-lane boolean produced by the comparison operations and
// consumed by IfThenElse.
type Mask[T Lanes] struct {
	bits []bool
}

// Bits returns the mask's lane predicates. Callers must not modify it.
func (m Mask[T]) Bits() []bool { return m.bits }
