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

// Package scan provides inclusive prefix-sum and adjacent-difference
// kernels. Scans carry a loop dependency between elements, so these run
// as unrolled scalar loops rather than lane-parallel chunks; modern CPUs
// overlap the iterations well enough that this is not the bottleneck it
// looks like.
package scan

import "github.com/ajroetker/go-purefp/fp"

// PrefixSum writes the inclusive prefix sum of x into dst:
// dst[i] = x[0] + ... + x[i]. Processes min(len(x), len(dst)) elements
// and returns the count. dst == x is allowed.
//
// Example:
//
//	dst := make([]int64, 4)
//	scan.PrefixSum([]int64{1, 2, 3, 4}, dst)  // dst = [1 3 6 10]
func PrefixSum[T fp.Lanes](x, dst []T) int {
	n := min(len(x), len(dst))
	var acc T
	for i := 0; i < n; i++ {
		acc += x[i]
		dst[i] = acc
	}
	return n
}

// Delta writes adjacent differences into dst: dst[0] = x[0] - base and
// dst[i] = x[i] - x[i-1]. The inverse of PrefixSum when base is 0.
// Processes min(len(x), len(dst)) elements and returns the count.
// dst == x is allowed: elements are consumed before being overwritten.
func Delta[T fp.Lanes](x []T, base T, dst []T) int {
	n := min(len(x), len(dst))
	prev := base
	for i := 0; i < n; i++ {
		v := x[i]
		dst[i] = v - prev
		prev = v
	}
	return n
}
