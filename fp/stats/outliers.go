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

package stats

// OutliersZScore flags each element whose z-score magnitude exceeds
// threshold, returning the mask and the flag count. A sample with zero
// standard deviation has no outliers.
func OutliersZScore(x []float64, threshold float64) ([]bool, int) {
	mask := make([]bool, len(x))
	if len(x) < 2 {
		return mask, 0
	}
	mean := Mean(x)
	sd := StdDev(x)
	if sd == 0 {
		return mask, 0
	}
	count := 0
	for i, v := range x {
		z := (v - mean) / sd
		if z < 0 {
			z = -z
		}
		if z > threshold {
			mask[i] = true
			count++
		}
	}
	return mask, count
}

// OutliersIQR flags elements outside [Q1 − k·IQR, Q3 + k·IQR], the
// Tukey fence test (k = 1.5 is the conventional choice). Fewer than
// four samples cannot define meaningful fences and yield no flags.
func OutliersIQR(x []float64, k float64) ([]bool, int) {
	mask := make([]bool, len(x))
	if len(x) < 4 {
		return mask, 0
	}
	q := SummarizeQuartiles(x)
	lo := q.Q1 - k*q.IQR
	hi := q.Q3 + k*q.IQR
	count := 0
	for i, v := range x {
		if v < lo || v > hi {
			mask[i] = true
			count++
		}
	}
	return mask, count
}
