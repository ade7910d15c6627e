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

import (
	"cmp"
	"math"

	"github.com/ajroetker/go-purefp/fp/generic"
)

// Percentile returns the p-th percentile of x for p in [0, 1], using
// linear interpolation between the two nearest order statistics
// (inclusive method, matching numpy's default). p outside [0, 1] is
// clamped. An empty sample yields NaN.
func Percentile(x []float64, p float64) float64 {
	if len(x) == 0 {
		return math.NaN()
	}
	sorted := generic.Sort(x, cmp.Compare)
	return interpolate(sorted, p)
}

// Percentiles evaluates several percentiles against one sorted copy.
func Percentiles(x []float64, ps []float64) []float64 {
	out := make([]float64, len(ps))
	if len(x) == 0 {
		for i := range out {
			out[i] = math.NaN()
		}
		return out
	}
	sorted := generic.Sort(x, cmp.Compare)
	for i, p := range ps {
		out[i] = interpolate(sorted, p)
	}
	return out
}

// interpolate reads the p-th percentile from an already sorted sample.
func interpolate(sorted []float64, p float64) float64 {
	if p < 0 {
		p = 0
	}
	if p > 1 {
		p = 1
	}
	pos := p * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo] + frac*(sorted[hi]-sorted[lo])
}

// Quartiles holds the quartile summary of a sample.
type Quartiles struct {
	Q1     float64
	Median float64
	Q3     float64
	IQR    float64
}

// SummarizeQuartiles computes the three quartiles and interquartile
// range from a single sorted copy of x.
func SummarizeQuartiles(x []float64) Quartiles {
	if len(x) == 0 {
		nan := math.NaN()
		return Quartiles{Q1: nan, Median: nan, Q3: nan, IQR: nan}
	}
	sorted := generic.Sort(x, cmp.Compare)
	q := Quartiles{
		Q1:     interpolate(sorted, 0.25),
		Median: interpolate(sorted, 0.5),
		Q3:     interpolate(sorted, 0.75),
	}
	q.IQR = q.Q3 - q.Q1
	return q
}

// Median returns the 50th percentile of x.
func Median(x []float64) float64 {
	return Percentile(x, 0.5)
}
