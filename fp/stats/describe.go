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
	"math"

	"github.com/ajroetker/go-purefp/fp/contrib/apply"
	"github.com/ajroetker/go-purefp/fp/contrib/fold"
	"github.com/ajroetker/go-purefp/fp/contrib/reduce"
)

// Moments holds the raw power sums of a sample, the shared intermediate
// every descriptive statistic derives from. Computing them once and
// reusing them is the whole point of the composition layer.
type Moments struct {
	N          int
	Sum        float64
	SumSquares float64
	SumCubes   float64
	SumQuads   float64
}

// RawMoments computes the first four power sums of x in three fused
// passes: Σx by reduction, Σx² and Σx⁴ by self dot products, Σx³ by a
// dot of x with its elementwise square.
func RawMoments(x []float64) Moments {
	m := Moments{N: len(x)}
	if m.N == 0 {
		return m
	}
	sq := make([]float64, len(x))
	apply.Mul(x, x, sq)
	m.Sum = reduce.Add(x)
	m.SumSquares = reduce.Add(sq)
	m.SumCubes = fold.Dot(sq, x)
	m.SumQuads = fold.SumSquares(sq)
	return m
}

// Describe summarizes a sample through its first four standardized
// moments.
type Describe struct {
	N        int
	Min      float64
	Max      float64
	Mean     float64
	Variance float64
	StdDev   float64
	Skewness float64
	Kurtosis float64 // excess kurtosis; 0 for a normal distribution
}

// Summarize computes descriptive statistics for x from one set of raw
// moments. Variance is the population variance E[x²] − E[x]², which
// loses precision when the mean dwarfs the spread; the trade is a
// single pass over the data. Kurtosis is reported as excess, so a
// normal sample centers on zero.
//
// An empty sample yields NaN for every field except N; a constant
// sample yields zero variance and NaN shape moments.
func Summarize(x []float64) Describe {
	d := Describe{N: len(x)}
	if d.N == 0 {
		nan := math.NaN()
		d.Min, d.Max = nan, nan
		d.Mean, d.Variance, d.StdDev = nan, nan, nan
		d.Skewness, d.Kurtosis = nan, nan
		return d
	}

	m := RawMoments(x)
	n := float64(m.N)
	mean := m.Sum / n
	meanSq := m.SumSquares / n
	meanCube := m.SumCubes / n
	meanQuad := m.SumQuads / n

	variance := meanSq - mean*mean
	if variance < 0 {
		// Cancellation can push a tiny true variance below zero.
		variance = 0
	}

	d.Min = reduce.Min(x)
	d.Max = reduce.Max(x)
	d.Mean = mean
	d.Variance = variance
	d.StdDev = math.Sqrt(variance)

	// Central third and fourth moments from the raw power sums.
	m3 := meanCube - 3*mean*meanSq + 2*mean*mean*mean
	m4 := meanQuad - 4*mean*meanCube + 6*mean*mean*meanSq - 3*mean*mean*mean*mean
	if variance == 0 {
		d.Skewness = math.NaN()
		d.Kurtosis = math.NaN()
		return d
	}
	d.Skewness = m3 / (variance * d.StdDev)
	d.Kurtosis = m4/(variance*variance) - 3
	return d
}

// Mean returns the arithmetic mean of x, or NaN for an empty sample.
func Mean(x []float64) float64 {
	if len(x) == 0 {
		return math.NaN()
	}
	return reduce.Add(x) / float64(len(x))
}

// Variance returns the population variance of x, or NaN for an empty
// sample. Same single-pass formulation and precision trade as
// Summarize.
func Variance(x []float64) float64 {
	n := len(x)
	if n == 0 {
		return math.NaN()
	}
	mean := reduce.Add(x) / float64(n)
	v := fold.SumSquares(x)/float64(n) - mean*mean
	if v < 0 {
		v = 0
	}
	return v
}

// StdDev returns the population standard deviation of x.
func StdDev(x []float64) float64 {
	return math.Sqrt(Variance(x))
}
