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

	"github.com/ajroetker/go-purefp/fp/contrib/reduce"
	"github.com/ajroetker/go-purefp/pkg/errors"
)

// RollingReduce applies fn to every length-window slice of x, producing
// len(x)−window+1 values. The window passed to fn aliases x and must
// not be mutated or retained. Any scalar statistic becomes a rolling
// one through this single higher-order entry point.
func RollingReduce(x []float64, window int, fn func([]float64) float64) ([]float64, error) {
	if window < 1 {
		return nil, errors.NewValueError("stats.RollingReduce", "window must be positive, got %d", window)
	}
	if window > len(x) {
		return []float64{}, nil
	}
	out := make([]float64, len(x)-window+1)
	for i := range out {
		out[i] = fn(x[i : i+window])
	}
	return out, nil
}

// RollingSum is RollingReduce over the sum reduction kernel.
func RollingSum(x []float64, window int) ([]float64, error) {
	return RollingReduce(x, window, reduce.Add[float64])
}

// RollingMin is RollingReduce over the minimum reduction kernel.
func RollingMin(x []float64, window int) ([]float64, error) {
	return RollingReduce(x, window, reduce.Min[float64])
}

// RollingMax is RollingReduce over the maximum reduction kernel.
func RollingMax(x []float64, window int) ([]float64, error) {
	return RollingReduce(x, window, reduce.Max[float64])
}

// RollingMean computes the mean of each window.
func RollingMean(x []float64, window int) ([]float64, error) {
	return RollingReduce(x, window, Mean)
}

// RollingVariance computes the population variance of each window.
func RollingVariance(x []float64, window int) ([]float64, error) {
	return RollingReduce(x, window, Variance)
}

// RollingStd computes the population standard deviation of each window.
func RollingStd(x []float64, window int) ([]float64, error) {
	return RollingReduce(x, window, func(w []float64) float64 {
		return math.Sqrt(Variance(w))
	})
}
