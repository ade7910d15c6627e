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
	"github.com/ajroetker/go-purefp/fp/contrib/fold"
	"github.com/ajroetker/go-purefp/pkg/errors"
)

// SMA computes the simple moving average of x with the given window,
// producing len(x)−window+1 values. This is one of the documented
// sliding specializations: the window sum is carried incrementally
// instead of recomputed, so the whole series costs O(n).
func SMA(x []float64, window int) ([]float64, error) {
	if window < 1 {
		return nil, errors.NewValueError("stats.SMA", "window must be positive, got %d", window)
	}
	if window > len(x) {
		return []float64{}, nil
	}
	out := make([]float64, len(x)-window+1)
	w := float64(window)
	var sum float64
	for _, v := range x[:window] {
		sum += v
	}
	out[0] = sum / w
	for i := window; i < len(x); i++ {
		sum += x[i] - x[i-window]
		out[i-window+1] = sum / w
	}
	return out, nil
}

// EMA computes the exponential moving average of x with smoothing
// α = 2/(window+1), seeded from the first sample. The output has the
// same length as x.
func EMA(x []float64, window int) ([]float64, error) {
	if window < 1 {
		return nil, errors.NewValueError("stats.EMA", "window must be positive, got %d", window)
	}
	out := make([]float64, len(x))
	if len(x) == 0 {
		return out, nil
	}
	alpha := 2 / (float64(window) + 1)
	out[0] = x[0]
	for i := 1; i < len(x); i++ {
		out[i] = alpha*x[i] + (1-alpha)*out[i-1]
	}
	return out, nil
}

// WMA computes the linearly weighted moving average: within each
// window the newest sample has weight window, the oldest weight 1.
// Each window is a dot product against one precomputed weight vector,
// so the kernel tier does all the arithmetic.
func WMA(x []float64, window int) ([]float64, error) {
	if window < 1 {
		return nil, errors.NewValueError("stats.WMA", "window must be positive, got %d", window)
	}
	if window > len(x) {
		return []float64{}, nil
	}
	weights := make([]float64, window)
	for i := range weights {
		weights[i] = float64(i + 1)
	}
	denom := float64(window) * float64(window+1) / 2

	out := make([]float64, len(x)-window+1)
	for i := range out {
		out[i] = fold.Dot(x[i:i+window], weights) / denom
	}
	return out, nil
}
