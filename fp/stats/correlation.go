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

	"github.com/ajroetker/go-purefp/fp/contrib/fold"
	"github.com/ajroetker/go-purefp/fp/contrib/reduce"
)

// Covariance returns the population covariance E[xy] − E[x]E[y] over
// the shorter of the two lengths. An empty pair yields NaN; a single
// sample yields 0.
func Covariance(x, y []float64) float64 {
	n := min(len(x), len(y))
	if n == 0 {
		return math.NaN()
	}
	fn := float64(n)
	sumXY := fold.Dot(x[:n], y[:n])
	meanX := reduce.Add(x[:n]) / fn
	meanY := reduce.Add(y[:n]) / fn
	return sumXY/fn - meanX*meanY
}

// Correlation returns the Pearson correlation coefficient over the
// shorter of the two lengths. If either series has zero variance the
// coefficient is undefined and NaN is returned.
func Correlation(x, y []float64) float64 {
	n := min(len(x), len(y))
	if n == 0 {
		return math.NaN()
	}
	sx := StdDev(x[:n])
	sy := StdDev(y[:n])
	if sx == 0 || sy == 0 {
		return math.NaN()
	}
	return Covariance(x[:n], y[:n]) / (sx * sy)
}
