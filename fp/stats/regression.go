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
	"github.com/ajroetker/go-purefp/pkg/errors"
	"github.com/ajroetker/go-purefp/pkg/log"
)

// LinReg holds a fitted ordinary least squares line y = Slope*x +
// Intercept.
type LinReg struct {
	Slope     float64
	Intercept float64
	RSquared  float64
	StdErr    float64 // residual standard error, 0 for an exact fit
	N         int
}

// Fit performs simple linear regression of y on x. The normal
// equations need only the five sums Σx, Σy, Σxy, Σx², Σy², all of
// which come from the fused fold kernels, plus one composed pass for
// the residuals.
//
// Mismatched lengths are a caller error. Fewer than two samples, or x
// with zero variance, make the line undefined; the returned model then
// carries NaN coefficients rather than an error, matching the sentinel
// convention of the rest of the layer.
func Fit(x, y []float64) (*LinReg, error) {
	if len(x) != len(y) {
		return nil, errors.NewDimensionError("stats.Fit", len(x), len(y))
	}
	n := len(x)
	model := &LinReg{N: n}
	if n < 2 {
		nan := math.NaN()
		model.Slope, model.Intercept = nan, nan
		model.RSquared, model.StdErr = nan, nan
		return model, nil
	}

	fn := float64(n)
	sumX := reduce.Add(x)
	sumY := reduce.Add(y)
	sumXY := fold.Dot(x, y)
	sumXX := fold.SumSquares(x)
	sumYY := fold.SumSquares(y)

	denom := fn*sumXX - sumX*sumX
	if denom == 0 {
		nan := math.NaN()
		model.Slope, model.Intercept = nan, nan
		model.RSquared, model.StdErr = nan, nan
		return model, nil
	}
	model.Slope = (fn*sumXY - sumX*sumY) / denom
	model.Intercept = (sumY - model.Slope*sumX) / fn

	// Residuals by composition: ŷ = slope*x + intercept, then
	// resid = y − ŷ via an axpy with coefficient −1.
	pred := make([]float64, n)
	apply.Scale(x, model.Slope, pred)
	apply.Offset(pred, model.Intercept, pred)
	resid := make([]float64, n)
	apply.Axpy(-1, pred, y, resid)
	ssRes := fold.SumSquares(resid)

	ssTot := sumYY - sumY*sumY/fn
	if ssTot == 0 {
		// Constant y: the fit is exact whenever slope is 0.
		model.RSquared = 1
	} else {
		model.RSquared = 1 - ssRes/ssTot
	}
	if n > 2 {
		model.StdErr = math.Sqrt(ssRes / float64(n-2))
	}

	log.GetLogger().Debug("fitted linear regression",
		"samples", n,
		"slope", model.Slope,
		"intercept", model.Intercept,
		"r_squared", model.RSquared)
	return model, nil
}

// Predict evaluates the fitted line at x.
func (m *LinReg) Predict(x float64) float64 {
	return m.Slope*x + m.Intercept
}
