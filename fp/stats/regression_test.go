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
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"

	"github.com/ajroetker/go-purefp/pkg/errors"
)

func TestFitNoiselessLine(t *testing.T) {
	x := []float64{0, 1, 2, 3, 4}
	y := []float64{1, 3, 5, 7, 9} // y = 2x + 1
	m, err := Fit(x, y)
	require.NoError(t, err)
	assert.InDelta(t, 2, m.Slope, 1e-12)
	assert.InDelta(t, 1, m.Intercept, 1e-12)
	assert.InDelta(t, 1, m.RSquared, 1e-12)
	assert.InDelta(t, 0, m.StdErr, 1e-9)
	assert.InDelta(t, 21, m.Predict(10), 1e-12)
}

func TestFitAgainstGonum(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	n := 400
	x := make([]float64, n)
	y := make([]float64, n)
	for i := range x {
		x[i] = float64(i) / 10
		y[i] = 1.5*x[i] - 4 + rng.NormFloat64()
	}
	m, err := Fit(x, y)
	require.NoError(t, err)
	alpha, beta := stat.LinearRegression(x, y, nil, false)
	assert.InDelta(t, beta, m.Slope, 1e-9)
	assert.InDelta(t, alpha, m.Intercept, 1e-9)
	assert.InDelta(t, stat.RSquared(x, y, nil, alpha, beta), m.RSquared, 1e-9)
}

func TestFitContractErrors(t *testing.T) {
	_, err := Fit([]float64{1, 2, 3}, []float64{1, 2})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrDimension))
}

func TestFitDegenerateInputs(t *testing.T) {
	m, err := Fit([]float64{1}, []float64{2})
	require.NoError(t, err)
	assert.True(t, math.IsNaN(m.Slope))
	assert.True(t, math.IsNaN(m.Intercept))

	// Vertical data: every x identical, slope undefined.
	m, err = Fit([]float64{3, 3, 3}, []float64{1, 2, 3})
	require.NoError(t, err)
	assert.True(t, math.IsNaN(m.Slope))
	assert.True(t, math.IsNaN(m.RSquared))
}

func TestFitConstantY(t *testing.T) {
	m, err := Fit([]float64{1, 2, 3, 4}, []float64{5, 5, 5, 5})
	require.NoError(t, err)
	assert.InDelta(t, 0, m.Slope, 1e-12)
	assert.InDelta(t, 5, m.Intercept, 1e-12)
	assert.InDelta(t, 1, m.RSquared, 1e-12)
}
