package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinearFitNoisyLine(t *testing.T) {
	x := []float64{0, 1, 2, 3, 4}
	y := []float64{1.1, 2.9, 5.2, 6.8, 9.1}

	res, err := LinearFit(x, y)
	require.NoError(t, err)

	assert.Equal(t, 5, res.N)
	assert.InDelta(t, 1.99, res.Slope, 1e-9)
	assert.InDelta(t, 1.04, res.Intercept, 1e-9)
	assert.Greater(t, res.R2, 0.99)
	assert.Greater(t, res.T, 10.0)
	assert.Less(t, res.P, 1e-3)
}

func TestLinearFitPerfectLine(t *testing.T) {
	x := []float64{0, 1, 2, 3}
	y := []float64{1, 3, 5, 7} // y = 2x + 1

	res, err := LinearFit(x, y)
	require.NoError(t, err)

	assert.InDelta(t, 2, res.Slope, 1e-12)
	assert.InDelta(t, 1, res.Intercept, 1e-12)
	assert.InDelta(t, 1, res.R2, 1e-12)
	assert.True(t, math.IsInf(res.T, 1))
	assert.Equal(t, 0.0, res.P)
}

func TestLinearFitNegativeSlope(t *testing.T) {
	x := []float64{0, 1, 2, 3, 4, 5}
	y := []float64{10.1, 8.0, 6.2, 3.9, 2.1, 0.0}

	res, err := LinearFit(x, y)
	require.NoError(t, err)
	assert.Less(t, res.Slope, 0.0)
	assert.Less(t, res.P, 0.01)
}

func TestLinearFitErrors(t *testing.T) {
	_, err := LinearFit([]float64{1, 2}, []float64{1})
	require.Error(t, err)

	_, err = LinearFit([]float64{1, 2}, []float64{1, 2})
	require.Error(t, err)

	// Constant x has no slope to estimate.
	_, err = LinearFit([]float64{3, 3, 3}, []float64{1, 2, 3})
	require.Error(t, err)
}
