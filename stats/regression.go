package stats

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// RegressionResult reports an ordinary least squares fit of y on x.
type RegressionResult struct {
	N         int
	Slope     float64
	Intercept float64
	R2        float64
	T         float64 // t statistic of the slope against zero
	P         float64 // two-sided p-value of the slope
}

// MinRegressionN is the smallest sample an author needs before a
// practice-effect fit is attempted.
const MinRegressionN = 6

// LinearFit runs an OLS regression of y on x and tests the slope
// against zero.
func LinearFit(x, y []float64) (RegressionResult, error) {
	if len(x) != len(y) {
		return RegressionResult{}, errors.New("stats: x and y must align")
	}
	if len(x) < 3 {
		return RegressionResult{}, errors.New("stats: regression needs at least three observations")
	}

	alpha, beta := stat.LinearRegression(x, y, nil, false)
	if math.IsNaN(beta) {
		return RegressionResult{}, errors.New("stats: no variation in x")
	}
	r2 := stat.RSquared(x, y, nil, alpha, beta)

	meanX := stat.Mean(x, nil)
	var sse, sxx float64
	for i := range x {
		resid := y[i] - (alpha + beta*x[i])
		sse += resid * resid
		dx := x[i] - meanX
		sxx += dx * dx
	}
	if sxx == 0 {
		return RegressionResult{}, errors.New("stats: no variation in x")
	}

	n := len(x)
	res := RegressionResult{
		N:         n,
		Slope:     beta,
		Intercept: alpha,
		R2:        r2,
	}
	if sse == 0 {
		// Perfect fit: the slope is exact.
		res.T = math.Inf(sign(beta))
		res.P = 0
		return res, nil
	}

	se := math.Sqrt(sse / float64(n-2) / sxx)
	res.T = beta / se
	dist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: float64(n - 2)}
	res.P = 2 * (1 - dist.CDF(math.Abs(res.T)))
	return res, nil
}

func sign(x float64) int {
	if x < 0 {
		return -1
	}
	return 1
}
