package stats

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Alternative selects the alternative hypothesis of a two-sample test.
type Alternative int

const (
	// TwoSided tests whether the two means differ.
	TwoSided Alternative = iota
	// Greater tests whether the first sample's mean is larger.
	Greater
)

func (a Alternative) String() string {
	if a == Greater {
		return "greater"
	}
	return "two-sided"
}

// TTestResult reports a two-sample comparison of means.
type TTestResult struct {
	NA, NB         int
	MeanA, MeanB   float64
	MeanDiff       float64 // MeanA - MeanB
	T              float64
	DF             float64 // Welch–Satterthwaite degrees of freedom
	P              float64
	Alt            Alternative
}

var errTooFew = errors.New("stats: need at least two observations per sample")

// WelchTTest runs an independent two-sample t-test without assuming
// equal variances.
func WelchTTest(a, b []float64, alt Alternative) (TTestResult, error) {
	if len(a) < 2 || len(b) < 2 {
		return TTestResult{}, errTooFew
	}
	meanA, varA := stat.MeanVariance(a, nil)
	meanB, varB := stat.MeanVariance(b, nil)
	return welch(meanA, varA, float64(len(a)), meanB, varB, float64(len(b)), len(a), len(b), alt)
}

// WeightedWelchTTest is the weighted variant: means and variances use
// the sample weights, and standard errors use each sample's effective
// size (sum w)^2 / (sum w^2).
func WeightedWelchTTest(a, wa, b, wb []float64, alt Alternative) (TTestResult, error) {
	if len(a) < 2 || len(b) < 2 {
		return TTestResult{}, errTooFew
	}
	if len(a) != len(wa) || len(b) != len(wb) {
		return TTestResult{}, errors.New("stats: weights do not align with samples")
	}
	meanA, varA := stat.MeanVariance(a, wa)
	meanB, varB := stat.MeanVariance(b, wb)
	return welch(meanA, varA, effectiveSize(wa), meanB, varB, effectiveSize(wb), len(a), len(b), alt)
}

func welch(meanA, varA, nA, meanB, varB, nB float64, countA, countB int, alt Alternative) (TTestResult, error) {
	seA := varA / nA
	seB := varB / nB
	se2 := seA + seB
	if se2 == 0 {
		return TTestResult{}, errors.New("stats: zero variance in both samples")
	}

	t := (meanA - meanB) / math.Sqrt(se2)
	df := se2 * se2 / (seA*seA/(nA-1) + seB*seB/(nB-1))

	dist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}
	var p float64
	switch alt {
	case Greater:
		p = 1 - dist.CDF(t)
	default:
		p = 2 * (1 - dist.CDF(math.Abs(t)))
	}

	return TTestResult{
		NA:       countA,
		NB:       countB,
		MeanA:    meanA,
		MeanB:    meanB,
		MeanDiff: meanA - meanB,
		T:        t,
		DF:       df,
		P:        p,
		Alt:      alt,
	}, nil
}

func effectiveSize(w []float64) float64 {
	var sum, sumSq float64
	for _, v := range w {
		sum += v
		sumSq += v * v
	}
	return sum * sum / sumSq
}
