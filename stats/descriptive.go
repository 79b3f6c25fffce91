// Package stats implements the descriptive and inferential statistics
// run over score datasets: grouped summaries, Welch t-tests (plain and
// weighted), one-way ANOVA, chi-squared independence with Cramér's V,
// relative risk of high scores, and practice-effect regression.
package stats

import (
	"errors"
	"fmt"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/nsofor/iqscores/dataset"
)

// ErrNoData is returned when a statistic is requested over an empty sample.
var ErrNoData = errors.New("stats: empty sample")

// Summary holds descriptive statistics for one sample of scores.
type Summary struct {
	Count  int
	Mean   float64
	Median float64
	StdDev float64 // sample standard deviation; 0 for a single observation
	Min    float64
	Max    float64
	Q1     float64
	Q3     float64
}

// Describe computes descriptive statistics over xs.
func Describe(xs []float64) (Summary, error) {
	if len(xs) == 0 {
		return Summary{}, ErrNoData
	}
	sorted := make([]float64, len(xs))
	copy(sorted, xs)
	sort.Float64s(sorted)

	s := Summary{
		Count:  len(xs),
		Mean:   stat.Mean(xs, nil),
		Median: stat.Quantile(0.5, stat.Empirical, sorted, nil),
		Min:    sorted[0],
		Max:    sorted[len(sorted)-1],
		Q1:     stat.Quantile(0.25, stat.Empirical, sorted, nil),
		Q3:     stat.Quantile(0.75, stat.Empirical, sorted, nil),
	}
	if len(xs) > 1 {
		s.StdDev = stat.StdDev(xs, nil)
	}
	return s, nil
}

// GroupSummary is the descriptive summary of one categorical partition.
type GroupSummary struct {
	Name string
	Summary
}

// GroupDescribe summarizes every group. Group order is preserved, so the
// output follows first-appearance order of the categorical value.
func GroupDescribe(groups []dataset.Group) ([]GroupSummary, error) {
	if len(groups) == 0 {
		return nil, ErrNoData
	}
	out := make([]GroupSummary, 0, len(groups))
	for _, g := range groups {
		s, err := Describe(g.Scores())
		if err != nil {
			return nil, fmt.Errorf("group %q: %w", g.Name, err)
		}
		out = append(out, GroupSummary{Name: g.Name, Summary: s})
	}
	return out, nil
}
