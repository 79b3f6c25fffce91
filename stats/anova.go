package stats

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/nsofor/iqscores/dataset"
)

// ANOVAResult reports a one-way analysis of variance of scores across
// the groups of one categorical column.
type ANOVAResult struct {
	F         float64
	P         float64
	DFBetween int
	DFWithin  int
	Means     []GroupMean
}

// GroupMean pairs a group with its mean score, for context next to the
// omnibus result.
type GroupMean struct {
	Name  string
	Count int
	Mean  float64
}

// OneWayANOVA tests whether mean scores differ across groups. It needs
// at least two groups and more observations than groups.
func OneWayANOVA(groups []dataset.Group) (ANOVAResult, error) {
	if len(groups) < 2 {
		return ANOVAResult{}, errors.New("stats: anova needs at least two groups")
	}

	var total int
	var grandSum float64
	means := make([]GroupMean, len(groups))
	for i, g := range groups {
		xs := g.Scores()
		if len(xs) == 0 {
			return ANOVAResult{}, fmt.Errorf("stats: anova group %q is empty", g.Name)
		}
		m := stat.Mean(xs, nil)
		means[i] = GroupMean{Name: g.Name, Count: len(xs), Mean: m}
		total += len(xs)
		for _, x := range xs {
			grandSum += x
		}
	}
	k := len(groups)
	if total <= k {
		return ANOVAResult{}, errors.New("stats: anova needs more observations than groups")
	}
	grandMean := grandSum / float64(total)

	var ssBetween, ssWithin float64
	for i, g := range groups {
		m := means[i].Mean
		n := float64(means[i].Count)
		d := m - grandMean
		ssBetween += n * d * d
		for _, x := range g.Scores() {
			e := x - m
			ssWithin += e * e
		}
	}

	dfB := k - 1
	dfW := total - k
	if ssWithin == 0 {
		return ANOVAResult{}, errors.New("stats: anova has zero within-group variance")
	}
	f := (ssBetween / float64(dfB)) / (ssWithin / float64(dfW))
	p := distuv.F{D1: float64(dfB), D2: float64(dfW)}.Survival(f)

	return ANOVAResult{F: f, P: p, DFBetween: dfB, DFWithin: dfW, Means: means}, nil
}
