package stats

import (
	"errors"
	"fmt"
)

// RelativeRiskResult reports how much more likely an outcome is in the
// first group than in the second. RR > 1 means more likely in the first
// group, RR < 1 less likely.
type RelativeRiskResult struct {
	GroupA, GroupB string
	NA, NB         int
	RiskA, RiskB   float64
	RR             float64
}

// RelativeRisk computes the risk ratio of a binary outcome between the
// two levels of a binary condition. labels and outcomes are aligned
// per-record slices; labels must take exactly two distinct values.
func RelativeRisk(labels []string, outcomes []bool) (RelativeRiskResult, error) {
	if len(labels) == 0 || len(labels) != len(outcomes) {
		return RelativeRiskResult{}, errors.New("stats: labels and outcomes must be non-empty and aligned")
	}

	names, idx := levels(labels)
	if len(names) != 2 {
		return RelativeRiskResult{}, fmt.Errorf("stats: relative risk needs exactly two groups, got %d", len(names))
	}

	var totals [2]int
	var hits [2]int
	for i, l := range labels {
		g := idx[l]
		totals[g]++
		if outcomes[i] {
			hits[g]++
		}
	}

	riskA := float64(hits[0]) / float64(totals[0])
	riskB := float64(hits[1]) / float64(totals[1])
	if riskB == 0 {
		return RelativeRiskResult{}, fmt.Errorf("stats: outcome never occurs in group %q", names[1])
	}

	return RelativeRiskResult{
		GroupA: names[0],
		GroupB: names[1],
		NA:     totals[0],
		NB:     totals[1],
		RiskA:  riskA,
		RiskB:  riskB,
		RR:     riskA / riskB,
	}, nil
}
