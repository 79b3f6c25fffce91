package stats

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// ChiSquareResult reports a test of independence between two
// categorical columns, with Cramér's V as the association strength
// (0 = none, 1 = perfect).
type ChiSquareResult struct {
	Chi2     float64
	DF       int
	P        float64
	CramersV float64
	Rows     []string // levels of the first column, first-appearance order
	Cols     []string // levels of the second column, first-appearance order
	Table    [][]int  // observed contingency counts, [row][col]
}

// ChiSquareIndependence builds the contingency table of two aligned
// label slices and runs Pearson's chi-squared test.
func ChiSquareIndependence(a, b []string) (ChiSquareResult, error) {
	if len(a) == 0 || len(a) != len(b) {
		return ChiSquareResult{}, errors.New("stats: label slices must be non-empty and aligned")
	}

	rows, rowIdx := levels(a)
	cols, colIdx := levels(b)
	if len(rows) < 2 || len(cols) < 2 {
		return ChiSquareResult{}, errors.New("stats: both columns need at least two levels")
	}

	table := make([][]int, len(rows))
	for i := range table {
		table[i] = make([]int, len(cols))
	}
	for i := range a {
		table[rowIdx[a[i]]][colIdx[b[i]]]++
	}

	rowTotals := make([]float64, len(rows))
	colTotals := make([]float64, len(cols))
	n := float64(len(a))
	for i := range rows {
		for j := range cols {
			rowTotals[i] += float64(table[i][j])
			colTotals[j] += float64(table[i][j])
		}
	}

	var chi2 float64
	for i := range rows {
		for j := range cols {
			expected := rowTotals[i] * colTotals[j] / n
			if expected == 0 {
				continue
			}
			d := float64(table[i][j]) - expected
			chi2 += d * d / expected
		}
	}

	df := (len(rows) - 1) * (len(cols) - 1)
	p := distuv.ChiSquared{K: float64(df)}.Survival(chi2)
	v := math.Sqrt(chi2 / n / float64(min(len(rows)-1, len(cols)-1)))

	return ChiSquareResult{
		Chi2:     chi2,
		DF:       df,
		P:        p,
		CramersV: v,
		Rows:     rows,
		Cols:     cols,
		Table:    table,
	}, nil
}

func levels(labels []string) ([]string, map[string]int) {
	idx := make(map[string]int)
	var out []string
	for _, l := range labels {
		if _, ok := idx[l]; !ok {
			idx[l] = len(out)
			out = append(out, l)
		}
	}
	return out, idx
}
