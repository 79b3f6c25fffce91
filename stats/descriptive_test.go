package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nsofor/iqscores/dataset"
)

func scoreGroup(name string, xs ...float64) dataset.Group {
	g := dataset.Group{Name: name}
	for i, x := range xs {
		g.Records = append(g.Records, dataset.ScoreRecord{Seq: i + 1, Score: x, Weight: 1})
	}
	return g
}

func TestDescribe(t *testing.T) {
	s, err := Describe([]float64{100, 110, 105})
	require.NoError(t, err)

	assert.Equal(t, 3, s.Count)
	assert.InDelta(t, 105, s.Mean, 1e-12)
	assert.InDelta(t, 105, s.Median, 1e-12)
	assert.InDelta(t, 5, s.StdDev, 1e-12)
	assert.Equal(t, 100.0, s.Min)
	assert.Equal(t, 110.0, s.Max)
	assert.Equal(t, 100.0, s.Q1)
	assert.Equal(t, 110.0, s.Q3)
}

func TestDescribeSingleObservation(t *testing.T) {
	s, err := Describe([]float64{120})
	require.NoError(t, err)

	assert.Equal(t, 1, s.Count)
	assert.Equal(t, 120.0, s.Mean)
	assert.Equal(t, 0.0, s.StdDev)
}

func TestDescribeEmpty(t *testing.T) {
	_, err := Describe(nil)
	require.ErrorIs(t, err, ErrNoData)
}

func TestGroupDescribeMatchesDirectRecomputation(t *testing.T) {
	a := scoreGroup("A", 100, 110, 105)
	b := scoreGroup("B", 90, 95, 92)

	summaries, err := GroupDescribe([]dataset.Group{a, b})
	require.NoError(t, err)
	require.Len(t, summaries, 2)

	assert.Equal(t, "A", summaries[0].Name)
	assert.Equal(t, "B", summaries[1].Name)
	assert.Equal(t, 6, summaries[0].Count+summaries[1].Count)

	for i, g := range []dataset.Group{a, b} {
		direct, err := Describe(g.Scores())
		require.NoError(t, err)
		assert.Equal(t, direct, summaries[i].Summary)
	}
}

func TestGroupDescribeEmptyGroups(t *testing.T) {
	_, err := GroupDescribe(nil)
	require.ErrorIs(t, err, ErrNoData)

	_, err = GroupDescribe([]dataset.Group{{Name: "empty"}})
	require.Error(t, err)
}
