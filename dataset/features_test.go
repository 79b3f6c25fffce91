package dataset

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeFeatures(t *testing.T) {
	in := csvBody(
		"2021-01-01,130,Cooijmans,Logical,Untimed,Cold",
		"2021-01-11,135,Cooijmans,Logical,Untimed,Cold",
		"2021-01-21,128,IQexams,Verbal,Timed,Hot",
		"2021-01-31,140,IQexams,Verbal,Timed,Hot",
	)
	ds, err := LoadReader(strings.NewReader(in))
	require.NoError(t, err)

	assert.Equal(t, 0.0, ds.Records[0].DaysSinceFirst)
	assert.Equal(t, 10.0, ds.Records[1].DaysSinceFirst)
	assert.Equal(t, 30.0, ds.Records[3].DaysSinceFirst)

	// The author clock restarts at each author's first test.
	assert.Equal(t, 0.0, ds.Records[0].AuthorTime)
	assert.Equal(t, 10.0, ds.Records[1].AuthorTime)
	assert.Equal(t, 0.0, ds.Records[2].AuthorTime)
	assert.Equal(t, 10.0, ds.Records[3].AuthorTime)
}

func TestRecentDerivedAtMidpoint(t *testing.T) {
	in := csvBody(
		"2021-01-01,130,Cooijmans,Logical,Untimed,Cold",
		"2021-01-02,131,Cooijmans,Logical,Untimed,Cold",
		"2021-01-03,132,Cooijmans,Logical,Untimed,Cold",
		"2021-01-04,133,Cooijmans,Logical,Untimed,Cold",
	)
	ds, err := LoadReader(strings.NewReader(in))
	require.NoError(t, err)

	assert.Equal(t, "Early", ds.Records[0].Recent)
	assert.Equal(t, "Early", ds.Records[1].Recent)
	assert.Equal(t, "Recent", ds.Records[2].Recent)
	assert.Equal(t, "Recent", ds.Records[3].Recent)
}

func TestExplicitRecentColumnWins(t *testing.T) {
	in := "Date,Score,Author,TestType,TimedUntimed,ColdHot,Recent\n" +
		"2021-01-01,130,Cooijmans,Logical,Untimed,Cold,Recent\n" +
		"2021-01-02,131,Cooijmans,Logical,Untimed,Cold,Early\n"
	ds, err := LoadReader(strings.NewReader(in))
	require.NoError(t, err)

	assert.Equal(t, "Recent", ds.Records[0].Recent)
	assert.Equal(t, "Early", ds.Records[1].Recent)
}

func TestGroupByFirstAppearanceOrder(t *testing.T) {
	ds, err := Load(filepath.Join("testdata", "scores.csv"))
	require.NoError(t, err)

	groups := ds.GroupBy(ColAuthor)
	names := make([]string, len(groups))
	total := 0
	for i, g := range groups {
		names[i] = g.Name
		total += len(g.Records)
	}

	assert.Equal(t, []string{"Cooijmans", "IQexams", "Betts"}, names)
	// Per-group counts sum to the dataset row count.
	assert.Equal(t, ds.Len(), total)
}

func TestGroupByUnknownColumn(t *testing.T) {
	ds, err := Load(filepath.Join("testdata", "scores.csv"))
	require.NoError(t, err)
	assert.Nil(t, ds.GroupBy("NoSuchColumn"))
}

func TestWhereAndLevels(t *testing.T) {
	ds, err := Load(filepath.Join("testdata", "scores.csv"))
	require.NoError(t, err)

	timed := ds.Where(ColTimedUntimed, "Timed")
	untimed := ds.Where(ColTimedUntimed, "Untimed")
	assert.Equal(t, ds.Len(), len(timed.Records)+len(untimed.Records))
	for _, r := range timed.Records {
		assert.Equal(t, "Timed", r.TimedUntimed)
	}

	assert.Equal(t, []string{"Untimed", "Timed"}, ds.Levels(ColTimedUntimed))
	assert.Equal(t, []string{"Logical", "Numerical", "Verbal"}, ds.Levels(ColTestType))
}

func TestLabelsAndAbove(t *testing.T) {
	in := csvBody(
		"2021-01-01,130,Cooijmans,Logical,Untimed,Cold",
		"2021-01-02,145,IQexams,Verbal,Timed,Hot",
	)
	ds, err := LoadReader(strings.NewReader(in))
	require.NoError(t, err)

	assert.Equal(t, []string{"Cold", "Hot"}, ds.Labels(ColColdHot))
	assert.Equal(t, []bool{false, true}, ds.Above(140))
}
