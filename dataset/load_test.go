package dataset

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validHeader = "Date,Score,Author,TestType,TimedUntimed,ColdHot"

func csvBody(rows ...string) string {
	return validHeader + "\n" + strings.Join(rows, "\n") + "\n"
}

func TestLoadFromFile(t *testing.T) {
	ds, err := Load(filepath.Join("testdata", "scores.csv"))
	require.NoError(t, err)

	assert.Equal(t, 12, ds.Len())
	assert.Equal(t, 0, ds.Dropped)
	assert.True(t, ds.HasWeights())

	first := ds.Records[0]
	assert.Equal(t, 1, first.Seq)
	assert.Equal(t, 135.0, first.Score)
	assert.Equal(t, "Cooijmans", first.Author)
	assert.Equal(t, "Logical", first.TestType)
	assert.Equal(t, "Untimed", first.TimedUntimed)
	assert.Equal(t, "Cold", first.ColdHot)
	assert.Equal(t, 1.0, first.Weight)
	assert.Equal(t, "2021-01-05", first.Date.Format("2006-01-02"))

	// Second row carries an explicit weight.
	assert.Equal(t, 1.5, ds.Records[1].Weight)
}

func TestLoadIsDeterministic(t *testing.T) {
	path := filepath.Join("testdata", "scores.csv")
	a, err := Load(path)
	require.NoError(t, err)
	b, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, a.Records, b.Records)
	assert.Equal(t, a.Columns, b.Columns)
}

func TestLoadMissingColumnIsSchemaError(t *testing.T) {
	in := "Date,Score,TestType,TimedUntimed,ColdHot\n2021-01-05,135,Logical,Untimed,Cold\n"
	_, err := LoadReader(strings.NewReader(in))

	var schemaErr *SchemaError
	require.ErrorAs(t, err, &schemaErr)
	assert.Equal(t, []string{ColAuthor}, schemaErr.Missing)
}

func TestLoadHeaderOnlyIsNoData(t *testing.T) {
	_, err := LoadReader(strings.NewReader(validHeader + "\n"))
	require.ErrorIs(t, err, ErrNoData)
}

func TestLoadAllRowsMalformedIsNoData(t *testing.T) {
	in := csvBody("not-a-date,135,Cooijmans,Logical,Untimed,Cold")
	_, err := LoadReader(strings.NewReader(in))
	require.ErrorIs(t, err, ErrNoData)
}

func TestLoadDropsMalformedRows(t *testing.T) {
	in := csvBody(
		"2021-01-05,135,Cooijmans,Logical,Untimed,Cold",
		"2021-02-10,abc,Cooijmans,Logical,Untimed,Cold", // non-numeric score
		"bogus,140,Cooijmans,Logical,Untimed,Cold",      // unparsable date
		"2021-03-02,999,Cooijmans,Logical,Untimed,Cold", // outside plausible range
		"2021-04-11,142,,Logical,Untimed,Cold",          // missing author
		"2021-05-07,128,IQexams,Verbal,Timed,Hot",
	)
	ds, err := LoadReader(strings.NewReader(in))
	require.NoError(t, err)

	assert.Equal(t, 2, ds.Len())
	assert.Equal(t, 4, ds.Dropped)
	assert.Equal(t, []float64{135, 128}, ds.Scores())
}

func TestLoadInvalidWeightDropsRow(t *testing.T) {
	in := "Date,Score,Author,TestType,TimedUntimed,ColdHot,Weight\n" +
		"2021-01-05,135,Cooijmans,Logical,Untimed,Cold,-2\n" +
		"2021-02-10,140,Cooijmans,Logical,Untimed,Cold,1.5\n"
	ds, err := LoadReader(strings.NewReader(in))
	require.NoError(t, err)

	assert.Equal(t, 1, ds.Len())
	assert.Equal(t, 1, ds.Dropped)
	assert.Equal(t, 1.5, ds.Records[0].Weight)
}

func TestLoadWithoutWeightColumn(t *testing.T) {
	in := csvBody(
		"2021-01-05,135,Cooijmans,Logical,Untimed,Cold",
		"2021-02-10,140,IQexams,Verbal,Timed,Hot",
	)
	ds, err := LoadReader(strings.NewReader(in))
	require.NoError(t, err)

	assert.False(t, ds.HasWeights())
	assert.Equal(t, []float64{1, 1}, ds.Weights())
}

func TestLoadIgnoresExtraColumns(t *testing.T) {
	in := "Date,Score,Author,TestType,TimedUntimed,ColdHot,AuthorCode,counter\n" +
		"2021-01-05,135,Cooijmans,Logical,Untimed,Cold,3,1\n"
	ds, err := LoadReader(strings.NewReader(in))
	require.NoError(t, err)

	assert.Equal(t, 1, ds.Len())
	assert.Contains(t, ds.Columns, "AuthorCode")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join("testdata", "absent.csv"))
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrNoData))
}
