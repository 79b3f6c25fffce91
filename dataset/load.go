package dataset

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// ErrNoData is returned when the input contains no usable score records.
var ErrNoData = errors.New("dataset: no score records")

// SchemaError reports required columns missing from the input header.
type SchemaError struct {
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("dataset: missing required columns: %s", strings.Join(e.Missing, ", "))
}

// Accepted layouts for the Date column.
var dateLayouts = []string{"2006-01-02", "2006/01/02", "01/02/2006"}

// Dataset is the read-only collection of score records for one run.
type Dataset struct {
	Records []ScoreRecord
	Dropped int      // malformed rows skipped during load
	Columns []string // header of the source file

	weighted bool // Weight column present in the source
}

// Load reads score records from the CSV file at path.
func Load(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open scores file: %w", err)
	}
	defer f.Close()
	return LoadReader(f)
}

// LoadReader reads score records from CSV data on r. The header must
// contain every column in RequiredColumns; rows whose essential fields
// do not parse are dropped and counted.
func LoadReader(r io.Reader) (*Dataset, error) {
	df := dataframe.ReadCSV(r,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
	)
	if df.Err != nil {
		if strings.Contains(df.Err.Error(), "empty DataFrame") {
			return nil, ErrNoData
		}
		return nil, fmt.Errorf("read scores csv: %w", df.Err)
	}

	names := df.Names()
	var missing []string
	for _, want := range RequiredColumns {
		if !containsColumn(names, want) {
			missing = append(missing, want)
		}
	}
	if len(missing) > 0 {
		return nil, &SchemaError{Missing: missing}
	}

	rows := df.Records()
	idx := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		idx[name] = i
	}
	_, hasWeight := idx[ColWeight]

	records := make([]ScoreRecord, 0, df.Nrow())
	dropped := 0
	for i, row := range rows[1:] {
		rec, err := parseRow(row, idx, len(records)+1)
		if err != nil {
			dropped++
			log.Printf("Skipping row %d: %v", i+2, err)
			continue
		}
		records = append(records, rec)
	}
	if len(records) == 0 {
		if dropped > 0 {
			return nil, fmt.Errorf("%w (all %d rows malformed)", ErrNoData, dropped)
		}
		return nil, ErrNoData
	}

	deriveFeatures(records)
	return &Dataset{
		Records:  records,
		Dropped:  dropped,
		Columns:  names,
		weighted: hasWeight,
	}, nil
}

func parseRow(row []string, idx map[string]int, seq int) (ScoreRecord, error) {
	field := func(col string) string {
		i, ok := idx[col]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	score, err := strconv.ParseFloat(field(ColScore), 64)
	if err != nil {
		return ScoreRecord{}, fmt.Errorf("score %q is not numeric", field(ColScore))
	}
	if score < MinScore || score > MaxScore {
		return ScoreRecord{}, fmt.Errorf("score %.1f outside plausible range [%d, %d]", score, MinScore, MaxScore)
	}

	date, err := parseDate(field(ColDate))
	if err != nil {
		return ScoreRecord{}, err
	}

	rec := ScoreRecord{
		Seq:          seq,
		Date:         date,
		Score:        score,
		Author:       field(ColAuthor),
		TestType:     field(ColTestType),
		TimedUntimed: field(ColTimedUntimed),
		ColdHot:      field(ColColdHot),
		Recent:       field(ColRecent),
		Weight:       1,
	}
	for _, v := range []string{rec.Author, rec.TestType, rec.TimedUntimed, rec.ColdHot} {
		if v == "" {
			return ScoreRecord{}, errors.New("missing categorical value")
		}
	}

	if w := field(ColWeight); w != "" {
		weight, err := strconv.ParseFloat(w, 64)
		if err != nil || weight <= 0 {
			return ScoreRecord{}, fmt.Errorf("weight %q is not a positive number", w)
		}
		rec.Weight = weight
	}
	return rec, nil
}

func parseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("date %q is not parseable", s)
}

func containsColumn(names []string, want string) bool {
	for _, n := range names {
		if n == want {
			return true
		}
	}
	return false
}
