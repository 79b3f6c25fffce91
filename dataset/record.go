package dataset

import "time"

// Column names expected in scores.csv.
const (
	ColDate         = "Date"
	ColScore        = "Score"
	ColAuthor       = "Author"
	ColTestType     = "TestType"
	ColTimedUntimed = "TimedUntimed"
	ColColdHot      = "ColdHot"
	ColRecent       = "Recent"
	ColWeight       = "Weight"
)

// RequiredColumns must all be present in the input file header.
var RequiredColumns = []string{
	ColDate, ColScore, ColAuthor, ColTestType, ColTimedUntimed, ColColdHot,
}

// Categoricals lists the columns records can be grouped by.
var Categoricals = []string{
	ColAuthor, ColTestType, ColTimedUntimed, ColColdHot, ColRecent,
}

// Scores must fall inside a plausible IQ test scale.
const (
	MinScore = 50
	MaxScore = 250
)

// ScoreRecord is a single IQ test administration: one row of scores.csv.
type ScoreRecord struct {
	Seq          int // 1-based position in the source file
	Date         time.Time
	Score        float64
	Author       string
	TestType     string
	TimedUntimed string // "Timed" or "Untimed"
	ColdHot      string // "Cold" or "Hot"
	Recent       string // "Recent" or "Early"
	Weight       float64

	// Derived time features, in days.
	DaysSinceFirst float64 // days since the earliest test in the file
	AuthorTime     float64 // days since this author's first test
}

// Categorical returns the record's value for the named grouping column.
func (r ScoreRecord) Categorical(col string) (string, bool) {
	switch col {
	case ColAuthor:
		return r.Author, true
	case ColTestType:
		return r.TestType, true
	case ColTimedUntimed:
		return r.TimedUntimed, true
	case ColColdHot:
		return r.ColdHot, true
	case ColRecent:
		return r.Recent, true
	}
	return "", false
}

// Group is a partition of records sharing one categorical value.
type Group struct {
	Name    string
	Records []ScoreRecord
}

// Scores returns the group's score values in record order.
func (g Group) Scores() []float64 {
	xs := make([]float64, len(g.Records))
	for i, r := range g.Records {
		xs[i] = r.Score
	}
	return xs
}

// Weights returns the group's sample weights in record order.
func (g Group) Weights() []float64 {
	ws := make([]float64, len(g.Records))
	for i, r := range g.Records {
		ws[i] = r.Weight
	}
	return ws
}
