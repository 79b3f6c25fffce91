package dataset

// deriveFeatures fills in the time-based features and the recency label
// for records that did not carry an explicit Recent column value.
func deriveFeatures(records []ScoreRecord) {
	first := records[0].Date
	authorFirst := make(map[string]int) // author -> index of earliest record
	for i, r := range records {
		if r.Date.Before(first) {
			first = r.Date
		}
		if j, ok := authorFirst[r.Author]; !ok || r.Date.Before(records[j].Date) {
			authorFirst[r.Author] = i
		}
	}

	half := len(records) / 2
	for i := range records {
		r := &records[i]
		r.DaysSinceFirst = r.Date.Sub(first).Hours() / 24
		r.AuthorTime = r.Date.Sub(records[authorFirst[r.Author]].Date).Hours() / 24
		if r.Recent == "" {
			// Second half of the file counts as recent, mirroring the
			// midpoint split on the running test counter.
			if i >= half {
				r.Recent = "Recent"
			} else {
				r.Recent = "Early"
			}
		}
	}
}

// Len returns the number of usable records.
func (d *Dataset) Len() int { return len(d.Records) }

// HasWeights reports whether the source file carried a Weight column.
func (d *Dataset) HasWeights() bool { return d.weighted }

// Scores returns all score values in record order.
func (d *Dataset) Scores() []float64 {
	xs := make([]float64, len(d.Records))
	for i, r := range d.Records {
		xs[i] = r.Score
	}
	return xs
}

// Weights returns all sample weights in record order.
func (d *Dataset) Weights() []float64 {
	ws := make([]float64, len(d.Records))
	for i, r := range d.Records {
		ws[i] = r.Weight
	}
	return ws
}

// Levels returns the distinct values of a categorical column in
// first-appearance order.
func (d *Dataset) Levels(col string) []string {
	seen := make(map[string]bool)
	var levels []string
	for _, r := range d.Records {
		v, ok := r.Categorical(col)
		if !ok {
			return nil
		}
		if !seen[v] {
			seen[v] = true
			levels = append(levels, v)
		}
	}
	return levels
}

// Labels returns the per-record values of a categorical column.
func (d *Dataset) Labels(col string) []string {
	labels := make([]string, len(d.Records))
	for i, r := range d.Records {
		labels[i], _ = r.Categorical(col)
	}
	return labels
}

// GroupBy partitions records by a categorical column. Groups appear in
// first-appearance order of their value in the source file.
func (d *Dataset) GroupBy(col string) []Group {
	index := make(map[string]int)
	var groups []Group
	for _, r := range d.Records {
		v, ok := r.Categorical(col)
		if !ok {
			return nil
		}
		i, ok := index[v]
		if !ok {
			i = len(groups)
			index[v] = i
			groups = append(groups, Group{Name: v})
		}
		groups[i].Records = append(groups[i].Records, r)
	}
	return groups
}

// Where returns the group of records whose column equals value.
func (d *Dataset) Where(col, value string) Group {
	g := Group{Name: value}
	for _, r := range d.Records {
		if v, ok := r.Categorical(col); ok && v == value {
			g.Records = append(g.Records, r)
		}
	}
	return g
}

// Above returns per-record indicators for scores strictly above the
// threshold, aligned with Labels output.
func (d *Dataset) Above(threshold float64) []bool {
	out := make([]bool, len(d.Records))
	for i, r := range d.Records {
		out[i] = r.Score > threshold
	}
	return out
}
