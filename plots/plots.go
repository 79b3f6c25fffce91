// Package plots renders the pipeline's visualizations as PNG files:
// score histograms, box plots per categorical, practice-effect scatter
// with a fitted trend line, score density, QQ plots and category share
// charts. The images are side effects for a human; nothing downstream
// reads them.
package plots

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/nsofor/iqscores/dataset"
	"github.com/nsofor/iqscores/stats"
)

// Renderer writes plot images into one output directory.
type Renderer struct {
	Dir string
}

// NewRenderer creates the output directory if needed.
func NewRenderer(dir string) (*Renderer, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create plot directory: %w", err)
	}
	return &Renderer{Dir: dir}, nil
}

var palette = []color.NRGBA{
	{R: 0x1f, G: 0x77, B: 0xb4, A: 0xb0},
	{R: 0xff, G: 0x7f, B: 0x0e, A: 0xb0},
	{R: 0x2c, G: 0xa0, B: 0x2c, A: 0xb0},
	{R: 0xd6, G: 0x27, B: 0x28, A: 0xb0},
	{R: 0x94, G: 0x67, B: 0xbd, A: 0xb0},
}

// ScoreHistograms overlays score histograms for every level of a
// categorical column.
func (r *Renderer) ScoreHistograms(ds *dataset.Dataset, col string) (string, error) {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Score Histograms by %s", col)
	p.X.Label.Text = "Score"
	p.Y.Label.Text = "Count"

	for i, g := range ds.GroupBy(col) {
		h, err := plotter.NewHist(plotter.Values(g.Scores()), 16)
		if err != nil {
			return "", fmt.Errorf("histogram for %q: %w", g.Name, err)
		}
		h.FillColor = palette[i%len(palette)]
		p.Add(h)
	}
	return r.save(p, fileName("hist", col))
}

// BoxPlots draws one box per level of a categorical column.
func (r *Renderer) BoxPlots(ds *dataset.Dataset, col string) (string, error) {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Scores by %s", col)
	p.Y.Label.Text = "Score"

	groups := ds.GroupBy(col)
	names := make([]string, 0, len(groups))
	for i, g := range groups {
		b, err := plotter.NewBoxPlot(vg.Points(28), float64(i), plotter.Values(g.Scores()))
		if err != nil {
			return "", fmt.Errorf("box plot for %q: %w", g.Name, err)
		}
		p.Add(b)
		names = append(names, g.Name)
	}
	p.NominalX(names...)
	return r.save(p, fileName("box", col))
}

// PracticeEffect plots one author's scores against the days since that
// author's first test, with the fitted OLS trend line when a fit is
// possible.
func (r *Renderer) PracticeEffect(ds *dataset.Dataset, author string) (string, error) {
	g := ds.Where(dataset.ColAuthor, author)
	if len(g.Records) == 0 {
		return "", fmt.Errorf("no records for author %q", author)
	}

	pts := make(plotter.XYs, len(g.Records))
	xs := make([]float64, len(g.Records))
	ys := make([]float64, len(g.Records))
	minX, maxX := g.Records[0].AuthorTime, g.Records[0].AuthorTime
	for i, rec := range g.Records {
		pts[i] = plotter.XY{X: rec.AuthorTime, Y: rec.Score}
		xs[i] = rec.AuthorTime
		ys[i] = rec.Score
		if rec.AuthorTime < minX {
			minX = rec.AuthorTime
		}
		if rec.AuthorTime > maxX {
			maxX = rec.AuthorTime
		}
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Practice Effect for %s Tests", author)
	p.X.Label.Text = "Days Since First Test by Author"
	p.Y.Label.Text = "Score"
	p.Add(plotter.NewGrid())

	s, err := plotter.NewScatter(pts)
	if err != nil {
		return "", err
	}
	s.GlyphStyle.Color = palette[0]
	s.GlyphStyle.Radius = vg.Points(2.5)
	p.Add(s)

	if fit, err := stats.LinearFit(xs, ys); err == nil {
		line, err := plotter.NewLine(plotter.XYs{
			{X: minX, Y: fit.Intercept + fit.Slope*minX},
			{X: maxX, Y: fit.Intercept + fit.Slope*maxX},
		})
		if err != nil {
			return "", err
		}
		line.LineStyle.Color = color.NRGBA{R: 0xd6, G: 0x27, B: 0x28, A: 0xff}
		line.LineStyle.Width = vg.Points(2)
		p.Add(line)
		p.Legend.Add(fmt.Sprintf("fit: %.3f per day", fit.Slope), line)
	}

	return r.save(p, fileName("practice", author))
}

// CategoryShare draws the record count per level of a categorical
// column, the proportion view of the dataset composition.
func (r *Renderer) CategoryShare(ds *dataset.Dataset, col string) (string, error) {
	groups := ds.GroupBy(col)
	counts := make(plotter.Values, len(groups))
	names := make([]string, len(groups))
	for i, g := range groups {
		counts[i] = float64(len(g.Records))
		names[i] = g.Name
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Proportion of Tests by %s", col)
	p.Y.Label.Text = "Tests"

	bars, err := plotter.NewBarChart(counts, vg.Points(24))
	if err != nil {
		return "", err
	}
	bars.Color = palette[0]
	p.Add(bars)
	p.NominalX(names...)
	return r.save(p, fileName("share", col))
}

// RenderAll produces the standard set of plots for one run and returns
// the written paths. author selects the practice-effect subject.
func (r *Renderer) RenderAll(ds *dataset.Dataset, author string) ([]string, error) {
	var paths []string
	add := func(path string, err error) error {
		if err != nil {
			return err
		}
		paths = append(paths, path)
		return nil
	}

	if err := add(r.ScoreHistograms(ds, dataset.ColTimedUntimed)); err != nil {
		return paths, err
	}
	for _, col := range []string{dataset.ColAuthor, dataset.ColTestType, dataset.ColColdHot, dataset.ColTimedUntimed} {
		if err := add(r.BoxPlots(ds, col)); err != nil {
			return paths, err
		}
	}
	if err := add(r.PracticeEffect(ds, author)); err != nil {
		return paths, err
	}
	if err := add(r.ScoreDensity(ds)); err != nil {
		return paths, err
	}
	for _, level := range ds.Levels(dataset.ColTimedUntimed) {
		g := ds.Where(dataset.ColTimedUntimed, level)
		if err := add(r.QQPlot(g.Scores(), level)); err != nil {
			return paths, err
		}
	}
	for _, col := range []string{dataset.ColTestType, dataset.ColAuthor} {
		if err := add(r.CategoryShare(ds, col)); err != nil {
			return paths, err
		}
	}
	return paths, nil
}

func (r *Renderer) save(p *plot.Plot, name string) (string, error) {
	path := filepath.Join(r.Dir, name)
	if err := p.Save(8*vg.Inch, 5*vg.Inch, path); err != nil {
		return "", fmt.Errorf("save %s: %w", name, err)
	}
	return path, nil
}

func fileName(kind, label string) string {
	clean := strings.ToLower(label)
	clean = strings.Map(func(c rune) rune {
		switch {
		case c >= 'a' && c <= 'z', c >= '0' && c <= '9':
			return c
		default:
			return '_'
		}
	}, clean)
	return fmt.Sprintf("%s_%s.png", kind, clean)
}
