package plots

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/nsofor/iqscores/dataset"
)

const densityGridPoints = 200

// ScoreDensity draws a Gaussian kernel density estimate of all scores,
// with vertical markers at the mean and median.
func (r *Renderer) ScoreDensity(ds *dataset.Dataset) (string, error) {
	xs := ds.Scores()
	if len(xs) < 2 {
		return "", errors.New("density needs at least two scores")
	}
	mean, sd := stat.Mean(xs, nil), stat.StdDev(xs, nil)
	if sd == 0 {
		return "", errors.New("density needs score variation")
	}

	// Silverman's rule of thumb.
	h := 1.06 * sd * math.Pow(float64(len(xs)), -0.2)

	sorted := make([]float64, len(xs))
	copy(sorted, xs)
	sort.Float64s(sorted)
	lo := sorted[0] - 3*h
	hi := sorted[len(sorted)-1] + 3*h

	curve := make(plotter.XYs, densityGridPoints)
	maxDensity := 0.0
	step := (hi - lo) / float64(densityGridPoints-1)
	norm := distuv.Normal{Mu: 0, Sigma: 1}
	for i := range curve {
		x := lo + float64(i)*step
		var d float64
		for _, v := range xs {
			d += norm.Prob((x - v) / h)
		}
		d /= float64(len(xs)) * h
		curve[i] = plotter.XY{X: x, Y: d}
		if d > maxDensity {
			maxDensity = d
		}
	}

	p := plot.New()
	p.Title.Text = "Overall Score Density Distribution"
	p.X.Label.Text = "Score"
	p.Y.Label.Text = "Density"

	line, err := plotter.NewLine(curve)
	if err != nil {
		return "", err
	}
	line.LineStyle.Width = vg.Points(1.5)
	line.LineStyle.Color = palette[0]
	p.Add(line)

	median := stat.Quantile(0.5, stat.Empirical, sorted, nil)
	for _, marker := range []struct {
		label string
		x     float64
		color color.NRGBA
	}{
		{"Mean", mean, color.NRGBA{R: 0xd6, G: 0x27, B: 0x28, A: 0xff}},
		{"Median", median, color.NRGBA{A: 0xff}},
	} {
		v, err := plotter.NewLine(plotter.XYs{
			{X: marker.x, Y: 0},
			{X: marker.x, Y: maxDensity},
		})
		if err != nil {
			return "", err
		}
		v.LineStyle.Color = marker.color
		p.Add(v)
		p.Legend.Add(fmt.Sprintf("%s %.1f", marker.label, marker.x), v)
	}

	return r.save(p, "density_score.png")
}

// QQPlot compares the standardized sample quantiles of xs against the
// standard normal, with the identity reference line.
func (r *Renderer) QQPlot(xs []float64, label string) (string, error) {
	if len(xs) < 3 {
		return "", errors.New("qq plot needs at least three scores")
	}
	mean, sd := stat.Mean(xs, nil), stat.StdDev(xs, nil)
	if sd == 0 {
		return "", errors.New("qq plot needs score variation")
	}

	sorted := make([]float64, len(xs))
	copy(sorted, xs)
	sort.Float64s(sorted)

	norm := distuv.Normal{Mu: 0, Sigma: 1}
	pts := make(plotter.XYs, len(sorted))
	for i, v := range sorted {
		q := (float64(i) + 0.5) / float64(len(sorted))
		pts[i] = plotter.XY{X: norm.Quantile(q), Y: (v - mean) / sd}
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("QQ Plot - %s Scores", label)
	p.X.Label.Text = "Theoretical Quantiles"
	p.Y.Label.Text = "Standardized Sample Quantiles"
	p.Add(plotter.NewGrid())

	s, err := plotter.NewScatter(pts)
	if err != nil {
		return "", err
	}
	s.GlyphStyle.Color = palette[0]
	s.GlyphStyle.Radius = vg.Points(2)
	p.Add(s)

	lo := pts[0].X
	hi := pts[len(pts)-1].X
	ref, err := plotter.NewLine(plotter.XYs{{X: lo, Y: lo}, {X: hi, Y: hi}})
	if err != nil {
		return "", err
	}
	ref.LineStyle.Color = color.NRGBA{R: 0xd6, G: 0x27, B: 0x28, A: 0xff}
	p.Add(ref)

	return r.save(p, fileName("qq", label))
}
