package report

import (
	"fmt"
	"image/color"
	"path/filepath"
	"sort"

	"DeceptionIndex/internal/domain/models"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

const (
	chartWidth  = 12 * vg.Inch
	chartHeight = 6 * vg.Inch
)

// Chart describes one horizontal bar chart of a table column.
type Chart struct {
	Column string
	Title  string
	XLabel string
	File   string
}

// Charts returns the four standard charts for team and season label.
func Charts(team, label string, files ChartFiles) []Chart {
	suffix := fmt.Sprintf(" - %s (%s)", team, label)
	return []Chart{
		{models.MetricScore, "Pitcher Deception Index" + suffix + "\n(Regular Season MLB Data Only)", "Deception Score", files.Score},
		{models.MetricReleaseVar, "Release Point Variance" + suffix, "Release Point Variance", files.ReleaseVar},
		{models.MetricVeloSep, "Velocity Separation (mph)" + suffix, "Velocity Separation (mph)", files.VeloSep},
		{models.MetricSpinDiff, "Spin Axis Difference (degrees)" + suffix, "Spin Axis Difference (degrees)", files.SpinDiff},
	}
}

// ChartFiles names the image written for each chart.
type ChartFiles struct {
	Score      string
	ReleaseVar string
	VeloSep    string
	SpinDiff   string
}

// DrawBarChart renders rows as horizontal bars sorted ascending by c.Column
// and saves the image under dir. The format follows the file extension.
func DrawBarChart(dir string, c Chart, rows []models.ScoredPitcher) (string, error) {
	sorted := append([]models.ScoredPitcher(nil), rows...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Value(c.Column) < sorted[j].Value(c.Column) })

	p := plot.New()
	p.Title.Text = c.Title
	p.X.Label.Text = c.XLabel
	p.Y.Label.Text = "Pitcher"
	p.Add(plotter.NewGrid())

	names := make([]string, len(sorted))
	for i, row := range sorted {
		names[i] = row.Name
		bar, err := plotter.NewBarChart(plotter.Values{row.Value(c.Column)}, vg.Points(14))
		if err != nil {
			return "", fmt.Errorf("bar %s: %w", row.Name, err)
		}
		bar.Horizontal = true
		bar.XMin = float64(i)
		bar.Color = blues(i, len(sorted))
		bar.LineStyle.Width = 0
		p.Add(bar)
	}
	p.NominalY(names...)

	path := filepath.Join(dir, c.File)
	if err := p.Save(chartWidth, chartHeight, path); err != nil {
		return "", fmt.Errorf("save %s: %w", path, err)
	}
	return path, nil
}

// blues interpolates a light-to-dark blue ramp, darkest at the last index.
func blues(i, n int) color.Color {
	light := [3]float64{198, 219, 239}
	dark := [3]float64{8, 48, 107}
	t := 1.0
	if n > 1 {
		t = float64(i) / float64(n-1)
	}
	ch := func(k int) uint8 { return uint8(light[k] + (dark[k]-light[k])*t) }
	return color.RGBA{R: ch(0), G: ch(1), B: ch(2), A: 255}
}
