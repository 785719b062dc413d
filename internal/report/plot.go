package report

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/banshee-data/position.report/internal/sim"
)

var (
	trueColor     = color.RGBA{R: 220, A: 255}
	estimateColor = color.RGBA{G: 160, B: 60, A: 255}
	measureColor  = color.RGBA{B: 220, A: 255}
)

// SavePNG writes a static position-over-time plot of the run: true
// trajectory and filter estimate as lines, raw measurements as points.
func SavePNG(path string, records []sim.StepRecord) error {
	p, err := buildPositionPlot(records, len(records))
	if err != nil {
		return err
	}
	if err := p.Save(8*vg.Inch, 5*vg.Inch, path); err != nil {
		return fmt.Errorf("failed to save plot: %w", err)
	}
	return nil
}

// buildPositionPlot assembles the position plot from the first n
// records. The animation renderer calls it once per frame with a
// growing prefix; SavePNG calls it once with the whole run.
func buildPositionPlot(records []sim.StepRecord, n int) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "1D Kalman Filter - Position Estimate"
	p.X.Label.Text = "Time (s)"
	p.Y.Label.Text = "Position (m)"

	truePts := make(plotter.XYs, n)
	estPts := make(plotter.XYs, n)
	measPts := make(plotter.XYs, n)
	for i := 0; i < n; i++ {
		r := records[i]
		truePts[i] = plotter.XY{X: r.Time, Y: r.TruePosition}
		estPts[i] = plotter.XY{X: r.Time, Y: r.EstimatedPosition}
		measPts[i] = plotter.XY{X: r.Time, Y: r.Measurement}
	}

	trueLine, err := plotter.NewLine(truePts)
	if err != nil {
		return nil, fmt.Errorf("failed to build true-position line: %w", err)
	}
	trueLine.LineStyle.Width = 2
	trueLine.LineStyle.Color = trueColor

	estLine, err := plotter.NewLine(estPts)
	if err != nil {
		return nil, fmt.Errorf("failed to build estimate line: %w", err)
	}
	estLine.LineStyle.Width = 2
	estLine.LineStyle.Color = estimateColor

	scatter, err := plotter.NewScatter(measPts)
	if err != nil {
		return nil, fmt.Errorf("failed to build measurement scatter: %w", err)
	}
	scatter.GlyphStyle.Radius = vg.Points(2)
	scatter.GlyphStyle.Color = measureColor

	p.Add(scatter, trueLine, estLine)
	p.Legend.Add("True", trueLine)
	p.Legend.Add("Estimated", estLine)
	p.Legend.Add("Measured", scatter)
	p.Legend.Top = true

	return p, nil
}
