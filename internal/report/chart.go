package report

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/banshee-data/position.report/internal/sim"
	"github.com/banshee-data/position.report/internal/units"
)

// RenderChart writes an interactive HTML page with two line charts: the
// position view (true trajectory, raw measurements, filter estimate)
// and the velocity view (estimated velocity against the configured true
// velocity). Velocities are converted to speedUnits for display; the
// records themselves are taken to be metres and m/s.
func RenderChart(w io.Writer, records []sim.StepRecord, trueVelocity float64, speedUnits string) error {
	if !units.IsValid(speedUnits) {
		speedUnits = units.MPS
	}

	times := make([]string, len(records))
	truePos := make([]opts.LineData, len(records))
	estPos := make([]opts.LineData, len(records))
	measured := make([]opts.ScatterData, len(records))
	estVel := make([]opts.LineData, len(records))
	trueVel := make([]opts.LineData, len(records))

	for i, r := range records {
		times[i] = fmt.Sprintf("%.2f", r.Time)
		truePos[i] = opts.LineData{Value: r.TruePosition}
		estPos[i] = opts.LineData{Value: r.EstimatedPosition}
		measured[i] = opts.ScatterData{Value: r.Measurement, SymbolSize: 5}
		estVel[i] = opts.LineData{Value: units.ConvertSpeed(r.EstimatedVelocity, speedUnits)}
		trueVel[i] = opts.LineData{Value: units.ConvertSpeed(trueVelocity, speedUnits)}
	}

	position := charts.NewLine()
	position.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "Kalman Position Estimate", Width: "1000px", Height: "500px"}),
		charts.WithTitleOpts(opts.Title{Title: "Position", Subtitle: fmt.Sprintf("steps=%d", len(records))}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Time (s)"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Position (m)"}),
	)
	position.SetXAxis(times).
		AddSeries("True", truePos).
		AddSeries("Estimated", estPos)

	obs := charts.NewScatter()
	obs.SetXAxis(times).AddSeries("Measured", measured)
	position.Overlap(obs)

	velocity := charts.NewLine()
	velocity.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: "1000px", Height: "400px"}),
		charts.WithTitleOpts(opts.Title{Title: "Velocity"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Time (s)"}),
		charts.WithYAxisOpts(opts.YAxis{Name: units.SpeedLabel(speedUnits)}),
	)
	velocity.SetXAxis(times).
		AddSeries("True", trueVel).
		AddSeries("Estimated", estVel)

	page := components.NewPage()
	page.AddCharts(position, velocity)
	if err := page.Render(w); err != nil {
		return fmt.Errorf("failed to render chart page: %w", err)
	}
	return nil
}
