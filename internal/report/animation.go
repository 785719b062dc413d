package report

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"

	"github.com/icza/mjpeg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/banshee-data/position.report/internal/monitoring"
	"github.com/banshee-data/position.report/internal/sim"
)

// AnimationConfig controls the rendered movie. Zero values fall back to
// the defaults below.
type AnimationConfig struct {
	Width  int // frame width in pixels (default 800)
	Height int // frame height in pixels (default 500)
	FPS    int // playback rate (default 10)
}

// SaveAnimation renders one frame per simulation step, each showing the
// run up to and including that step, and encodes them as an MJPEG AVI.
// Axis ranges are fixed to the full run's extent so the view does not
// rescale between frames.
func SaveAnimation(path string, records []sim.StepRecord, cfg AnimationConfig) error {
	if len(records) == 0 {
		return fmt.Errorf("no records to animate")
	}
	if cfg.Width <= 0 {
		cfg.Width = 800
	}
	if cfg.Height <= 0 {
		cfg.Height = 500
	}
	if cfg.FPS <= 0 {
		cfg.FPS = 10
	}

	xMin, xMax, yMin, yMax := runExtents(records)

	aw, err := mjpeg.New(path, int32(cfg.Width), int32(cfg.Height), int32(cfg.FPS))
	if err != nil {
		return fmt.Errorf("failed to create AVI writer: %w", err)
	}

	for i := 1; i <= len(records); i++ {
		p, err := buildPositionPlot(records, i)
		if err != nil {
			aw.Close()
			return err
		}
		p.X.Min, p.X.Max = xMin, xMax
		p.Y.Min, p.Y.Max = yMin, yMax

		img := image.NewRGBA(image.Rect(0, 0, cfg.Width, cfg.Height))
		canvas := vgimg.NewWith(vgimg.UseImage(img))
		p.Draw(draw.New(canvas))

		var buf bytes.Buffer
		if err := jpeg.Encode(&buf, canvas.Image(), &jpeg.Options{Quality: 90}); err != nil {
			aw.Close()
			return fmt.Errorf("failed to encode frame %d: %w", i, err)
		}
		if err := aw.AddFrame(buf.Bytes()); err != nil {
			aw.Close()
			return fmt.Errorf("failed to add frame %d: %w", i, err)
		}

		if i%10 == 0 || i == len(records) {
			monitoring.Logf("rendered %d/%d frames", i, len(records))
		}
	}

	if err := aw.Close(); err != nil {
		return fmt.Errorf("failed to finalise AVI: %w", err)
	}
	return nil
}

// runExtents returns the time and position bounds of the run across all
// three position series, padded slightly so edge points stay visible.
func runExtents(records []sim.StepRecord) (xMin, xMax, yMin, yMax float64) {
	xMin, xMax = records[0].Time, records[0].Time
	yMin, yMax = records[0].TruePosition, records[0].TruePosition
	for _, r := range records {
		xMin = min(xMin, r.Time)
		xMax = max(xMax, r.Time)
		for _, y := range []float64{r.TruePosition, r.Measurement, r.EstimatedPosition} {
			yMin = min(yMin, y)
			yMax = max(yMax, y)
		}
	}
	padX := (xMax - xMin) * 0.02
	padY := (yMax - yMin) * 0.05
	if padY == 0 {
		padY = 1
	}
	return xMin - padX, xMax + padX, yMin - padY, yMax + padY
}
