// Package main provides the kalmansim command: it runs the 1D
// constant-velocity Kalman filter simulation and writes the per-step
// records as CSV/JSON plus optional chart, plot and animation renderings.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/banshee-data/position.report/internal/config"
	"github.com/banshee-data/position.report/internal/monitoring"
	"github.com/banshee-data/position.report/internal/report"
	"github.com/banshee-data/position.report/internal/sim"
	"github.com/banshee-data/position.report/internal/units"
	"github.com/banshee-data/position.report/internal/version"
)

var (
	totalTime = flag.Float64("total-time", 10.0, "Simulated horizon in seconds")
	dt        = flag.Float64("dt", 0.1, "Step size in seconds")
	velocity  = flag.Float64("velocity", 1.0, "True constant velocity (m/s)")
	noise     = flag.Float64("noise", 2.0, "Sensor noise standard deviation (m)")
	procNoise = flag.Float64("q", 0.01, "Process noise variance")
	seed      = flag.Uint64("seed", 0, "Noise seed; 0 seeds from the clock")

	initPos = flag.Float64("init-pos", 0, "Filter initial position guess (m)")
	initVel = flag.Float64("init-vel", 0, "Filter initial velocity guess (m/s)")
	initVar = flag.Float64("init-var", 1000.0, "Filter initial covariance diagonal")

	outDir     = flag.String("out", "out", "Output directory; a run_<id> subdirectory is created per run")
	writeCSV   = flag.Bool("csv", true, "Write records as CSV")
	writeJSON  = flag.Bool("json", false, "Write run summary as JSON")
	writeChart = flag.Bool("chart", true, "Render interactive HTML chart")
	writePNG   = flag.Bool("png", false, "Render static PNG plot")
	writeAnim  = flag.Bool("anim", false, "Render MJPEG animation of the run")

	speedUnits = flag.String("units", units.MPS, "Display units for velocities in the chart")
	animFPS    = flag.Int("fps", 10, "Animation playback rate")
	animWidth  = flag.Int("width", 800, "Animation frame width in pixels")
	animHeight = flag.Int("height", 500, "Animation frame height in pixels")

	scenarioPath = flag.String("config", "", "Optional JSON scenario file; explicit flags override it")

	quiet       = flag.Bool("quiet", false, "Suppress progress output")
	showVersion = flag.Bool("version", false, "Print version and exit")
)

// buildConfig assembles the simulation configuration: flag defaults,
// overlaid by the scenario file if one is given, overlaid by any flags
// the user set explicitly.
func buildConfig() (sim.Config, error) {
	cfg := sim.Config{
		TotalTime:         *totalTime,
		Dt:                *dt,
		Velocity:          *velocity,
		SensorNoiseStdDev: *noise,
		ProcessNoiseVar:   *procNoise,
		InitialPosition:   *initPos,
		InitialVelocity:   *initVel,
		InitialVariance:   *initVar,
		Seed:              *seed,
	}

	if *scenarioPath == "" {
		return cfg, nil
	}

	scenario, err := config.LoadScenario(*scenarioPath)
	if err != nil {
		return sim.Config{}, err
	}
	scenario.Apply(&cfg)

	// explicitly-set flags win over the scenario file
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "total-time":
			cfg.TotalTime = *totalTime
		case "dt":
			cfg.Dt = *dt
		case "velocity":
			cfg.Velocity = *velocity
		case "noise":
			cfg.SensorNoiseStdDev = *noise
		case "q":
			cfg.ProcessNoiseVar = *procNoise
		case "init-pos":
			cfg.InitialPosition = *initPos
		case "init-vel":
			cfg.InitialVelocity = *initVel
		case "init-var":
			cfg.InitialVariance = *initVar
		case "seed":
			cfg.Seed = *seed
		}
	})

	return cfg, nil
}

func main() {
	flag.Parse()

	if *showVersion {
		fmt.Println(version.String())
		return
	}

	if *quiet {
		monitoring.Quiet()
	}

	if !units.IsValid(*speedUnits) {
		log.Fatalf("invalid units %q: must be one of %s", *speedUnits, units.GetValidUnitsString())
	}

	cfg, err := buildConfig()
	if err != nil {
		log.Fatalf("failed to load scenario: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	runID := fmt.Sprintf("run_%s", uuid.NewString())
	monitoring.Logf("%s: simulating %d steps (dt=%gs, velocity=%g m/s)", runID, cfg.Steps(), cfg.Dt, cfg.Velocity)

	records, err := sim.Run(cfg)
	if err != nil {
		log.Fatalf("simulation failed: %v", err)
	}

	dir := filepath.Join(*outDir, runID)
	if err := os.MkdirAll(dir, 0755); err != nil {
		log.Fatalf("failed to create output dir: %v", err)
	}

	if *writeCSV {
		if err := writeFile(filepath.Join(dir, "records.csv"), func(f *os.File) error {
			return report.WriteCSV(f, records)
		}); err != nil {
			log.Fatalf("failed to write CSV: %v", err)
		}
	}

	if *writeJSON {
		summary := report.Summary{RunID: runID, Steps: len(records), Records: records}
		if err := writeFile(filepath.Join(dir, "summary.json"), func(f *os.File) error {
			return report.WriteJSON(f, summary)
		}); err != nil {
			log.Fatalf("failed to write JSON: %v", err)
		}
	}

	if *writeChart {
		if err := writeFile(filepath.Join(dir, "chart.html"), func(f *os.File) error {
			return report.RenderChart(f, records, cfg.Velocity, *speedUnits)
		}); err != nil {
			log.Fatalf("failed to render chart: %v", err)
		}
	}

	if *writePNG {
		if err := report.SavePNG(filepath.Join(dir, "plot.png"), records); err != nil {
			log.Fatalf("failed to render plot: %v", err)
		}
	}

	if *writeAnim {
		monitoring.Logf("%s: rendering animation", runID)
		animCfg := report.AnimationConfig{Width: *animWidth, Height: *animHeight, FPS: *animFPS}
		if err := report.SaveAnimation(filepath.Join(dir, "animation.avi"), records, animCfg); err != nil {
			log.Fatalf("failed to render animation: %v", err)
		}
	}

	last := records[len(records)-1]
	monitoring.Logf("%s: final estimate position=%.4f velocity=%.4f (true position=%.4f)",
		runID, last.EstimatedPosition, last.EstimatedVelocity, last.TruePosition)
	fmt.Printf("Output saved to %s\n", dir)
}

func writeFile(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
