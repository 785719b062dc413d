// Package sim simulates a one-dimensional target moving at constant
// velocity and recovers its position and velocity from noisy position
// measurements with a discrete-time linear Kalman filter.
//
// The package is the estimation core only: it produces an ordered
// sequence of per-step records and makes no assumptions about how they
// are displayed or rendered. Reporting lives in internal/report.
package sim

import (
	"fmt"
	"math"
)

// Config holds the parameters of one simulation run. A Config is
// treated as immutable once handed to Run.
type Config struct {
	// TotalTime is the simulated horizon in seconds.
	TotalTime float64

	// Dt is the step size in seconds. The horizon is divided into
	// ceil(TotalTime/Dt) steps.
	Dt float64

	// Velocity is the constant true velocity in units per second.
	Velocity float64

	// SensorNoiseStdDev is the standard deviation of the Gaussian
	// noise added to each position measurement. Zero gives a
	// noiseless sensor.
	SensorNoiseStdDev float64

	// ProcessNoiseVar is the process noise intensity q used to build
	// the discretised constant-velocity noise covariance Q.
	ProcessNoiseVar float64

	// InitialPosition and InitialVelocity are the filter's starting
	// state guess. Both default to zero.
	InitialPosition float64
	InitialVelocity float64

	// InitialVariance is the diagonal value of the filter's starting
	// covariance P0 = diag(InitialVariance, InitialVariance). Large
	// values tell the filter to distrust the initial guess.
	InitialVariance float64

	// Seed seeds the measurement noise source. Zero means "seed from
	// the wall clock": runs vary but are statistically equivalent.
	// Any nonzero value makes the run bit-for-bit reproducible.
	Seed uint64
}

// DefaultConfig returns the reference parameter set: a 10 second run at
// 10Hz, unit velocity, a fairly noisy sensor and a small amount of
// process noise.
func DefaultConfig() Config {
	return Config{
		TotalTime:         10.0,
		Dt:                0.1,
		Velocity:          1.0,
		SensorNoiseStdDev: 2.0,
		ProcessNoiseVar:   0.01,
		InitialVariance:   1000.0,
	}
}

// Validate rejects configurations that would make the run meaningless.
// It reports the first offending field; a failed Validate means the
// simulation never starts.
func (c Config) Validate() error {
	if c.TotalTime <= 0 {
		return fmt.Errorf("total_time must be > 0, got %v", c.TotalTime)
	}
	if c.Dt <= 0 {
		return fmt.Errorf("dt must be > 0, got %v", c.Dt)
	}
	if c.Dt > c.TotalTime {
		return fmt.Errorf("dt must be <= total_time, got dt=%v total_time=%v", c.Dt, c.TotalTime)
	}
	if c.SensorNoiseStdDev < 0 {
		return fmt.Errorf("sensor_noise_stddev must be >= 0, got %v", c.SensorNoiseStdDev)
	}
	if c.ProcessNoiseVar < 0 {
		return fmt.Errorf("process_noise_variance must be >= 0, got %v", c.ProcessNoiseVar)
	}
	if c.InitialVariance < 0 {
		return fmt.Errorf("initial_variance must be >= 0, got %v", c.InitialVariance)
	}
	return nil
}

// Steps returns the number of discrete steps in the run,
// ceil(TotalTime/Dt). Step i samples the system at t = i*Dt.
func (c Config) Steps() int {
	return int(math.Ceil(c.TotalTime / c.Dt))
}
