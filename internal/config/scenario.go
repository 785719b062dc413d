// Package config loads simulation scenarios from JSON files. A scenario
// is a partial configuration: absent fields keep whatever value the
// caller already has, so files can describe just the parameters they
// care about and command-line flags can still override the rest.
package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/banshee-data/position.report/internal/sim"
)

// Scenario is the on-disk schema. All fields are optional; pointer
// fields distinguish "absent" from zero values.
type Scenario struct {
	TotalTime         *float64 `json:"total_time,omitempty"`
	Dt                *float64 `json:"dt,omitempty"`
	Velocity          *float64 `json:"velocity,omitempty"`
	SensorNoiseStdDev *float64 `json:"sensor_noise_stddev,omitempty"`
	ProcessNoiseVar   *float64 `json:"process_noise_variance,omitempty"`
	InitialPosition   *float64 `json:"initial_position,omitempty"`
	InitialVelocity   *float64 `json:"initial_velocity,omitempty"`
	InitialVariance   *float64 `json:"initial_variance,omitempty"`
	Seed              *uint64  `json:"seed,omitempty"`
}

// LoadScenario reads and parses a scenario file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	var s Scenario
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse scenario file %s: %w", path, err)
	}
	return &s, nil
}

// Apply overlays the scenario's present fields onto cfg. Validation is
// left to sim.Config.Validate so scenario files and flags are rejected
// through the same path.
func (s *Scenario) Apply(cfg *sim.Config) {
	if s.TotalTime != nil {
		cfg.TotalTime = *s.TotalTime
	}
	if s.Dt != nil {
		cfg.Dt = *s.Dt
	}
	if s.Velocity != nil {
		cfg.Velocity = *s.Velocity
	}
	if s.SensorNoiseStdDev != nil {
		cfg.SensorNoiseStdDev = *s.SensorNoiseStdDev
	}
	if s.ProcessNoiseVar != nil {
		cfg.ProcessNoiseVar = *s.ProcessNoiseVar
	}
	if s.InitialPosition != nil {
		cfg.InitialPosition = *s.InitialPosition
	}
	if s.InitialVelocity != nil {
		cfg.InitialVelocity = *s.InitialVelocity
	}
	if s.InitialVariance != nil {
		cfg.InitialVariance = *s.InitialVariance
	}
	if s.Seed != nil {
		cfg.Seed = *s.Seed
	}
}
