package sim

import (
	"strings"
	"testing"
)

func TestConfigValidate(t *testing.T) {
	t.Parallel()

	mutate := func(f func(*Config)) Config {
		c := DefaultConfig()
		f(&c)
		return c
	}

	tests := []struct {
		name    string
		cfg     Config
		wantErr string // empty means valid
	}{
		{"default config", DefaultConfig(), ""},
		{"zero total time", mutate(func(c *Config) { c.TotalTime = 0 }), "total_time"},
		{"negative total time", mutate(func(c *Config) { c.TotalTime = -1 }), "total_time"},
		{"zero dt", mutate(func(c *Config) { c.Dt = 0 }), "dt"},
		{"negative dt", mutate(func(c *Config) { c.Dt = -0.5 }), "dt"},
		{"dt beyond horizon", mutate(func(c *Config) { c.Dt = 20 }), "dt"},
		{"negative sensor noise", mutate(func(c *Config) { c.SensorNoiseStdDev = -2 }), "sensor_noise_stddev"},
		{"negative process noise", mutate(func(c *Config) { c.ProcessNoiseVar = -0.1 }), "process_noise_variance"},
		{"negative initial variance", mutate(func(c *Config) { c.InitialVariance = -1 }), "initial_variance"},
		{"noiseless is valid", mutate(func(c *Config) { c.SensorNoiseStdDev = 0; c.ProcessNoiseVar = 0 }), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Validate() = nil, want error naming %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() = %q, want it to name %q", err, tt.wantErr)
			}
		})
	}
}

func TestConfigSteps(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		totalTime float64
		dt        float64
		want      int
	}{
		{"even division", 10.0, 0.1, 100},
		{"single step", 1.0, 1.0, 1},
		{"two steps", 2.0, 1.0, 2},
		{"ragged division rounds up", 1.0, 0.3, 4},
		{"sub-second horizon", 0.5, 0.2, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Config{TotalTime: tt.totalTime, Dt: tt.dt}
			if got := c.Steps(); got != tt.want {
				t.Errorf("Steps() = %d, want %d", got, tt.want)
			}
		})
	}
}
