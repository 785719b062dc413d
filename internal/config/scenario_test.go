package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/banshee-data/position.report/internal/sim"
)

func writeScenario(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoadScenarioAppliesPresentFields(t *testing.T) {
	t.Parallel()

	path := writeScenario(t, `{
		"total_time": 20.0,
		"velocity": -2.0,
		"seed": 77
	}`)

	s, err := LoadScenario(path)
	require.NoError(t, err)

	cfg := sim.DefaultConfig()
	s.Apply(&cfg)

	assert.Equal(t, 20.0, cfg.TotalTime)
	assert.Equal(t, -2.0, cfg.Velocity)
	assert.Equal(t, uint64(77), cfg.Seed)

	// absent fields keep their prior values
	assert.Equal(t, 0.1, cfg.Dt)
	assert.Equal(t, 2.0, cfg.SensorNoiseStdDev)
	assert.Equal(t, 0.01, cfg.ProcessNoiseVar)
}

func TestLoadScenarioZeroValues(t *testing.T) {
	t.Parallel()

	// explicit zeros are applied, unlike absent fields
	path := writeScenario(t, `{"sensor_noise_stddev": 0, "process_noise_variance": 0}`)

	s, err := LoadScenario(path)
	require.NoError(t, err)

	cfg := sim.DefaultConfig()
	s.Apply(&cfg)
	assert.Equal(t, 0.0, cfg.SensorNoiseStdDev)
	assert.Equal(t, 0.0, cfg.ProcessNoiseVar)
}

func TestLoadScenarioErrors(t *testing.T) {
	t.Parallel()

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()
		_, err := LoadScenario(filepath.Join(t.TempDir(), "nope.json"))
		assert.Error(t, err)
	})

	t.Run("malformed JSON", func(t *testing.T) {
		t.Parallel()
		path := writeScenario(t, `{"dt": `)
		_, err := LoadScenario(path)
		assert.Error(t, err)
	})
}
