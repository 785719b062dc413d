package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"
)

func TestNoiseSourceZeroStdDev(t *testing.T) {
	t.Parallel()

	n := NewNoiseSource(1)
	for i := 0; i < 100; i++ {
		assert.Equal(t, 0.0, n.Sample(0))
	}
}

func TestNoiseSourceSeededReproducibility(t *testing.T) {
	t.Parallel()

	a := NewNoiseSource(1234)
	b := NewNoiseSource(1234)
	for i := 0; i < 1000; i++ {
		require.Equal(t, a.Sample(2.0), b.Sample(2.0), "draw %d diverged", i)
	}
}

func TestNoiseSourceSeedsDiffer(t *testing.T) {
	t.Parallel()

	a := NewNoiseSource(1)
	b := NewNoiseSource(2)
	same := true
	for i := 0; i < 10; i++ {
		if a.Sample(1.0) != b.Sample(1.0) {
			same = false
		}
	}
	assert.False(t, same, "different seeds produced identical streams")
}

// TestNoiseSourceDistribution sanity-checks the sample moments against
// the requested distribution. The seed is fixed, so the observed values
// are stable and the tolerances can be tight-ish.
func TestNoiseSourceDistribution(t *testing.T) {
	t.Parallel()

	const stddev = 2.0
	n := NewNoiseSource(99)

	samples := make([]float64, 20000)
	for i := range samples {
		samples[i] = n.Sample(stddev)
	}

	assert.InDelta(t, 0.0, stat.Mean(samples, nil), 0.05)
	assert.InDelta(t, stddev, stat.StdDev(samples, nil), 0.05)
}
