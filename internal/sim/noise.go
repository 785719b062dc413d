package sim

import (
	"math/rand/v2"
	"time"

	"gonum.org/v1/gonum/stat/distuv"
)

// NoiseSource draws independent zero-mean Gaussian samples from an
// explicitly owned PRNG. There is no package-level generator state:
// every run owns its own source, which is what makes seeded runs
// reproducible. A NoiseSource is not safe for concurrent use, matching
// the single-threaded simulation loop that owns it.
type NoiseSource struct {
	unit distuv.Normal
}

// NewNoiseSource returns a source backed by a PCG generator. A zero
// seed falls back to the wall clock, giving a different stream per run;
// any other seed gives a deterministic stream.
func NewNoiseSource(seed uint64) *NoiseSource {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &NoiseSource{
		unit: distuv.Normal{Mu: 0, Sigma: 1, Src: rand.NewPCG(seed, seed)},
	}
}

// Sample returns one draw from N(0, stddev²). A zero stddev returns
// exactly 0 without consuming generator state, so noiseless runs are
// deterministic regardless of seed.
func (n *NoiseSource) Sample(stddev float64) float64 {
	if stddev == 0 {
		return 0
	}
	return n.unit.Rand() * stddev
}
