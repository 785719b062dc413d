package sim

// Motion is the deterministic ground truth: a point moving at constant
// velocity from the origin.
type Motion struct {
	Velocity float64 // units per second
}

// Position returns the true position at elapsed time t.
func (m Motion) Position(t float64) float64 {
	return m.Velocity * t
}

// MeasurementGenerator produces one noisy scalar position observation
// per sampling instant: the true position corrupted by zero-mean
// Gaussian sensor noise.
type MeasurementGenerator struct {
	motion Motion
	noise  *NoiseSource
	stddev float64
}

// NewMeasurementGenerator wires a ground-truth motion to a noise source
// with the given sensor noise standard deviation.
func NewMeasurementGenerator(motion Motion, noise *NoiseSource, stddev float64) *MeasurementGenerator {
	return &MeasurementGenerator{motion: motion, noise: noise, stddev: stddev}
}

// Measure returns a noisy observation of the true position at time t.
// With a zero stddev the observation equals the true position exactly.
func (g *MeasurementGenerator) Measure(t float64) float64 {
	return g.motion.Position(t) + g.noise.Sample(g.stddev)
}
