package sim

// StepRecord is the per-step output of a run: the ground truth, what
// the sensor reported, and what the filter believed after folding that
// report in. Records are emitted in time order, one per step.
type StepRecord struct {
	Time              float64 `json:"time"`
	TruePosition      float64 `json:"true_position"`
	Measurement       float64 `json:"measurement"`
	EstimatedPosition float64 `json:"estimated_position"`
	EstimatedVelocity float64 `json:"estimated_velocity"`
}

// Run executes one complete simulation: for each step i in 0..N-1 at
// t = i*Dt it advances the ground truth, draws a measurement, runs the
// filter's predict/update pair and records the result.
//
// Each call starts from a fresh filter and a fresh noise stream; a run
// is not restartable. The returned slice holds exactly Steps() records.
func Run(cfg Config) ([]StepRecord, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	motion := Motion{Velocity: cfg.Velocity}
	noise := NewNoiseSource(cfg.Seed)
	sensor := NewMeasurementGenerator(motion, noise, cfg.SensorNoiseStdDev)

	filter := NewFilter(
		cfg.Dt,
		cfg.ProcessNoiseVar,
		cfg.SensorNoiseStdDev*cfg.SensorNoiseStdDev,
		[2]float64{cfg.InitialPosition, cfg.InitialVelocity},
		cfg.InitialVariance,
	)

	steps := cfg.Steps()
	records := make([]StepRecord, 0, steps)

	for i := 0; i < steps; i++ {
		t := float64(i) * cfg.Dt

		truePos := motion.Position(t)
		z := sensor.Measure(t)

		filter.Predict()
		filter.Update(z)

		state := filter.State()
		records = append(records, StepRecord{
			Time:              t,
			TruePosition:      truePos,
			Measurement:       z,
			EstimatedPosition: state[0],
			EstimatedVelocity: state[1],
		})
	}

	return records, nil
}
