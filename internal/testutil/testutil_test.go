package testutil

import (
	"testing"

	"github.com/banshee-data/position.report/internal/sim"
)

func TestNoiselessConfigIsValid(t *testing.T) {
	cfg := NoiselessConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("NoiselessConfig must validate, got %v", err)
	}
	if cfg.SensorNoiseStdDev != 0 || cfg.ProcessNoiseVar != 0 {
		t.Error("NoiselessConfig must have zero noise terms")
	}
}

func TestAssertRecordsApprox(t *testing.T) {
	a := []sim.StepRecord{{Time: 0, TruePosition: 1, Measurement: 1, EstimatedPosition: 1, EstimatedVelocity: 1}}
	b := []sim.StepRecord{{Time: 0, TruePosition: 1 + 1e-12, Measurement: 1, EstimatedPosition: 1 - 1e-12, EstimatedVelocity: 1}}

	AssertRecordsApprox(t, a, b, 1e-9)
	AssertRecordsEqual(t, a, a)
}

func TestAssertErrorHelpers(t *testing.T) {
	AssertNoError(t, nil)
	AssertError(t, errFixture{})
}

type errFixture struct{}

func (errFixture) Error() string { return "fixture" }
