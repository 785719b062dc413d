// Package testutil provides shared test utilities and fixtures.
//
// This package centralises common test helpers to reduce code duplication
// across test files and improve test maintainability.
package testutil

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/banshee-data/position.report/internal/sim"
)

// NoiselessConfig returns a deterministic configuration: perfect sensor,
// no process noise, fixed seed. Useful as a baseline to mutate in tests.
func NoiselessConfig() sim.Config {
	return sim.Config{
		TotalTime:       2.0,
		Dt:              1.0,
		Velocity:        1.0,
		InitialVariance: 1000.0,
		Seed:            1,
	}
}

// AssertRecordsEqual fails the test unless the two record sequences are
// bit-for-bit identical.
func AssertRecordsEqual(t *testing.T, want, got []sim.StepRecord) {
	t.Helper()
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("step records mismatch (-want +got):\n%s", diff)
	}
}

// AssertRecordsApprox fails the test unless the two record sequences
// match within the given absolute tolerance per field.
func AssertRecordsApprox(t *testing.T, want, got []sim.StepRecord, tol float64) {
	t.Helper()
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, tol)); diff != "" {
		t.Errorf("step records mismatch (-want +got):\n%s", diff)
	}
}

// AssertNoError fails the test if err is not nil.
func AssertNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// AssertError fails the test if err is nil.
func AssertError(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}
