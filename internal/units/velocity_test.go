package units

import (
	"math"
	"testing"
)

func TestIsValid(t *testing.T) {
	tests := []struct {
		name     string
		unit     string
		expected bool
	}{
		{"valid mps", MPS, true},
		{"valid mph", MPH, true},
		{"valid kmph", KMPH, true},
		{"invalid unit", "invalid", false},
		{"empty unit", "", false},
		{"uppercase MPS", "MPS", false}, // Case-sensitive
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := IsValid(tt.unit)
			if result != tt.expected {
				t.Errorf("IsValid(%s) = %v, want %v", tt.unit, result, tt.expected)
			}
		})
	}
}

func TestConvertSpeed(t *testing.T) {
	tests := []struct {
		name     string
		speedMPS float64
		unit     string
		expected float64
	}{
		{"0 m/s to mps", 0.0, MPS, 0.0},
		{"1 m/s to mps", 1.0, MPS, 1.0},
		{"1 m/s to mph", 1.0, MPH, 2.2369362920544},
		{"5 m/s to mph", 5.0, MPH, 11.184681460272},
		{"1 m/s to kmph", 1.0, KMPH, 3.6},
		{"10 m/s to kmph", 10.0, KMPH, 36.0},
		{"unknown unit passes through", 7.0, "furlongs", 7.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ConvertSpeed(tt.speedMPS, tt.unit)
			if math.Abs(result-tt.expected) > 1e-9 {
				t.Errorf("ConvertSpeed(%v, %s) = %v, want %v", tt.speedMPS, tt.unit, result, tt.expected)
			}
		})
	}
}

func TestSpeedLabel(t *testing.T) {
	if got := SpeedLabel(MPH); got != "Velocity (mph)" {
		t.Errorf("SpeedLabel(mph) = %q", got)
	}
	if got := SpeedLabel(""); got != "Velocity (m/s)" {
		t.Errorf("SpeedLabel(default) = %q", got)
	}
}
