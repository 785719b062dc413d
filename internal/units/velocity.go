// Package units provides shared constants and validation for the display
// units offered by the reporting layer. The simulation core is
// unit-agnostic; reports treat positions as metres and velocities as m/s
// and convert only for display.
package units

// Unit constants
const (
	MPS  = "mps"
	MPH  = "mph"
	KMPH = "kmph"
)

// ValidUnits contains all valid unit values
var ValidUnits = []string{MPS, MPH, KMPH}

// IsValid checks if the given unit is in the list of valid units
func IsValid(unit string) bool {
	for _, validUnit := range ValidUnits {
		if unit == validUnit {
			return true
		}
	}
	return false
}

// GetValidUnitsString returns a comma-separated string of valid units for error messages
func GetValidUnitsString() string {
	return "mps, mph, kmph"
}

// ConvertSpeed converts a speed from metres per second to the target units.
func ConvertSpeed(speedMPS float64, targetUnits string) float64 {
	switch targetUnits {
	case MPS:
		return speedMPS
	case MPH:
		return speedMPS * 2.2369362920544
	case KMPH:
		return speedMPS * 3.6
	default:
		return speedMPS
	}
}

// SpeedLabel returns the axis label for velocities in the target units.
func SpeedLabel(targetUnits string) string {
	switch targetUnits {
	case MPH:
		return "Velocity (mph)"
	case KMPH:
		return "Velocity (km/h)"
	default:
		return "Velocity (m/s)"
	}
}
