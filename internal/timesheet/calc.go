package timesheet

import (
	"fmt"
	"math"
)

// ComputeHours derives worked hours from a start time, end time and break.
// elapsed = end - start - break, in minutes; the result is elapsed/60 rounded
// to two decimals, half away from zero.
//
// A span that works out to zero or negative minutes is rejected, including
// end times earlier than start: sessions never cross midnight. A negative
// break is rejected rather than clamped.
func ComputeHours(start, end Clock, breakMinutes int) (float64, error) {
	if breakMinutes < 0 {
		return 0, &ValidationError{Reason: fmt.Sprintf("break must be non-negative, got %d", breakMinutes)}
	}
	elapsed := int(end) - int(start) - breakMinutes
	if elapsed <= 0 {
		return 0, &ValidationError{Reason: fmt.Sprintf("end %s must leave time after start %s and a %d minute break", end, start, breakMinutes)}
	}
	return roundHours(float64(elapsed) / 60), nil
}

// roundHours rounds to two decimals, half away from zero.
func roundHours(h float64) float64 {
	return math.Round(h*100) / 100
}
