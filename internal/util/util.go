package util

import "math"

// RoundDistanceKm converts provider meters to kilometers rounded half-up to
// two decimal places. The rounded value is what gets cached, so repeated
// reads of one entry are exactly idempotent.
func RoundDistanceKm(meters int) float64 {
	return math.Round(float64(meters)/10.0) / 100.0
}

// RoundDurationMinutes converts provider seconds to whole minutes, rounded
// half-up.
func RoundDurationMinutes(seconds int) int {
	return int(math.Round(float64(seconds) / 60.0))
}
