package base

import "math"

// Labels used by every renderer
const (
	ChartTitle  = "PCM Data Captured from SysTrace"
	XAxisLabel  = "Time [ms]"
	YAxisLabel  = "Amplitude"
	LegendLabel = "PCM Data"
)

// Column names of the two selected trace columns
const (
	PCMColumnName       = "PCM"
	TimestampColumnName = "Timestamp"
)

// Missing marks a cell which could not be parsed as a number.
var Missing = math.NaN()

func IsMissing(v float64) bool {
	return math.IsNaN(v)
}

// IsPlottable is false for missing and infinite values
func IsPlottable(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
