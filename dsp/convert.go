package dsp

import (
	"strconv"
	"strings"

	"github.com/handegar/swvplot/base"
)

// ToNumeric converts each cell to a float. Cells which can't be parsed
// become base.Missing. The result always has the length of 'cells'.
func ToNumeric(cells []string) []float64 {
	out := make([]float64, len(cells))
	for i, c := range cells {
		out[i] = ParseCell(c)
	}
	return out
}

// ParseCell accepts decimal numbers only. Hex floats ("0x1p4") and
// out of range values ("1e400") are missing.
func ParseCell(cell string) float64 {
	cell = strings.TrimSpace(cell)
	if isHex(cell) {
		return base.Missing
	}
	v, err := strconv.ParseFloat(cell, 64)
	if err != nil {
		return base.Missing
	}
	return v
}

func isHex(cell string) bool {
	cell = strings.TrimLeft(cell, "+-")
	return strings.HasPrefix(cell, "0x") || strings.HasPrefix(cell, "0X")
}

// TicksToMillis converts clock ticks to milliseconds. Missing values
// stay missing.
func TicksToMillis(ticks []float64, clockHz float64) []float64 {
	out := make([]float64, len(ticks))
	for i, v := range ticks {
		out[i] = 1000 * v / clockHz
	}
	return out
}

// BuildSeries converts the raw trace into time (ms) and amplitude
// sequences.
func BuildSeries(trace *base.Trace, clockHz float64) *base.Series {
	ticks := ToNumeric(trace.TimestampColumn())
	return &base.Series{
		Ticks:     ticks,
		TimeMs:    TicksToMillis(ticks, clockHz),
		Amplitude: ToNumeric(trace.PCMColumn()),
	}
}
