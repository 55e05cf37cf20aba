package utils

import (
	"fmt"
	"math"
	"strconv"
)

func Assert(cond bool, format string, args ...interface{}) {
	if !cond {
		panic(fmt.Sprintf(format, args...))
	}
}

// NiceStep rounds 'raw' up to 1, 2, 2.5 or 5 times a power of ten.
func NiceStep(raw float64) float64 {
	if raw <= 0 || math.IsNaN(raw) || math.IsInf(raw, 0) {
		return 1
	}
	mag := math.Pow(10, math.Floor(math.Log10(raw)))
	for _, c := range []float64{1, 2, 2.5, 5, 10} {
		if c*mag >= raw*(1-1e-9) {
			return c * mag
		}
	}
	return 10 * mag
}

// NiceTicks returns roughly 'n' evenly spaced round values inside
// [min, max] together with their spacing. The step may be up to 1.5x
// finer than span/(n-1), so expect between n-1 and 1.5n ticks.
func NiceTicks(min, max float64, n int) ([]float64, float64) {
	if n < 2 || math.IsNaN(min) || math.IsNaN(max) {
		return nil, 0
	}
	if max <= min {
		max = min + 1
	}
	step := NiceStep((max - min) / float64(n-1) / 1.5)
	start := math.Ceil(min/step) * step

	var ticks []float64
	for i := 0; ; i++ {
		v := start + float64(i)*step
		if v > max+step*1e-9 || i > 2*n+2 {
			break
		}
		ticks = append(ticks, v)
	}
	return ticks, step
}

// NiceBounds widens [min, max] by 5% and rounds outwards to the tick
// spacing. An empty or degenerate range becomes [min, min+1].
func NiceBounds(min, max float64, n int) (float64, float64) {
	if math.IsNaN(min) || math.IsNaN(max) {
		return 0, 1
	}
	if max <= min {
		return min - 0.5, min + 0.5
	}
	pad := (max - min) * 0.05
	lo, hi := min-pad, max+pad
	step := NiceStep((hi - lo) / float64(n-1))
	return math.Floor(lo/step) * step, math.Ceil(hi/step) * step
}

// Number of decimals needed to print multiples of 'step' exactly
func TickDecimals(step float64) int {
	if step <= 0 || math.IsNaN(step) || math.IsInf(step, 0) {
		return 0
	}
	d := 0
	for x := step; d < 10; d++ {
		if math.Abs(x-math.Round(x)) <= 1e-9*math.Max(1, math.Abs(x)) {
			break
		}
		x *= 10
	}
	return d
}

func FormatTick(v, step float64) string {
	s := strconv.FormatFloat(v, 'f', TickDecimals(step), 64)
	if s == "-0" || (len(s) > 2 && s[:3] == "-0." && isZero(s[3:])) {
		return s[1:]
	}
	return s
}

func isZero(digits string) bool {
	for _, c := range digits {
		if c != '0' {
			return false
		}
	}
	return true
}
