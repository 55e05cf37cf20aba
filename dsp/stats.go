package dsp

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/handegar/swvplot/base"
)

type Summary struct {
	Rows             int
	MissingAmplitude int
	MissingTime      int

	AmplitudeMin    float64
	AmplitudeMax    float64
	AmplitudeMean   float64
	AmplitudeStdDev float64
	AmplitudeRMS    float64

	StartMs          float64
	EndMs            float64
	DurationMs       float64
	MedianIntervalMs float64 // 0 if less than two increasing timestamps
	SampleRate       float64 // Estimated from MedianIntervalMs, 0 if unknown
}

func Summarize(series *base.Series) Summary {
	s := Summary{Rows: series.Len()}

	var amps, times []float64
	for i := 0; i < series.Len(); i++ {
		if base.IsMissing(series.Amplitude[i]) {
			s.MissingAmplitude += 1
		} else {
			amps = append(amps, series.Amplitude[i])
		}
		if base.IsMissing(series.TimeMs[i]) {
			s.MissingTime += 1
		} else {
			times = append(times, series.TimeMs[i])
		}
	}

	if len(amps) > 0 {
		s.AmplitudeMin = floats.Min(amps)
		s.AmplitudeMax = floats.Max(amps)
		s.AmplitudeMean = stat.Mean(amps, nil)
		s.AmplitudeRMS = math.Sqrt(floats.Dot(amps, amps) / float64(len(amps)))
		if len(amps) > 1 {
			s.AmplitudeStdDev = stat.StdDev(amps, nil)
		}
	}

	if len(times) > 0 {
		s.StartMs = floats.Min(times)
		s.EndMs = floats.Max(times)
		s.DurationMs = s.EndMs - s.StartMs
	}

	// Only increasing steps count. The cycle counter wraps around.
	var intervals []float64
	for i := 1; i < len(times); i++ {
		if d := times[i] - times[i-1]; d > 0 {
			intervals = append(intervals, d)
		}
	}
	if len(intervals) > 0 {
		sort.Float64s(intervals)
		s.MedianIntervalMs = stat.Quantile(0.5, stat.Empirical, intervals, nil)
		s.SampleRate = 1000.0 / s.MedianIntervalMs
	}

	return s
}

// Returns the estimated samplerate, or 'fallback' if there is none.
func (s Summary) SampleRateOr(fallback float64) float64 {
	if s.SampleRate > 0 && !math.IsInf(s.SampleRate, 0) {
		return s.SampleRate
	}
	return fallback
}

func (s Summary) Print() {
	fmt.Printf("Trace statistics:\n"+
		" Rows = %d\n"+
		" MissingAmplitude = %d\n"+
		" MissingTime = %d\n"+
		" Amplitude min/max = %g / %g\n"+
		" Amplitude mean = %f\n"+
		" Amplitude std.dev = %f\n"+
		" Amplitude RMS = %f\n"+
		" Time = %f .. %f ms (%f ms)\n"+
		" Median interval = %f ms\n"+
		" Est. samplerate = %.1f Hz\n",
		s.Rows,
		s.MissingAmplitude,
		s.MissingTime,
		s.AmplitudeMin, s.AmplitudeMax,
		s.AmplitudeMean,
		s.AmplitudeStdDev,
		s.AmplitudeRMS,
		s.StartMs, s.EndMs, s.DurationMs,
		s.MedianIntervalMs,
		s.SampleRate)
}
