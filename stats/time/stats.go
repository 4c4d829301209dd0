package time

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Stats holds time-domain statistics of a window of samples.
type Stats struct {
	SampleCount int

	// Duration is the time from the first to the last sample.
	Duration Measurement

	// SampleRate is SampleCount / Duration.
	SampleRate Measurement

	RMS        Measurement
	PeakToPeak Measurement

	// ZeroCrossings counts sign changes between consecutive samples.
	ZeroCrossings int

	// AvgFrequency is the zero-crossing frequency estimate, see
	// CrossingFrequency.
	AvgFrequency Measurement
}

// Calculate computes the statistics of a window given index-aligned
// timestamps (seconds) and amplitudes. When the slices differ in length the
// extra tail of the longer one is ignored. An empty window reports every
// measurement as unavailable.
func Calculate(times, amps []float64) Stats {
	n := min(len(times), len(amps))
	if n == 0 {
		return Stats{}
	}

	times, amps = times[:n], amps[:n]

	s := Stats{
		SampleCount: n,
		RMS:         Available(RMS(amps)),
		PeakToPeak:  Available(PeakToPeak(amps)),
	}

	duration := times[n-1] - times[0]
	if isFinite(duration) {
		s.Duration = Available(duration)
	}

	if duration > 0 && isFinite(duration) {
		s.SampleRate = Available(float64(n) / duration)
	}

	crossings := ZeroCrossings(amps)
	s.ZeroCrossings = len(crossings)

	if f, ok := CrossingFrequency(times, crossings); ok {
		s.AvgFrequency = Available(f)
	}

	return s
}

// RMS returns the root-mean-square of the signal, or 0 when empty.
func RMS(signal []float64) float64 {
	if len(signal) == 0 {
		return 0
	}

	return math.Sqrt(floats.Dot(signal, signal) / float64(len(signal)))
}

// PeakToPeak returns max - min of the signal, or 0 when empty.
func PeakToPeak(signal []float64) float64 {
	if len(signal) == 0 {
		return 0
	}

	return floats.Max(signal) - floats.Min(signal)
}

// ZeroCrossings returns every index i at which signal[i] and signal[i+1]
// lie on different sides of zero. Zero itself counts as non-negative.
func ZeroCrossings(signal []float64) []int {
	var idx []int

	for i := 0; i+1 < len(signal); i++ {
		if (signal[i] < 0) != (signal[i+1] < 0) {
			idx = append(idx, i)
		}
	}

	return idx
}

// CrossingFrequency estimates a frequency from zero-crossing timestamps as
// 1 / (2 * mean interval between consecutive crossings).
//
// The estimate assumes a roughly sinusoidal signal with two crossings per
// period; for impulsive or noisy windows it is only indicative. ok is false
// for fewer than two crossings or a non-positive mean interval.
func CrossingFrequency(times []float64, crossings []int) (freq float64, ok bool) {
	if len(crossings) < 2 {
		return 0, false
	}

	intervals := make([]float64, len(crossings)-1)
	for i := range intervals {
		intervals[i] = times[crossings[i+1]] - times[crossings[i]]
	}

	period := 2 * stat.Mean(intervals, nil)
	if !(period > 0) || math.IsInf(period, 0) {
		return 0, false
	}

	return 1 / period, true
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
