package analyzer

import (
	"fmt"
	"math"

	timestats "github.com/cwbudde/piezoscope/stats/time"
)

// Default display model settings.
const (
	DefaultOverviewWindow = 5.0
	DefaultOverviewPoints = 10000
)

// Overview is the live display model: buffer health plus a decimated,
// filtered trace of the most recent samples.
type Overview struct {
	Paused bool

	// Received counts every sample since the session start or last Clear.
	Received uint64
	// Retained is the number of samples held in the history.
	Retained int
	// BufferDuration is the time spanned by the history.
	BufferDuration float64
	// ActualRate is the observed rate over the history.
	ActualRate timestats.Measurement

	// FilterActive, Offset and ZeroLine describe the baseline of the trace.
	FilterActive bool
	Offset       float64
	ZeroLine     float64

	// Stats of the filtered window.
	Stats timestats.Stats

	// Times and Amplitudes are the decimated filtered window.
	Times      []float64
	Amplitudes []float64
}

// Overview builds the display model for the last window seconds, decimated
// to at most maxPoints points. maxPoints <= 0 disables decimation.
func (s *Session) Overview(window float64, maxPoints int) (Overview, error) {
	if !(window > 0) || math.IsInf(window, 0) {
		return Overview{}, fmt.Errorf("overview window must be > 0: %v", window)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot()

	ov := Overview{
		Paused:         s.frozen != nil,
		Received:       snap.Total,
		Retained:       snap.Len(),
		BufferDuration: snap.Duration(),
	}

	if rate, ok := snap.Rate(); ok {
		ov.ActualRate = timestats.Available(rate)
	}

	tail := snap.Tail(window)

	filtered, err := s.applyFilter(tail)
	if err != nil {
		return Overview{}, err
	}

	ov.FilterActive = filtered.Active
	ov.Offset = filtered.Offset
	ov.ZeroLine = filtered.ZeroLine()
	ov.Stats = timestats.Calculate(tail.Times, filtered.Samples)
	ov.Times, ov.Amplitudes = decimate(tail.Times, filtered.Samples, maxPoints)

	return ov, nil
}

// decimate keeps every step-th point, step = len/maxPoints, when the series
// is longer than maxPoints. The inputs are never modified.
func decimate(times, amps []float64, maxPoints int) (t, a []float64) {
	n := len(times)
	if maxPoints <= 0 || n <= maxPoints {
		return append([]float64(nil), times...), append([]float64(nil), amps...)
	}

	step := n / maxPoints
	t = make([]float64, 0, n/step+1)
	a = make([]float64, 0, n/step+1)

	for i := 0; i < n; i += step {
		t = append(t, times[i])
		a = append(a, amps[i])
	}

	return t, a
}
