package spike

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/piezoscope/dsp/peak"
)

// Defaults used by the acquisition front end.
const (
	DefaultThreshold     = 100.0
	DefaultMinSeparation = 0.05
)

var (
	// ErrNoSamples is returned when there is nothing to search.
	ErrNoSamples = errors.New("spike: no samples")
	// ErrLengthMismatch is returned when the time and amplitude channels differ in length.
	ErrLengthMismatch = errors.New("spike: time and amplitude lengths differ")
	// ErrInvalidParams is returned for out-of-range detection parameters.
	ErrInvalidParams = errors.New("spike: invalid parameters")
)

// Params configures detection.
type Params struct {
	// Threshold is the minimum rectified amplitude of a spike.
	Threshold float64
	// MinSeparation is the minimum time between spikes in seconds.
	MinSeparation float64
	// SampleRate converts MinSeparation to samples.
	SampleRate float64
}

// DefaultParams returns the default detection parameters at sampleRate.
func DefaultParams(sampleRate float64) Params {
	return Params{
		Threshold:     DefaultThreshold,
		MinSeparation: DefaultMinSeparation,
		SampleRate:    sampleRate,
	}
}

// Validate reports whether p can be used for detection.
func (p Params) Validate() error {
	switch {
	case !finite(p.Threshold) || p.Threshold < 0:
		return fmt.Errorf("%w: threshold must be >= 0: %v", ErrInvalidParams, p.Threshold)
	case !finite(p.MinSeparation) || p.MinSeparation < 0:
		return fmt.Errorf("%w: min separation must be >= 0: %v", ErrInvalidParams, p.MinSeparation)
	case !finite(p.SampleRate) || p.SampleRate <= 0:
		return fmt.Errorf("%w: sample rate must be > 0: %v", ErrInvalidParams, p.SampleRate)
	}

	return nil
}

// Distance returns the minimum spike separation in samples, at least 1.
func (p Params) Distance() int {
	return max(1, int(p.MinSeparation*p.SampleRate))
}

// Record is one detected spike.
type Record struct {
	// Index is the sample index of the rectified peak in the searched slice.
	Index    int
	Time     float64
	LocalMax float64
	LocalMin float64
}

// Amplitude returns the peak-to-peak swing around the spike.
func (r Record) Amplitude() float64 {
	return r.LocalMax - r.LocalMin
}

// Detect finds spikes in amps, time-stamped by times, in ascending time
// order. An empty result with a nil error means nothing cleared the
// threshold.
func Detect(times, amps []float64, p Params) ([]Record, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	if len(times) != len(amps) {
		return nil, fmt.Errorf("%w: %d times, %d amplitudes", ErrLengthMismatch, len(times), len(amps))
	}

	if len(amps) == 0 {
		return nil, ErrNoSamples
	}

	rectified := make([]float64, len(amps))
	for i, v := range amps {
		rectified[i] = math.Abs(v)
	}

	distance := p.Distance()

	peaks, err := peak.Find(rectified, peak.WithHeight(p.Threshold), peak.WithDistance(distance))
	if err != nil {
		return nil, fmt.Errorf("spike: %w", err)
	}

	half := distance / 2
	records := make([]Record, 0, len(peaks))

	for _, idx := range peaks {
		lo := max(0, idx-half)
		hi := min(len(amps), idx+half+1)
		around := amps[lo:hi]

		records = append(records, Record{
			Index:    idx,
			Time:     times[idx],
			LocalMax: floats.Max(around),
			LocalMin: floats.Min(around),
		})
	}

	return records, nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
