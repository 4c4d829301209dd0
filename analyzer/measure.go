package analyzer

import (
	"fmt"

	"github.com/cwbudde/piezoscope/dsp/buffer"
	"github.com/cwbudde/piezoscope/dsp/core"
	"github.com/cwbudde/piezoscope/dsp/filterchain"
	"github.com/cwbudde/piezoscope/measure/region"
	"github.com/cwbudde/piezoscope/measure/spike"
	"github.com/cwbudde/piezoscope/stats/frequency"
	timestats "github.com/cwbudde/piezoscope/stats/time"
)

// Measurement summarises the signal inside a region.
type Measurement struct {
	Region region.Region

	// Stats are computed over the filtered samples inside the region.
	Stats timestats.Stats

	// DominantFrequency and DominantLevel describe the strongest spectral
	// component of the region, unavailable for very short regions.
	DominantFrequency timestats.Measurement
	DominantLevel     timestats.Measurement

	// DominantFilterGain is the filter chain gain in dB at DominantFrequency.
	DominantFilterGain timestats.Measurement
}

// SelectRegion makes [a, b] the current region, in either order, drops the
// spikes of the previous one and measures it. A region without samples
// stays selected and is reported as ErrEmptyRegion.
func (s *Session) SelectRegion(a, b float64) (Measurement, error) {
	r := region.New(a, b)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.region = r
	s.hasRegion = true
	s.spikes = nil

	m, err := s.measure(r)
	if err != nil {
		return Measurement{}, err
	}

	s.log.Infow("region selected", "start", r.Start, "end", r.End, "samples", m.Stats.SampleCount)

	return m, nil
}

// Measure returns the measurements of the current region.
func (s *Session) Measure() (Measurement, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.hasRegion {
		return Measurement{}, ErrNoRegion
	}

	return s.measure(s.region)
}

// DetectSpikes searches the current region with the detection parameters
// and keeps the result for Spikes.
func (s *Session) DetectSpikes() ([]spike.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.hasRegion {
		return nil, ErrNoRegion
	}

	times, amps, err := s.filteredRegion(s.region)
	if err != nil {
		return nil, err
	}

	records, err := spike.Detect(times, amps, s.detection)
	if err != nil {
		return nil, fmt.Errorf("analyzer: %w", err)
	}

	s.spikes = records

	s.log.Infow("spikes detected",
		"count", len(records),
		"threshold", s.detection.Threshold,
		"min_separation", s.detection.MinSeparation,
	)

	return append([]spike.Record(nil), records...), nil
}

// measure computes the measurements of r. Callers hold s.mu.
func (s *Session) measure(r region.Region) (Measurement, error) {
	times, amps, err := s.filteredRegion(r)
	if err != nil {
		return Measurement{}, err
	}

	m := Measurement{
		Region: r,
		Stats:  timestats.Calculate(times, amps),
	}

	if len(amps) >= frequency.MinSamples {
		peak, ok, err := frequency.Dominant(amps, s.proc.SampleRate)
		if err != nil {
			return Measurement{}, fmt.Errorf("analyzer: %w", err)
		}

		if ok {
			m.DominantFrequency = timestats.Available(peak.Frequency)
			m.DominantLevel = timestats.Available(peak.Level)

			g, err := s.filter.Gain(peak.Frequency, s.proc.SampleRate)
			if err != nil {
				return Measurement{}, fmt.Errorf("analyzer: %w", err)
			}

			if g > 0 {
				m.DominantFilterGain = timestats.Available(core.LinearToDB(g))
			}
		}
	}

	return m, nil
}

// filteredRegion filters the whole analysis snapshot and slices r out of it,
// so the filters settle on data outside the region. Callers hold s.mu.
func (s *Session) filteredRegion(r region.Region) (times, amps []float64, err error) {
	snap := s.snapshot()
	if snap.Len() == 0 {
		return nil, nil, ErrNoData
	}

	filtered, err := s.applyFilter(snap)
	if err != nil {
		return nil, nil, err
	}

	times, amps = region.Extract(snap.Times, filtered.Samples, r)
	if len(times) == 0 {
		return nil, nil, fmt.Errorf("%w: %.3f s to %.3f s", ErrEmptyRegion, r.Start, r.End)
	}

	return times, amps, nil
}

func (s *Session) applyFilter(snap buffer.Snapshot) (filterchain.Result, error) {
	res, err := filterchain.Apply(snap.Amplitudes, s.filter, s.proc.SampleRate)
	if err != nil {
		return filterchain.Result{}, fmt.Errorf("analyzer: %w", err)
	}

	return res, nil
}
