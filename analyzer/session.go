package analyzer

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/cwbudde/piezoscope/dsp/buffer"
	"github.com/cwbudde/piezoscope/dsp/core"
	"github.com/cwbudde/piezoscope/dsp/filterchain"
	"github.com/cwbudde/piezoscope/measure/region"
	"github.com/cwbudde/piezoscope/measure/spike"
	"github.com/cwbudde/piezoscope/source"
)

// Session is one acquisition and analysis session. Its methods are safe for
// concurrent use; one goroutine is expected to feed samples.
type Session struct {
	id   uuid.UUID
	log  *zap.SugaredLogger
	proc core.ProcessorConfig
	ring *buffer.Ring

	mu        sync.RWMutex
	filter    filterchain.Config
	detection spike.Params
	frozen    *buffer.Snapshot
	region    region.Region
	hasRegion bool
	spikes    []spike.Record
}

// New creates a session with an empty history.
func New(opts ...Option) (*Session, error) {
	cfg := defaultConfig()

	for _, opt := range opts {
		if opt == nil {
			continue
		}

		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	rate := cfg.proc.SampleRate

	if err := cfg.filter.Validate(rate); err != nil {
		return nil, err
	}

	detection := spike.DefaultParams(rate)
	if cfg.detection != nil {
		detection = withRate(*cfg.detection, rate)
	}

	if err := detection.Validate(); err != nil {
		return nil, err
	}

	ring, err := buffer.NewRing(cfg.proc.Capacity, rate)
	if err != nil {
		return nil, fmt.Errorf("analyzer: %w", err)
	}

	id := uuid.New()

	s := &Session{
		id:        id,
		log:       cfg.logger.With("session", id.String()),
		proc:      cfg.proc,
		ring:      ring,
		filter:    cfg.filter,
		detection: detection,
	}

	s.log.Infow("session started",
		"sample_rate", rate,
		"capacity", cfg.proc.Capacity,
		"history_seconds", cfg.proc.HistorySeconds(),
	)

	return s, nil
}

// ID returns the session identifier used in log records.
func (s *Session) ID() uuid.UUID {
	return s.id
}

// SampleRate returns the nominal acquisition rate in Hz.
func (s *Session) SampleRate() float64 {
	return s.proc.SampleRate
}

// Ingest appends a batch to the history. Ingest continues while paused.
func (s *Session) Ingest(b source.Batch) {
	s.ring.Append(b.Timestamp, b.Samples)
}

// Run feeds the session from src until the source is exhausted or ctx is
// cancelled. Cancellation is not reported as an error.
func (s *Session) Run(ctx context.Context, src source.Source) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	batches := make(chan source.Batch, 16)
	done := make(chan error, 1)

	go func() {
		done <- src.Stream(ctx, batches)
		close(batches)
	}()

	for b := range batches {
		s.Ingest(b)
	}

	err := <-done
	if err != nil && !errors.Is(err, context.Canceled) {
		s.log.Errorw("source failed", "error", err)
		return fmt.Errorf("analyzer: source: %w", err)
	}

	s.log.Infow("source finished", "received", s.ring.Total())

	return nil
}

// Pause freezes the data under analysis. Acquisition continues.
func (s *Session) Pause() {
	snap := s.ring.Snapshot()

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.frozen == nil {
		s.frozen = &snap
		s.log.Infow("paused", "samples", snap.Len())
	}
}

// Resume returns analysis to live data.
func (s *Session) Resume() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.frozen != nil {
		s.frozen = nil
		s.log.Infow("resumed")
	}
}

// Paused reports whether analysis is frozen.
func (s *Session) Paused() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.frozen != nil
}

// Clear drops the history, the frozen snapshot, the region and the spikes.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ring.Clear()
	s.frozen = nil
	s.hasRegion = false
	s.spikes = nil

	s.log.Infow("cleared")
}

// SetFilter replaces the filter chain configuration.
func (s *Session) SetFilter(cfg filterchain.Config) error {
	if err := cfg.Validate(s.proc.SampleRate); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.filter = cfg
	s.log.Debugw("filter changed", "filter", cfg)

	return nil
}

// Filter returns the active filter chain configuration.
func (s *Session) Filter() filterchain.Config {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.filter
}

// SetDetection replaces the spike detection parameters. A zero SampleRate
// takes the session rate.
func (s *Session) SetDetection(p spike.Params) error {
	p = withRate(p, s.proc.SampleRate)
	if err := p.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.detection = p
	s.log.Debugw("detection changed", "threshold", p.Threshold, "min_separation", p.MinSeparation)

	return nil
}

// Detection returns the spike detection parameters.
func (s *Session) Detection() spike.Params {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.detection
}

// Region returns the selected region, if any.
func (s *Session) Region() (region.Region, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.region, s.hasRegion
}

// ClearRegion drops the region and its spikes.
func (s *Session) ClearRegion() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.hasRegion = false
	s.spikes = nil
}

// Bounds returns the time span of the data under analysis. ok is false when
// there is none.
func (s *Session) Bounds() (r region.Region, ok bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot()
	if snap.Len() == 0 {
		return region.Region{}, false
	}

	return region.New(snap.Times[0], snap.Times[snap.Len()-1]), true
}

// Spikes returns a copy of the spikes found by the last DetectSpikes call.
func (s *Session) Spikes() []spike.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.spikes)
}

// snapshot returns the data under analysis: the frozen snapshot while
// paused, a fresh copy of the history otherwise. Callers hold s.mu.
func (s *Session) snapshot() buffer.Snapshot {
	if s.frozen != nil {
		return *s.frozen
	}

	return s.ring.Snapshot()
}

func withRate(p spike.Params, rate float64) spike.Params {
	if p.SampleRate == 0 {
		p.SampleRate = rate
	}

	return p
}
