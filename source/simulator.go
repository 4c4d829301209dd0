package source

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/cwbudde/piezoscope/dsp/core"
	"github.com/cwbudde/piezoscope/dsp/signal"
)

// Simulator streams a synthetic piezo sensor trace.
type Simulator struct {
	sensor *signal.Sensor
	opts   options
}

// NewSimulator returns a simulated sensor described by cfg.
func NewSimulator(cfg signal.SensorConfig, opts ...Option) (*Simulator, error) {
	o := applyOptions(opts)

	gen := signal.NewGeneratorWithOptions(
		[]core.ProcessorOption{core.WithSampleRate(o.proc.SampleRate)},
		signal.WithSeed(o.seed),
	)

	sensor, err := gen.Sensor(cfg)
	if err != nil {
		return nil, fmt.Errorf("source: simulator: %w", err)
	}

	return &Simulator{sensor: sensor, opts: o}, nil
}

// SampleRate returns the simulated acquisition rate in Hz.
func (s *Simulator) SampleRate() float64 {
	return s.sensor.SampleRate()
}

// Stream implements Source.
func (s *Simulator) Stream(ctx context.Context, out chan<- Batch) error {
	rate := s.sensor.SampleRate()
	block := s.opts.proc.BlockSize

	limit := int64(math.MaxInt64)
	if s.opts.duration > 0 {
		limit = int64(math.Round(s.opts.duration * rate))
	}

	var tick <-chan time.Time
	if s.opts.realtime {
		ticker := time.NewTicker(time.Duration(float64(block) / rate * float64(time.Second)))
		defer ticker.Stop()
		tick = ticker.C
	}

	buf := make([]float64, block)

	for s.sensor.Position() < limit {
		if tick != nil {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-tick:
			}
		}

		n := int(min(int64(block), limit-s.sensor.Position()))
		start := s.sensor.Position()

		s.sensor.Read(buf[:n])

		samples := make([]uint16, n)
		for i, v := range buf[:n] {
			samples[i] = core.ToADC(v)
		}

		if err := send(ctx, out, Batch{Timestamp: float64(start) / rate, Samples: samples}); err != nil {
			return err
		}
	}

	return nil
}
