package source

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/cwbudde/piezoscope/dsp/core"
)

// Serial link defaults of the sensor firmware.
const (
	DefaultBaud           = 921600
	DefaultReconnectDelay = time.Second
)

// Batch is a run of consecutive samples.
type Batch struct {
	// Timestamp of the first sample in seconds.
	Timestamp float64
	// Samples are raw ADC readings, nominally centred on 2048.
	Samples []uint16
}

// Source streams sample batches until it is exhausted or ctx is cancelled.
//
// Stream sends every batch on out and never closes it. It returns nil when
// the source is exhausted and ctx.Err() when cancelled.
type Source interface {
	Stream(ctx context.Context, out chan<- Batch) error
}

// Option configures a source. Each source reads the settings that apply to it.
type Option func(*options)

type options struct {
	proc           core.ProcessorConfig
	logger         *zap.SugaredLogger
	baud           int
	reconnectDelay time.Duration
	onStatus       func(string)
	realtime       bool
	duration       float64
	seed           int64
}

func applyOptions(opts []Option) options {
	o := options{
		proc:           core.DefaultProcessorConfig(),
		logger:         zap.NewNop().Sugar(),
		baud:           DefaultBaud,
		reconnectDelay: DefaultReconnectDelay,
		seed:           1,
	}

	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger *zap.SugaredLogger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithSampleRate sets the rate of generated samples.
func WithSampleRate(hz float64) Option {
	return func(o *options) {
		core.WithSampleRate(hz)(&o.proc)
	}
}

// WithBlockSize sets the number of samples per batch for sources that choose
// their own batching.
func WithBlockSize(n int) Option {
	return func(o *options) {
		core.WithBlockSize(n)(&o.proc)
	}
}

// WithBaud sets the serial line speed.
func WithBaud(baud int) Option {
	return func(o *options) {
		if baud > 0 {
			o.baud = baud
		}
	}
}

// WithReconnectDelay sets the pause between serial reconnection attempts.
func WithReconnectDelay(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.reconnectDelay = d
		}
	}
}

// WithStatusHandler registers a callback for device status lines.
func WithStatusHandler(fn func(message string)) Option {
	return func(o *options) {
		o.onStatus = fn
	}
}

// WithRealtime paces generated batches at the sample rate instead of
// producing them as fast as the consumer accepts them.
func WithRealtime(realtime bool) Option {
	return func(o *options) {
		o.realtime = realtime
	}
}

// WithDuration stops a generated stream after the given number of seconds.
// Zero streams until cancelled.
func WithDuration(seconds float64) Option {
	return func(o *options) {
		if seconds >= 0 {
			o.duration = seconds
		}
	}
}

// WithSeed sets the noise seed of generated streams.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.seed = seed
	}
}

func send(ctx context.Context, out chan<- Batch, b Batch) error {
	select {
	case out <- b:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
