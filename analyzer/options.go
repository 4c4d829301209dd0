package analyzer

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/cwbudde/piezoscope/dsp/core"
	"github.com/cwbudde/piezoscope/dsp/filterchain"
	"github.com/cwbudde/piezoscope/measure/spike"
)

// Option configures a Session.
type Option func(*config) error

type config struct {
	proc      core.ProcessorConfig
	logger    *zap.SugaredLogger
	filter    filterchain.Config
	detection *spike.Params
}

func defaultConfig() config {
	return config{
		proc:   core.DefaultProcessorConfig(),
		logger: zap.NewNop().Sugar(),
		filter: filterchain.DefaultConfig(),
	}
}

// WithProcessorOptions sets the sample rate and history capacity.
func WithProcessorOptions(opts ...core.ProcessorOption) Option {
	return func(cfg *config) error {
		for _, opt := range opts {
			if opt != nil {
				opt(&cfg.proc)
			}
		}

		return nil
	}
}

// WithLogger sets the session logger.
func WithLogger(logger *zap.SugaredLogger) Option {
	return func(cfg *config) error {
		if logger == nil {
			return fmt.Errorf("analyzer logger must not be nil")
		}

		cfg.logger = logger

		return nil
	}
}

// WithFilter sets the initial filter chain.
func WithFilter(f filterchain.Config) Option {
	return func(cfg *config) error {
		cfg.filter = f
		return nil
	}
}

// WithDetection sets the initial spike detection parameters. A zero
// SampleRate takes the session rate.
func WithDetection(p spike.Params) Option {
	return func(cfg *config) error {
		cfg.detection = &p
		return nil
	}
}
