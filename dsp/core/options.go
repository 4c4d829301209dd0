package core

// Acquisition defaults of the sensor front end: 10 kHz sampling with 30 s of
// retained history.
const (
	DefaultSampleRate = 10000
	DefaultBlockSize  = 100
	DefaultCapacity   = 300000
)

// ProcessorConfig defines common acquisition and processing settings.
type ProcessorConfig struct {
	SampleRate float64
	BlockSize  int
	Capacity   int
}

// ProcessorOption mutates a ProcessorConfig.
type ProcessorOption func(*ProcessorConfig)

// DefaultProcessorConfig returns the sensor front-end defaults.
func DefaultProcessorConfig() ProcessorConfig {
	return ProcessorConfig{
		SampleRate: DefaultSampleRate,
		BlockSize:  DefaultBlockSize,
		Capacity:   DefaultCapacity,
	}
}

// WithSampleRate sets the acquisition sample rate.
func WithSampleRate(sampleRate float64) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if sampleRate > 0 {
			cfg.SampleRate = sampleRate
		}
	}
}

// WithBlockSize sets the number of samples per batch for file and synthetic
// sources.
func WithBlockSize(blockSize int) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if blockSize > 0 {
			cfg.BlockSize = blockSize
		}
	}
}

// WithCapacity sets the number of samples retained in history.
func WithCapacity(capacity int) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if capacity > 0 {
			cfg.Capacity = capacity
		}
	}
}

// ApplyProcessorOptions applies zero or more options to the default config.
func ApplyProcessorOptions(opts ...ProcessorOption) ProcessorConfig {
	cfg := DefaultProcessorConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// HistorySeconds returns how much time the configured capacity spans.
func (c ProcessorConfig) HistorySeconds() float64 {
	if c.SampleRate <= 0 {
		return 0
	}

	return float64(c.Capacity) / c.SampleRate
}
