package signal

import (
	"fmt"
	"math"

	"github.com/cwbudde/piezoscope/dsp/core"
)

// Generator builds reproducible synthetic sensor signals at a fixed
// sample rate.
type Generator struct {
	sampleRate float64
	seed       int64
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed sets the noise seed. Equal seeds give identical signals.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.seed = seed
	}
}

// NewGenerator returns a Generator for the processor options, seeded with 1.
func NewGenerator(opts ...core.ProcessorOption) *Generator {
	return NewGeneratorWithOptions(opts)
}

// NewGeneratorWithOptions is NewGenerator with Generator options applied.
func NewGeneratorWithOptions(coreOpts []core.ProcessorOption, opts ...Option) *Generator {
	g := &Generator{
		sampleRate: core.ApplyProcessorOptions(coreOpts...).SampleRate,
		seed:       1,
	}

	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}

	return g
}

// SampleRate returns the rate in Hz signals are generated at.
func (g *Generator) SampleRate() float64 {
	return g.sampleRate
}

// Seed returns the noise seed.
func (g *Generator) Seed() int64 {
	return g.seed
}

// Ringdown generates the response of a struck piezo element: a sine at
// freqHz whose envelope decays with time constant decay (seconds).
//
//	x[n] = amplitude * exp(-t/decay) * sin(2*pi*freqHz*t),  t = n/fs
func (g *Generator) Ringdown(freqHz, amplitude, decay float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("ringdown samples must be > 0: %d", samples)
	}

	if decay <= 0 {
		return nil, fmt.Errorf("ringdown decay must be > 0: %f", decay)
	}

	out := make([]float64, samples)
	for n := range out {
		out[n] = ringdown(float64(n)/g.sampleRate, freqHz, amplitude, decay)
	}

	return out, nil
}

func ringdown(t, freqHz, amplitude, decay float64) float64 {
	return amplitude * mathExp(-t/decay) * math.Sin(2*math.Pi*freqHz*t)
}
