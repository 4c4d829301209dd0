package filterchain

import (
	"fmt"

	"gonum.org/v1/gonum/stat"

	"github.com/cwbudde/piezoscope/dsp/core"
	"github.com/cwbudde/piezoscope/dsp/filter/biquad"
	"github.com/cwbudde/piezoscope/dsp/filter/design"
	"github.com/cwbudde/piezoscope/dsp/filter/design/pass"
	"github.com/cwbudde/piezoscope/dsp/filter/zerophase"
)

const (
	// NominalOffset is the ADC mid-scale level, reported as the offset when
	// no stage is enabled.
	NominalOffset = core.ADCMidscale

	// MinStageLength is the window length a block must exceed before the
	// filter stages run. Shorter windows only have their mean removed.
	MinStageLength = 100

	butterworthOrder = 4
)

// Result is the conditioned window.
type Result struct {
	// Samples has the same length as the input.
	Samples []float64

	// Offset is the level removed from the input: the window mean when a
	// stage is enabled, NominalOffset otherwise.
	Offset float64

	// Active reports whether any stage was enabled.
	Active bool
}

// ZeroLine returns the amplitude that represents zero signal in Samples.
func (r Result) ZeroLine() float64 {
	if r.Active {
		return 0
	}

	return r.Offset
}

// Apply conditions samples acquired at sampleRate according to cfg.
//
// With no stage enabled the input is copied unchanged. Otherwise the window
// mean is subtracted and the enabled stages run in order high-pass, low-pass,
// notch, each only when the window is longer than MinStageLength.
// samples is never modified.
func Apply(samples []float64, cfg Config, sampleRate float64) (Result, error) {
	if err := cfg.Validate(sampleRate); err != nil {
		return Result{}, err
	}

	out := make([]float64, len(samples))
	copy(out, samples)

	if !cfg.Active() {
		return Result{Samples: out, Offset: NominalOffset}, nil
	}

	res := Result{Samples: out, Active: true}
	if len(out) == 0 {
		return res, nil
	}

	res.Offset = stat.Mean(out, nil)
	for i := range out {
		out[i] -= res.Offset
	}

	if len(out) <= MinStageLength {
		return res, nil
	}

	for _, st := range stages(cfg, sampleRate) {
		filtered, err := zerophase.Filter(res.Samples, st.coeffs)
		if err != nil {
			return Result{}, fmt.Errorf("filterchain: %s stage: %w", st.name, err)
		}

		res.Samples = filtered
	}

	return res, nil
}

// Gain returns the amplitude gain Apply gives a sinusoid at freqHz once
// the stages have settled: the product of the zero-phase stage responses.
// Mean removal is ignored, so an inactive Config has unit gain.
func (c Config) Gain(freqHz, sampleRate float64) (float64, error) {
	if err := c.Validate(sampleRate); err != nil {
		return 0, err
	}

	g := 1.0
	if !c.Active() {
		return g, nil
	}

	for _, st := range stages(c, sampleRate) {
		g *= biquad.ZeroPhaseGain(st.coeffs, freqHz, sampleRate)
	}

	return g, nil
}

type stage struct {
	name   string
	coeffs []biquad.Coefficients
}

// stages designs the enabled stages in processing order. cfg must be valid.
func stages(cfg Config, sampleRate float64) []stage {
	var out []stage

	if cfg.Highpass.Enabled {
		out = append(out, stage{
			name:   "highpass",
			coeffs: pass.ButterworthHP(cfg.Highpass.CutoffHz, butterworthOrder, sampleRate),
		})
	}

	if cfg.Lowpass.Enabled {
		out = append(out, stage{
			name:   "lowpass",
			coeffs: pass.ButterworthLP(cfg.Lowpass.CutoffHz, butterworthOrder, sampleRate),
		})
	}

	if cfg.Notch.Enabled {
		out = append(out, stage{
			name:   "notch",
			coeffs: []biquad.Coefficients{design.Notch(cfg.Notch.FreqHz, cfg.Notch.Q, sampleRate)},
		})
	}

	return out
}
