// Package biquad provides biquad (second-order IIR) filter runtime primitives.
//
// A [Section] implements Direct Form II Transposed processing for a single
// second-order section defined by [Coefficients]. Multiple sections can be
// cascaded via [Chain] for higher-order filters such as Butterworth designs.
//
// Steady-state delay lines ([Coefficients.SteadyState], [Chain.Prime]) let
// block-oriented callers start a pass at rest on the first input level, which
// forward-backward filtering in dsp/filter/zerophase relies on.
//
// Coefficient design lives in dsp/filter/design.
package biquad
