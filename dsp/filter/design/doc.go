// Package design provides digital IIR filter coefficient designers.
//
// The functions in this package produce biquad coefficients consumable by
// dsp/filter/biquad for runtime processing: RBJ-style Lowpass and Highpass
// sections and a bandwidth-parameterised Notch.
//
// The sub-package design/pass cascades these into higher-order Butterworth
// lowpass and highpass filters.
package design
