// Package frequency estimates the spectral content of a signal window.
//
// [Analyze] windows the block with a periodic Hann window, transforms it and
// returns an amplitude-corrected one-sided magnitude [Spectrum]. The dominant
// tone is refined between bins by fitting a parabola to the log magnitudes
// around the strongest bin.
package frequency
