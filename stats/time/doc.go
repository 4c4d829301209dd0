// Package time computes time-domain statistics of a sampled signal window:
// RMS level, peak-to-peak swing, covered duration, observed sample rate and a
// zero-crossing frequency estimate.
//
// Values that cannot be derived from the window (too few samples, no time
// span, too few crossings) are reported as unavailable [Measurement] values
// instead of NaN or Inf.
package time
