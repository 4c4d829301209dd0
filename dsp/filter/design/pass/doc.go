// Package pass designs higher-order Butterworth lowpass and highpass filters
// as cascades of biquad sections.
package pass
