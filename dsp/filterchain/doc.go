// Package filterchain conditions a window of raw sensor samples for display
// and analysis.
//
// [Apply] removes the DC level of the window and then runs the enabled
// stages in a fixed order: a 4th-order Butterworth high-pass, a 4th-order
// Butterworth low-pass and a second-order notch for mains hum. Every stage is
// applied forward and backward so spikes keep their timing. Calls are
// stateless; each one designs its filters from the [Config] it is given.
package filterchain
