// Package zerophase runs biquad cascades forward and backward over a block so
// the result has no phase delay.
//
// The block is padded at both ends with an odd reflection about its end
// samples and each pass starts from the cascade's steady state scaled to the
// first input sample. Together these keep edge transients small, so features
// such as spikes stay where they occurred in time.
package zerophase
