package biquad

import "math"

// Coefficients holds the transfer function coefficients for a single
// second-order section (biquad). a0 is normalized to 1 and not stored.
//
// The sign convention follows Direct Form II Transposed:
//
//	y  = B0*x + d0
//	d0 = B1*x - A1*y + d1
//	d1 = B2*x - A2*y
type Coefficients struct {
	B0, B1, B2 float64 // feedforward (numerator)
	A1, A2     float64 // feedback (denominator)
}

// DCGain returns H(1), the section gain for a constant input.
// ok is false when the section has a pole at z = 1.
func (c Coefficients) DCGain() (gain float64, ok bool) {
	den := 1 + c.A1 + c.A2
	if den == 0 || math.IsNaN(den) || math.IsInf(den, 0) {
		return 0, false
	}

	return (c.B0 + c.B1 + c.B2) / den, true
}

// SteadyState returns the delay-line state the section settles into under a
// constant unit input. Scaling it by the first input sample starts a block
// without the step transient a zero state would produce.
func (c Coefficients) SteadyState() ([2]float64, bool) {
	y, ok := c.DCGain()
	if !ok {
		return [2]float64{}, false
	}

	return [2]float64{y - c.B0, c.B2 - c.A2*y}, true
}

// Section is a single biquad filter with coefficients and internal state.
// It implements Direct Form II Transposed processing.
type Section struct {
	Coefficients

	d0, d1 float64
}

// NewSection returns a Section initialized with the given coefficients
// and zero state.
func NewSection(c Coefficients) *Section {
	return &Section{Coefficients: c}
}

// ProcessSample filters one input sample and returns the output.
func (s *Section) ProcessSample(x float64) float64 {
	y := s.B0*x + s.d0
	s.d0 = s.B1*x - s.A1*y + s.d1
	s.d1 = s.B2*x - s.A2*y

	return y
}

// ProcessBlock filters buf in place without allocating.
func (s *Section) ProcessBlock(buf []float64) {
	d0, d1 := s.d0, s.d1
	for i, x := range buf {
		y := s.B0*x + d0
		d0 = s.B1*x - s.A1*y + d1
		d1 = s.B2*x - s.A2*y
		buf[i] = y
	}

	s.d0, s.d1 = d0, d1
}

// Reset clears the delay line to zero.
func (s *Section) Reset() {
	s.d0 = 0
	s.d1 = 0
}

// State returns the current delay-line state [d0, d1].
func (s *Section) State() [2]float64 {
	return [2]float64{s.d0, s.d1}
}

// SetState restores a previously saved delay-line state.
func (s *Section) SetState(state [2]float64) {
	s.d0 = state[0]
	s.d1 = state[1]
}
