package core

import "math"

// Converter scale of the sensor front end.
const (
	ADCBits     = 12
	ADCMax      = 1<<ADCBits - 1
	ADCMidscale = 1 << (ADCBits - 1)
)

// Clamp limits value to [lo, hi]. Swapped bounds are reordered.
func Clamp(value, lo, hi float64) float64 {
	if lo > hi {
		lo, hi = hi, lo
	}

	return math.Min(math.Max(value, lo), hi)
}

// ToADC rounds v to the nearest converter code, saturating at 0 and ADCMax.
// NaN maps to mid-scale.
func ToADC(v float64) uint16 {
	if math.IsNaN(v) {
		return ADCMidscale
	}

	return uint16(math.Round(Clamp(v, 0, ADCMax)))
}

// LinearToDB converts an amplitude ratio to dB (20*log10).
// Zero gives -Inf and negative ratios give NaN.
func LinearToDB(linear float64) float64 {
	switch {
	case linear < 0:
		return math.NaN()
	case linear == 0:
		return math.Inf(-1)
	default:
		return 20 * math.Log10(linear)
	}
}
