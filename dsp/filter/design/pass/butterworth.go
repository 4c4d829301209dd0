package pass

import (
	"math"

	"github.com/cwbudde/piezoscope/dsp/filter/biquad"
	"github.com/cwbudde/piezoscope/dsp/filter/design"
)

// ButterworthLP designs an order-n lowpass Butterworth cascade at freq.
// Odd orders end in a first-order section (B2 = A2 = 0).
// Returns nil when order <= 0 or freq is outside (0, Nyquist).
func ButterworthLP(freq float64, order int, sampleRate float64) []biquad.Coefficients {
	return cascade(freq, order, sampleRate, design.Lowpass, firstOrderLP)
}

// ButterworthHP designs an order-n highpass Butterworth cascade at freq.
// Odd orders end in a first-order section (B2 = A2 = 0).
// Returns nil when order <= 0 or freq is outside (0, Nyquist).
func ButterworthHP(freq float64, order int, sampleRate float64) []biquad.Coefficients {
	return cascade(freq, order, sampleRate, design.Highpass, firstOrderHP)
}

type sectionDesigner func(freq, q, sampleRate float64) biquad.Coefficients

// cascade places the biquads from the highest Q down, followed by the real
// pole for odd orders.
func cascade(freq float64, order int, sampleRate float64, second sectionDesigner,
	first func(k float64) biquad.Coefficients,
) []biquad.Coefficients {
	if order <= 0 || !design.ValidFrequency(freq, sampleRate) {
		return nil
	}

	sections := make([]biquad.Coefficients, 0, (order+1)/2)
	for i := order/2 - 1; i >= 0; i-- {
		sections = append(sections, second(freq, butterworthQ(order, i), sampleRate))
	}

	if order%2 != 0 {
		sections = append(sections, first(math.Tan(math.Pi*freq/sampleRate)))
	}

	return sections
}

// butterworthQ is the Q of biquad i of an order-n Butterworth filter, from
// the pole angle (2i+1)π/2n.
func butterworthQ(order, i int) float64 {
	return 1 / (2 * math.Sin(math.Pi*float64(2*i+1)/float64(2*order)))
}

// firstOrderLP and firstOrderHP take the pre-warped k = tan(π f/fs).
func firstOrderLP(k float64) biquad.Coefficients {
	g := 1 / (1 + k)
	return biquad.Coefficients{B0: k * g, B1: k * g, A1: (k - 1) * g}
}

func firstOrderHP(k float64) biquad.Coefficients {
	g := 1 / (1 + k)
	return biquad.Coefficients{B0: g, B1: -g, A1: (k - 1) * g}
}
