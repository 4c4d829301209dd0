package window

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Option configures window generation.
type Option func(*config)

type config struct {
	periodic bool
}

// WithPeriodic selects the periodic form used for FFT framing: the window
// spans size+1 points and the last one is dropped.
func WithPeriodic() Option {
	return func(c *config) {
		c.periodic = true
	}
}

// Hann returns size coefficients of 0.5 - 0.5*cos(2*pi*n/D), where D is
// size-1 for the symmetric form and size for the periodic form.
func Hann(size int, opts ...Option) ([]float64, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}

	var cfg config
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	span := float64(size - 1)
	if cfg.periodic {
		span = float64(size)
	}

	w := make([]float64, size)
	if span == 0 {
		return w, nil
	}

	for n := range w {
		w[n] = 0.5 - 0.5*math.Cos(2*math.Pi*float64(n)/span)
	}

	return w, nil
}

// Taper multiplies buf in place by a Hann window of the same length and
// returns the window's coherent gain.
func Taper(buf []float64, opts ...Option) (float64, error) {
	w, err := Hann(len(buf), opts...)
	if err != nil {
		return 0, err
	}

	cg, err := CoherentGain(w)
	if err != nil {
		return 0, err
	}

	vecmath.MulBlockInPlace(buf, w)

	return cg, nil
}

// CoherentGain returns sum(w[n]) / N, the window's gain for a bin-centred
// tone. Spectral amplitudes are divided by it to undo the window loss.
func CoherentGain(coeffs []float64) (float64, error) {
	sum := 0.0
	for _, c := range coeffs {
		sum += c
	}

	if sum == 0 {
		return 0, ErrZeroGain
	}

	return sum / float64(len(coeffs)), nil
}
