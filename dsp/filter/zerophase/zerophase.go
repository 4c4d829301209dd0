package zerophase

import (
	"errors"
	"fmt"

	"github.com/cwbudde/piezoscope/dsp/buffer"
	"github.com/cwbudde/piezoscope/dsp/filter/biquad"
)

// ErrTooShort is returned when the input is not longer than the padding the
// cascade needs on each side.
var ErrTooShort = errors.New("zerophase: input too short for padding")

var scratch = buffer.NewPool()

// PadLen returns the number of samples reflected onto each end of the block:
// three times the effective number of taps of the cascade. Each section
// contributes two taps, minus trailing taps that are zero in both numerator
// and denominator across the cascade.
func PadLen(coeffs []biquad.Coefficients) int {
	if len(coeffs) == 0 {
		return 0
	}

	ntaps := 2*len(coeffs) + 1

	zeroB2, zeroA2 := 0, 0
	for _, c := range coeffs {
		if c.B2 == 0 {
			zeroB2++
		}

		if c.A2 == 0 {
			zeroA2++
		}
	}

	ntaps -= min(zeroB2, zeroA2)

	return 3 * ntaps
}

// Filter returns x filtered forward and backward through the cascade.
// The output has the same length as x; x is not modified.
// An empty cascade returns a copy of x.
func Filter(x []float64, coeffs []biquad.Coefficients) ([]float64, error) {
	out := make([]float64, len(x))

	if len(coeffs) == 0 {
		copy(out, x)
		return out, nil
	}

	edge := PadLen(coeffs)
	n := len(x)

	if n <= edge {
		return nil, fmt.Errorf("%w: %d samples, need more than %d", ErrTooShort, n, edge)
	}

	ext := scratch.Get(n + 2*edge)
	defer scratch.Put(ext)

	e := ext.Samples()
	oddExtend(e, x, edge)

	chain := biquad.NewChain(coeffs)
	run(chain, e)
	reverse(e)
	run(chain, e)
	reverse(e)

	copy(out, e[edge:edge+n])

	return out, nil
}

// run filters buf in place starting from the steady state for buf[0].
// Cascades with a pole at z = 1 start from rest.
func run(chain *biquad.Chain, buf []float64) {
	chain.Reset()
	chain.Prime(buf[0])
	chain.ProcessBlock(buf)
}

// oddExtend writes x into dst with edge samples of odd reflection on each side.
// dst must have length len(x)+2*edge and edge must be < len(x).
func oddExtend(dst, x []float64, edge int) {
	n := len(x)
	first, last := x[0], x[n-1]

	for i := range edge {
		dst[i] = 2*first - x[edge-i]
		dst[edge+n+i] = 2*last - x[n-2-i]
	}

	copy(dst[edge:edge+n], x)
}

func reverse(buf []float64) {
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
}
