package frequency

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/dsp/fourier"
	"gonum.org/v1/gonum/stat"

	"github.com/cwbudde/piezoscope/dsp/core"
	"github.com/cwbudde/piezoscope/dsp/window"
)

// MinSamples is the shortest block Analyze accepts.
const MinSamples = 8

// ErrTooShort is returned for blocks shorter than MinSamples.
var ErrTooShort = errors.New("frequency: block too short")

// Spectrum is a one-sided magnitude spectrum, bins 0 (DC) to Nyquist.
// Magnitudes are scaled so a bin-centred sine of amplitude A reads A.
type Spectrum struct {
	Magnitude  []float64
	SampleRate float64

	// Size is the transform length the spectrum was computed with.
	Size int
}

// Peak describes a spectral maximum.
type Peak struct {
	Frequency float64 // Hz
	Amplitude float64 // linear, same units as the input
	Level     float64 // dB re 1 input unit
}

// Analyze computes the spectrum of x sampled at sampleRate. The block mean is
// removed before windowing so a DC offset does not leak into the low bins.
// x is not modified.
func Analyze(x []float64, sampleRate float64) (Spectrum, error) {
	if !(sampleRate > 0) || math.IsInf(sampleRate, 0) {
		return Spectrum{}, fmt.Errorf("frequency: sample rate must be > 0: %v", sampleRate)
	}

	n := len(x)
	if n < MinSamples {
		return Spectrum{}, fmt.Errorf("%w: %d samples, need %d", ErrTooShort, n, MinSamples)
	}

	buf := make([]float64, n)
	mean := stat.Mean(x, nil)

	for i, v := range x {
		buf[i] = v - mean
	}

	cg, err := window.Taper(buf, window.WithPeriodic())
	if err != nil {
		return Spectrum{}, fmt.Errorf("frequency: %w", err)
	}

	coeffs := fourier.NewFFT(n).Coefficients(nil, buf)

	re := make([]float64, len(coeffs))
	im := make([]float64, len(coeffs))

	for i, c := range coeffs {
		re[i] = real(c)
		im[i] = imag(c)
	}

	mag := make([]float64, len(coeffs))
	vecmath.Magnitude(mag, re, im)

	// One-sided amplitude scaling; DC and an even-length Nyquist bin have no
	// mirrored partner.
	scale := 2 / (float64(n) * cg)
	for i := range mag {
		mag[i] *= scale
	}

	mag[0] /= 2
	if n%2 == 0 {
		mag[len(mag)-1] /= 2
	}

	return Spectrum{Magnitude: mag, SampleRate: sampleRate, Size: n}, nil
}

// BinWidth returns the frequency spacing between bins in Hz.
func (s Spectrum) BinWidth() float64 {
	if s.Size == 0 {
		return 0
	}

	return s.SampleRate / float64(s.Size)
}

// Freq returns the centre frequency of bin i in Hz.
func (s Spectrum) Freq(i int) float64 {
	return float64(i) * s.BinWidth()
}

// Dominant returns the strongest non-DC component. ok is false when the
// spectrum holds no energy outside DC.
func (s Spectrum) Dominant() (p Peak, ok bool) {
	if len(s.Magnitude) < 3 {
		return Peak{}, false
	}

	k := 1
	for i := 2; i < len(s.Magnitude); i++ {
		if s.Magnitude[i] > s.Magnitude[k] {
			k = i
		}
	}

	peak := s.Magnitude[k]
	if !(peak > 0) {
		return Peak{}, false
	}

	offset, amp := 0.0, peak
	if k+1 < len(s.Magnitude) {
		offset, amp = interpolate(s.Magnitude[k-1], peak, s.Magnitude[k+1])
	}

	return Peak{
		Frequency: (float64(k) + offset) * s.BinWidth(),
		Amplitude: amp,
		Level:     core.LinearToDB(amp),
	}, true
}

// Centroid returns the magnitude-weighted mean frequency in Hz, excluding DC.
//
//	centroid = sum(f_i * |X_i|) / sum(|X_i|)
func (s Spectrum) Centroid() float64 {
	sum, weighted := 0.0, 0.0

	for i := 1; i < len(s.Magnitude); i++ {
		sum += s.Magnitude[i]
		weighted += s.Freq(i) * s.Magnitude[i]
	}

	if sum == 0 {
		return 0
	}

	return weighted / sum
}

// Dominant analyzes x and returns its strongest non-DC component.
func Dominant(x []float64, sampleRate float64) (Peak, bool, error) {
	s, err := Analyze(x, sampleRate)
	if err != nil {
		return Peak{}, false, err
	}

	p, ok := s.Dominant()

	return p, ok, nil
}

// interpolate fits a parabola through the log magnitudes of three adjacent
// bins and returns the vertex offset from the centre bin (in bins) and the
// interpolated linear magnitude. Zero neighbours fall back to the centre bin.
func interpolate(left, centre, right float64) (offset, magnitude float64) {
	if left <= 0 || right <= 0 {
		return 0, centre
	}

	a, b, c := math.Log(left), math.Log(centre), math.Log(right)

	den := a - 2*b + c
	if den >= 0 {
		return 0, centre
	}

	offset = 0.5 * (a - c) / den

	return offset, math.Exp(b - 0.25*(a-c)*offset)
}
