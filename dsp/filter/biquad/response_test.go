package biquad

import (
	"math"
	"math/cmplx"
	"testing"
)

func TestMagnitudeSquared_MatchesResponse(t *testing.T) {
	c := lowpassish()
	sr := 10000.0

	for _, freq := range []float64{10, 50, 500, 1000, 4000} {
		h := c.Response(freq, sr)
		fromResponse := real(h)*real(h) + imag(h)*imag(h)
		if fromClosed := c.MagnitudeSquared(freq, sr); !almostEqual(fromClosed, fromResponse, 1e-10) {
			t.Errorf("freq=%v: MagnitudeSquared=%.15f, |Response|²=%.15f", freq, fromClosed, fromResponse)
		}
	}
}

func TestMagnitudeDB_MatchesMagnitudeSquared(t *testing.T) {
	c := lowpassish()
	for _, freq := range []float64{100, 1000, 3000} {
		db := c.MagnitudeDB(freq, 10000)
		if want := 10 * math.Log10(c.MagnitudeSquared(freq, 10000)); !almostEqual(db, want, 1e-12) {
			t.Errorf("freq=%v: MagnitudeDB=%v, want %v", freq, db, want)
		}
	}
}

func TestResponse_AtDCMatchesDCGain(t *testing.T) {
	c := lowpassish()
	g, _ := c.DCGain()
	if h := c.Response(0, 10000); !almostEqual(cmplx.Abs(h), g, 1e-12) {
		t.Fatalf("|H(0)|=%v, want %v", cmplx.Abs(h), g)
	}
}

func TestChain_Response_ProductOfSections(t *testing.T) {
	coeffs := twoSectionCoeffs()
	c := NewChain(coeffs, WithGain(2))
	for _, freq := range []float64{50, 700, 2500} {
		want := 2 * coeffs[0].Response(freq, 10000) * coeffs[1].Response(freq, 10000)
		if got := c.Response(freq, 10000); cmplx.Abs(got-want) > 1e-12 {
			t.Fatalf("freq=%v: got %v, want %v", freq, got, want)
		}
	}
}

func TestZeroPhaseGain_SquaresCascadeMagnitude(t *testing.T) {
	coeffs := twoSectionCoeffs()
	c := NewChain(coeffs)
	for _, freq := range []float64{50, 700, 2500} {
		m := cmplx.Abs(c.Response(freq, 10000))
		if got := ZeroPhaseGain(coeffs, freq, 10000); !almostEqual(got, m*m, 1e-12) {
			t.Fatalf("freq=%v: got %v, want %v", freq, got, m*m)
		}
	}
	if ZeroPhaseGain(nil, 100, 10000) != 1 {
		t.Fatal("empty cascade should have unit gain")
	}
}
