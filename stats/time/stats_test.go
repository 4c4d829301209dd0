package time

import (
	"math"
	"reflect"
	"testing"

	"github.com/cwbudde/piezoscope/internal/testutil"
)

const tolerance = 1e-10

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func checkMeasurement(t *testing.T, name string, got Measurement, want float64, tol float64) {
	t.Helper()
	if !got.Valid {
		t.Fatalf("%s unavailable, want %v", name, want)
	}
	if !almostEqual(got.Value, want, tol) {
		t.Fatalf("%s = %v, want %v", name, got.Value, want)
	}
}

func TestCalculate_AlternatingSignal(t *testing.T) {
	times := []float64{0, 1, 2, 3, 4, 5}
	amps := []float64{0, 5, -5, 5, -5, 0}

	s := Calculate(times, amps)

	if s.ZeroCrossings != 4 {
		t.Fatalf("ZeroCrossings = %d, want 4", s.ZeroCrossings)
	}
	checkMeasurement(t, "AvgFrequency", s.AvgFrequency, 0.5, tolerance)
	checkMeasurement(t, "PeakToPeak", s.PeakToPeak, 10, tolerance)
	checkMeasurement(t, "RMS", s.RMS, math.Sqrt(100.0/6), tolerance)
	checkMeasurement(t, "Duration", s.Duration, 5, tolerance)
	checkMeasurement(t, "SampleRate", s.SampleRate, 6.0/5, tolerance)
	if s.SampleCount != 6 {
		t.Fatalf("SampleCount = %d, want 6", s.SampleCount)
	}
}

func TestCalculate_ConstantSeries(t *testing.T) {
	times := testutil.Timeline(0, 10000, 1000)
	amps := testutil.DC(3, 1000)

	s := Calculate(times, amps)

	checkMeasurement(t, "RMS", s.RMS, 3, tolerance)
	checkMeasurement(t, "PeakToPeak", s.PeakToPeak, 0, 0)
	if s.ZeroCrossings != 0 {
		t.Fatalf("ZeroCrossings = %d, want 0", s.ZeroCrossings)
	}
	if s.AvgFrequency.Valid {
		t.Fatalf("AvgFrequency = %v, want unavailable", s.AvgFrequency)
	}
}

func TestCalculate_SineFrequency(t *testing.T) {
	const sr = 10000.0

	times := testutil.Timeline(2.5, sr, 10000)
	// Quarter-sample phase offset keeps samples off exact zeros.
	amps := make([]float64, len(times))
	for i := range amps {
		amps[i] = 100 * math.Sin(2*math.Pi*50*(float64(i)+0.25)/sr)
	}

	s := Calculate(times, amps)

	checkMeasurement(t, "AvgFrequency", s.AvgFrequency, 50, 0.01)
	checkMeasurement(t, "RMS", s.RMS, 100/math.Sqrt2, 1e-6)
	checkMeasurement(t, "SampleRate", s.SampleRate, sr*10000/9999, 1e-6)
}

func TestCalculate_EmptySignal(t *testing.T) {
	s := Calculate(nil, nil)
	if !reflect.DeepEqual(s, Stats{}) {
		t.Fatalf("got %+v, want zero Stats", s)
	}
	if s.RMS.Valid || s.PeakToPeak.Valid || s.Duration.Valid || s.SampleRate.Valid {
		t.Fatal("empty window reported a valid measurement")
	}
}

func TestCalculate_SingleSample(t *testing.T) {
	s := Calculate([]float64{1.5}, []float64{-4})

	checkMeasurement(t, "RMS", s.RMS, 4, tolerance)
	checkMeasurement(t, "Duration", s.Duration, 0, 0)
	if s.SampleRate.Valid {
		t.Fatal("SampleRate should be unavailable for zero duration")
	}
}

func TestCalculate_MismatchedLengthsUseCommonPrefix(t *testing.T) {
	s := Calculate([]float64{0, 1, 2}, []float64{1, 1})
	if s.SampleCount != 2 {
		t.Fatalf("SampleCount = %d, want 2", s.SampleCount)
	}
	checkMeasurement(t, "Duration", s.Duration, 1, 0)
}

func TestZeroCrossings(t *testing.T) {
	tests := []struct {
		name string
		in   []float64
		want []int
	}{
		{"alternating", []float64{1, -1, 1}, []int{0, 1}},
		{"zero is non-negative", []float64{-1, 0, 1}, []int{0}},
		{"touching zero", []float64{1, 0, 1}, nil},
		{"single", []float64{-1}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ZeroCrossings(tt.in)
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("ZeroCrossings(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestCrossingFrequency_Unavailable(t *testing.T) {
	if _, ok := CrossingFrequency([]float64{0, 1}, []int{0}); ok {
		t.Fatal("one crossing should be unavailable")
	}
	// Identical timestamps give a zero period.
	if _, ok := CrossingFrequency([]float64{1, 1, 1}, []int{0, 1}); ok {
		t.Fatal("zero period should be unavailable")
	}
}

func TestRMSAndPeakToPeakEmpty(t *testing.T) {
	if RMS(nil) != 0 || PeakToPeak(nil) != 0 {
		t.Fatal("expected 0 for empty input")
	}
}

func TestMeasurementFormatting(t *testing.T) {
	if got := Available(12.345).Format(1); got != "12.3" {
		t.Fatalf("Format = %q", got)
	}
	if got := Unavailable.Format(2); got != "---" {
		t.Fatalf("Format = %q", got)
	}
	if got := Unavailable.Or(-1); got != -1 {
		t.Fatalf("Or = %v", got)
	}
	if got := Available(2).String(); got != "2" {
		t.Fatalf("String = %q", got)
	}
}
