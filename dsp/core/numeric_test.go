package core

import (
	"math"
	"testing"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		min      float64
		max      float64
		expected float64
	}{
		{name: "inside", value: 2048, min: 0, max: 4095, expected: 2048},
		{name: "below", value: -1, min: 0, max: 4095, expected: 0},
		{name: "above", value: 5000, min: 0, max: 4095, expected: 4095},
		{name: "swapped", value: 2, min: 1, max: 0, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Clamp(tt.value, tt.min, tt.max)
			if got != tt.expected {
				t.Fatalf("Clamp() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestToADC(t *testing.T) {
	cases := []struct {
		in   float64
		want uint16
	}{
		{2048.4, 2048},
		{2048.5, 2049},
		{-30, 0},
		{1e6, ADCMax},
		{math.Inf(-1), 0},
		{math.NaN(), ADCMidscale},
	}
	for _, c := range cases {
		if got := ToADC(c.in); got != c.want {
			t.Fatalf("ToADC(%v) = %d, want %d", c.in, got, c.want)
		}
	}
	if ADCMax != 4095 || ADCMidscale != 2048 {
		t.Fatalf("scale = %d/%d, want 4095/2048", ADCMax, ADCMidscale)
	}
}

func TestLinearToDB(t *testing.T) {
	if db := LinearToDB(10); math.Abs(db-20) > 1e-12 {
		t.Fatalf("LinearToDB(10) = %v, want 20", db)
	}
	if !math.IsInf(LinearToDB(0), -1) {
		t.Fatal("expected -Inf for zero")
	}
	if !math.IsNaN(LinearToDB(-1)) {
		t.Fatal("expected NaN for negative amplitude")
	}
}
