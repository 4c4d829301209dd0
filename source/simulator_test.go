package source

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/piezoscope/dsp/core"
	"github.com/cwbudde/piezoscope/dsp/signal"
)

func TestSimulator_DurationAndTimestamps(t *testing.T) {
	sim, err := NewSimulator(signal.DefaultSensorConfig(),
		WithSampleRate(10000), WithBlockSize(100), WithDuration(0.0525))
	if err != nil {
		t.Fatalf("NewSimulator: %v", err)
	}

	got := collect(t, sim)

	total := 0
	for i, b := range got {
		if want := float64(100*i) / 10000; math.Abs(b.Timestamp-want) > 1e-12 {
			t.Fatalf("batch %d timestamp=%v, want %v", i, b.Timestamp, want)
		}

		for _, v := range b.Samples {
			if v > core.ADCMax {
				t.Fatalf("sample %d above full scale", v)
			}
		}

		total += len(b.Samples)
	}

	if total != 525 || len(got) != 6 || len(got[5].Samples) != 25 {
		t.Fatalf("total=%d batches=%d, want 525 samples in 6 batches", total, len(got))
	}
}

func TestSimulator_ClampsToADCRange(t *testing.T) {
	cfg := signal.DefaultSensorConfig()
	cfg.NoiseAmplitude = 0
	cfg.SpikeInterval = 0
	cfg.HumAmplitude = 5000

	sim, err := NewSimulator(cfg, WithSampleRate(1000), WithDuration(0.02))
	if err != nil {
		t.Fatalf("NewSimulator: %v", err)
	}

	var lo, hi uint16 = core.ADCMax, 0
	for _, b := range collect(t, sim) {
		for _, v := range b.Samples {
			lo, hi = min(lo, v), max(hi, v)
		}
	}

	if lo != 0 || hi != core.ADCMax {
		t.Fatalf("range [%d, %d], want clipped to [0, %d]", lo, hi, core.ADCMax)
	}
}

func TestSimulator_Cancel(t *testing.T) {
	sim, err := NewSimulator(signal.DefaultSensorConfig(), WithRealtime(true))
	if err != nil {
		t.Fatalf("NewSimulator: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := sim.Stream(ctx, make(chan Batch)); !errors.Is(err, context.Canceled) {
		t.Fatalf("err=%v, want context.Canceled", err)
	}
}

func TestSimulator_InvalidSensor(t *testing.T) {
	cfg := signal.DefaultSensorConfig()
	cfg.SpikeDecay = -1

	if _, err := NewSimulator(cfg); err == nil {
		t.Fatal("accepted invalid sensor config")
	}
}
