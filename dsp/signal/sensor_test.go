package signal

import (
	"testing"

	"github.com/cwbudde/piezoscope/dsp/core"
)

func newSensor(t *testing.T, cfg SensorConfig) *Sensor {
	t.Helper()

	s, err := NewGeneratorWithOptions([]core.ProcessorOption{core.WithSampleRate(10000)}, WithSeed(7)).Sensor(cfg)
	if err != nil {
		t.Fatalf("Sensor() error = %v", err)
	}

	return s
}

func TestSensorBlocksAreContinuous(t *testing.T) {
	whole := make([]float64, 300)
	newSensor(t, DefaultSensorConfig()).Read(whole)

	s := newSensor(t, DefaultSensorConfig())
	parts := make([]float64, 0, 300)

	for _, n := range []int{100, 37, 163} {
		block := make([]float64, n)
		s.Read(block)
		parts = append(parts, block...)
	}

	if s.Position() != 300 {
		t.Fatalf("Position()=%d, want 300", s.Position())
	}

	for i := range whole {
		if whole[i] != parts[i] {
			t.Fatalf("sample %d: block read %v, single read %v", i, parts[i], whole[i])
		}
	}
}

func TestSensorQuietThenImpact(t *testing.T) {
	cfg := DefaultSensorConfig()
	s := newSensor(t, cfg)

	x := make([]float64, 3000)
	s.Read(x)

	bound := cfg.HumAmplitude + cfg.NoiseAmplitude
	for i := 0; i < 2400; i++ {
		if d := x[i] - cfg.Offset; d > bound || d < -bound {
			t.Fatalf("sample %d=%v outside the idle band", i, x[i])
		}
	}

	peak := 0.0
	for _, v := range x[2500:2600] {
		peak = max(peak, v-cfg.Offset)
	}

	if peak < 300 {
		t.Fatalf("impact peak=%v, want > 300 above offset", peak)
	}
}

func TestSensorValidation(t *testing.T) {
	g := NewGenerator()

	bad := DefaultSensorConfig()
	bad.SpikeDecay = 0
	if _, err := g.Sensor(bad); err == nil {
		t.Fatal("accepted zero spike decay")
	}

	bad = DefaultSensorConfig()
	bad.NoiseAmplitude = -1
	if _, err := g.Sensor(bad); err == nil {
		t.Fatal("accepted negative noise")
	}

	quiet := DefaultSensorConfig()
	quiet.SpikeInterval = 0
	quiet.SpikeDecay = 0
	if _, err := g.Sensor(quiet); err != nil {
		t.Fatalf("spikes disabled: %v", err)
	}
}
