package signal

import (
	"fmt"
	"math"
	"math/rand"
)

// SensorConfig describes the synthetic piezo trace produced by a Sensor.
type SensorConfig struct {
	// Offset is the quiescent level in ADC units.
	Offset float64
	// HumFreq and HumAmplitude describe mains interference.
	HumFreq      float64
	HumAmplitude float64
	// NoiseAmplitude bounds the uniform wideband noise.
	NoiseAmplitude float64
	// SpikeInterval is the time between impacts in seconds; 0 disables them.
	SpikeInterval float64
	// SpikeAmplitude, SpikeFreq and SpikeDecay shape each impact ringdown.
	SpikeAmplitude float64
	SpikeFreq      float64
	SpikeDecay     float64
}

// DefaultSensorConfig returns a 12-bit sensor idling at mid-scale with 50 Hz
// hum and an impact every half second.
func DefaultSensorConfig() SensorConfig {
	return SensorConfig{
		Offset:         2048,
		HumFreq:        50,
		HumAmplitude:   20,
		NoiseAmplitude: 8,
		SpikeInterval:  0.5,
		SpikeAmplitude: 600,
		SpikeFreq:      400,
		SpikeDecay:     0.005,
	}
}

// Sensor streams a continuous synthetic sensor trace block by block.
// It is not safe for concurrent use.
type Sensor struct {
	cfg        SensorConfig
	sampleRate float64
	rng        *rand.Rand
	n          int64
}

// Sensor returns a streaming sensor model at the generator's sample rate,
// seeded with the generator's seed.
func (g *Generator) Sensor(cfg SensorConfig) (*Sensor, error) {
	if cfg.NoiseAmplitude < 0 {
		return nil, fmt.Errorf("sensor noise amplitude must be >= 0: %f", cfg.NoiseAmplitude)
	}
	if cfg.SpikeInterval < 0 {
		return nil, fmt.Errorf("sensor spike interval must be >= 0: %f", cfg.SpikeInterval)
	}
	if cfg.SpikeInterval > 0 && cfg.SpikeDecay <= 0 {
		return nil, fmt.Errorf("sensor spike decay must be > 0: %f", cfg.SpikeDecay)
	}

	return &Sensor{
		cfg:        cfg,
		sampleRate: g.sampleRate,
		rng:        rand.New(rand.NewSource(g.seed)),
	}, nil
}

// SampleRate returns the sensor sample rate in Hz.
func (s *Sensor) SampleRate() float64 {
	return s.sampleRate
}

// Position returns the number of samples produced so far.
func (s *Sensor) Position() int64 {
	return s.n
}

// Read fills dst with the next len(dst) samples.
func (s *Sensor) Read(dst []float64) {
	cfg := s.cfg
	humStep := 2 * math.Pi * cfg.HumFreq / s.sampleRate

	for i := range dst {
		n := s.n + int64(i)
		t := float64(n) / s.sampleRate

		v := cfg.Offset + cfg.HumAmplitude*math.Sin(humStep*float64(n))

		if cfg.NoiseAmplitude > 0 {
			v += (s.rng.Float64()*2 - 1) * cfg.NoiseAmplitude
		}

		if cfg.SpikeInterval > 0 {
			// Impacts start half an interval in so the trace opens quiet.
			since := math.Mod(t+cfg.SpikeInterval/2, cfg.SpikeInterval)
			if since < 10*cfg.SpikeDecay {
				v += ringdown(since, cfg.SpikeFreq, cfg.SpikeAmplitude, cfg.SpikeDecay)
			}
		}

		dst[i] = v
	}

	s.n += int64(len(dst))
}
