package signal_test

import (
	"fmt"
	"math"

	"github.com/cwbudde/piezoscope/dsp/core"
	"github.com/cwbudde/piezoscope/dsp/signal"
)

func ExampleGenerator_Ringdown() {
	g := signal.NewGenerator(core.WithSampleRate(1000))
	x, err := g.Ringdown(250, 100, 0.002, 6)
	if err != nil {
		panic(err)
	}

	for i := range x {
		if math.Abs(x[i]) < 1e-9 {
			x[i] = 0
		}
	}

	fmt.Printf("%.1f\n", x)

	// Output:
	// [0.0 60.7 0.0 -22.3 0.0 8.2]
}

func ExampleSensor_Read() {
	cfg := signal.DefaultSensorConfig()
	cfg.NoiseAmplitude = 0
	cfg.SpikeInterval = 0

	s, err := signal.NewGenerator(core.WithSampleRate(1000)).Sensor(cfg)
	if err != nil {
		panic(err)
	}

	x := make([]float64, 6)
	s.Read(x)

	fmt.Printf("%.0f\n", x)

	// Output:
	// [2048 2054 2060 2064 2067 2068]
}
