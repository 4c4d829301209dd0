package time_test

import (
	"fmt"

	timestats "github.com/cwbudde/piezoscope/stats/time"
)

func ExampleCalculate() {
	times := []float64{0, 1, 2, 3, 4, 5}
	amps := []float64{0, 5, -5, 5, -5, 0}

	s := timestats.Calculate(times, amps)
	fmt.Printf("p2p=%s zc=%d freq=%s Hz\n", s.PeakToPeak.Format(1), s.ZeroCrossings, s.AvgFrequency.Format(2))

	s = timestats.Calculate(nil, nil)
	fmt.Printf("rms=%s freq=%s\n", s.RMS, s.AvgFrequency)

	// Output:
	// p2p=10.0 zc=4 freq=0.50 Hz
	// rms=--- freq=---
}
