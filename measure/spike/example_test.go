package spike_test

import (
	"fmt"

	"github.com/cwbudde/piezoscope/measure/spike"
)

func ExampleDetect() {
	times := make([]float64, 200)
	amps := make([]float64, 200)

	for i := range times {
		times[i] = float64(i) / 1000
	}

	amps[40], amps[41] = 450, -380
	amps[150], amps[151] = -220, 90

	records, err := spike.Detect(times, amps, spike.Params{Threshold: 100, MinSeparation: 0.02, SampleRate: 1000})
	if err != nil {
		fmt.Println(err)
		return
	}

	for _, r := range records {
		fmt.Printf("t=%.3f s max=%.0f min=%.0f amplitude=%.0f\n", r.Time, r.LocalMax, r.LocalMin, r.Amplitude())
	}
	// Output:
	// t=0.040 s max=450 min=-380 amplitude=830
	// t=0.150 s max=90 min=-220 amplitude=310
}
