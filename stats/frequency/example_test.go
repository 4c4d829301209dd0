package frequency_test

import (
	"fmt"
	"math"

	"github.com/cwbudde/piezoscope/stats/frequency"
)

func ExampleDominant() {
	const sampleRate = 1000.0

	x := make([]float64, 1000)
	for i := range x {
		x[i] = 2048 + 10*math.Sin(2*math.Pi*50*float64(i)/sampleRate)
	}

	p, ok, err := frequency.Dominant(x, sampleRate)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Printf("ok=%v %.2f Hz amplitude=%.2f level=%.1f dB\n", ok, p.Frequency, p.Amplitude, p.Level)
	// Output:
	// ok=true 50.00 Hz amplitude=10.00 level=20.0 dB
}
