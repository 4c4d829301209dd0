package region_test

import (
	"fmt"

	"github.com/cwbudde/piezoscope/measure/region"
)

func ExampleExtract() {
	times := []float64{0.0, 0.1, 0.2, 0.3, 0.4}
	amps := []float64{2048, 2100, 1990, 2060, 2048}

	r := region.New(0.3, 0.1)
	t, a := region.Extract(times, amps, r)

	fmt.Printf("%.1f-%.1f s: %v %v\n", r.Start, r.End, t, a)
	// Output:
	// 0.1-0.3 s: [0.1 0.2 0.3] [2100 1990 2060]
}
