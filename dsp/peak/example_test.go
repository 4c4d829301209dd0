package peak_test

import (
	"fmt"

	"github.com/cwbudde/piezoscope/dsp/peak"
)

func ExampleFind() {
	x := []float64{0, 120, 30, 150, 20, 0, 0, 0, 90, 0}

	peaks, err := peak.Find(x, peak.WithHeight(100), peak.WithDistance(4))
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(peaks)
	// Output:
	// [3]
}
