package buffer_test

import (
	"fmt"

	"github.com/cwbudde/piezoscope/dsp/buffer"
)

func ExampleRing() {
	ring, err := buffer.NewRing(4, 1000)
	if err != nil {
		fmt.Println(err)
		return
	}

	ring.Append(0.000, []uint16{2048, 2050, 2046})
	ring.Append(0.003, []uint16{2100, 2000})

	snap := ring.Snapshot()
	fmt.Println(snap.Amplitudes)
	fmt.Println(ring.Len(), ring.Total())

	// Output:
	// [2050 2046 2100 2000]
	// 4 5
}

func ExamplePool() {
	pool := buffer.NewPool()

	// Pad a block by two samples on each side.
	block := []float64{1, 2, 3}
	work := pool.Get(len(block) + 4)
	defer pool.Put(work)

	copy(work.Samples()[2:], block)
	fmt.Println(work.Samples())

	// Output:
	// [0 0 1 2 3 0 0]
}
