// Package peak locates local maxima in sampled data.
package peak

import (
	"fmt"
	"math"
	"sort"
)

// Option mutates peak search parameters.
type Option func(*config) error

type config struct {
	height    float64
	hasHeight bool
	distance  int
}

func defaultConfig() config {
	return config{distance: 1}
}

// WithHeight keeps only peaks whose value is at least min.
func WithHeight(min float64) Option {
	return func(cfg *config) error {
		if math.IsNaN(min) {
			return fmt.Errorf("peak height must be a number: %v", min)
		}

		cfg.height = min
		cfg.hasHeight = true

		return nil
	}
}

// WithDistance sets the minimum separation between returned peaks in
// samples. Within that distance only the highest peak is kept.
func WithDistance(samples int) Option {
	return func(cfg *config) error {
		if samples < 1 {
			return fmt.Errorf("peak distance must be >= 1: %d", samples)
		}

		cfg.distance = samples

		return nil
	}
}

// Find returns the indices of the local maxima of x in ascending order.
//
// A local maximum is a sample, or a flat run of equal samples, strictly
// greater than both neighbours. A flat run reports its middle sample,
// rounding down. The first and last samples never qualify. Peaks are
// filtered by height first and then by distance, visiting the highest
// peaks first; equal heights favour the earlier peak.
func Find(x []float64, opts ...Option) ([]int, error) {
	cfg := defaultConfig()

	for _, opt := range opts {
		if opt == nil {
			continue
		}

		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	peaks := localMaxima(x)

	if cfg.hasHeight {
		peaks = selectByHeight(x, peaks, cfg.height)
	}

	if cfg.distance > 1 {
		peaks = selectByDistance(x, peaks, cfg.distance)
	}

	return peaks, nil
}

func localMaxima(x []float64) []int {
	var peaks []int

	last := len(x) - 1

	for i := 1; i < last; i++ {
		if !(x[i-1] < x[i]) {
			continue
		}

		ahead := i + 1
		for ahead < last && x[ahead] == x[i] {
			ahead++
		}

		if x[ahead] < x[i] {
			peaks = append(peaks, (i+ahead-1)/2)
			i = ahead
		}
	}

	return peaks
}

func selectByHeight(x []float64, peaks []int, min float64) []int {
	out := peaks[:0]
	for _, p := range peaks {
		if x[p] >= min {
			out = append(out, p)
		}
	}

	return out
}

func selectByDistance(x []float64, peaks []int, distance int) []int {
	n := len(peaks)
	if n < 2 {
		return peaks
	}

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}

	sort.SliceStable(order, func(a, b int) bool {
		return x[peaks[order[a]]] > x[peaks[order[b]]]
	})

	keep := make([]bool, n)
	for i := range keep {
		keep[i] = true
	}

	for _, j := range order {
		if !keep[j] {
			continue
		}

		for k := j - 1; k >= 0 && peaks[j]-peaks[k] < distance; k-- {
			keep[k] = false
		}

		for k := j + 1; k < n && peaks[k]-peaks[j] < distance; k++ {
			keep[k] = false
		}
	}

	out := peaks[:0]
	for i, p := range peaks {
		if keep[i] {
			out = append(out, p)
		}
	}

	return out
}
