// Package region selects the samples of a time series that fall inside an
// operator-chosen time interval.
package region

// Region is a closed time interval in seconds with Start <= End.
type Region struct {
	Start float64
	End   float64
}

// New returns the region spanning a and b in either order.
func New(a, b float64) Region {
	if a > b {
		a, b = b, a
	}

	return Region{Start: a, End: b}
}

// Duration returns End - Start.
func (r Region) Duration() float64 {
	return r.End - r.Start
}

// Contains reports whether t lies inside the region, bounds included.
func (r Region) Contains(t float64) bool {
	return t >= r.Start && t <= r.End
}

// Extract returns the samples whose timestamps lie inside r, bounds included,
// in input order. times need not be sorted; amps is read over the common
// prefix of both slices. The returned slices are copies and are empty (never
// nil) when nothing matches.
func Extract(times, amps []float64, r Region) (t, a []float64) {
	n := min(len(times), len(amps))

	t, a = []float64{}, []float64{}
	for i := range n {
		if r.Contains(times[i]) {
			t = append(t, times[i])
			a = append(a, amps[i])
		}
	}

	return t, a
}
