package buffer

import "sort"

// Snapshot is a point-in-time copy of a Ring. Its slices are owned by the
// caller and never change underneath it.
type Snapshot struct {
	Times      []float64
	Amplitudes []float64

	// Total is the Ring's received counter when the copy was taken.
	Total uint64
}

// Len returns the number of samples in the snapshot.
func (s Snapshot) Len() int {
	return len(s.Times)
}

// Sample returns the timestamp and amplitude at index i.
func (s Snapshot) Sample(i int) (t, amplitude float64) {
	return s.Times[i], s.Amplitudes[i]
}

// Duration returns the time spanned from the first to the last sample,
// or 0 for fewer than two samples.
func (s Snapshot) Duration() float64 {
	if len(s.Times) < 2 {
		return 0
	}

	return s.Times[len(s.Times)-1] - s.Times[0]
}

// Rate returns the observed sample rate, the retained count over the spanned
// time. ok is false when the span is not positive.
func (s Snapshot) Rate() (rate float64, ok bool) {
	d := s.Duration()
	if d <= 0 {
		return 0, false
	}

	return float64(len(s.Times)) / d, true
}

// Tail returns the samples stamped within seconds of the newest one. The
// result shares storage with s.
func (s Snapshot) Tail(seconds float64) Snapshot {
	n := len(s.Times)
	if n == 0 {
		return s
	}

	threshold := s.Times[n-1] - seconds
	from := sort.SearchFloat64s(s.Times, threshold)

	return Snapshot{
		Times:      s.Times[from:],
		Amplitudes: s.Amplitudes[from:],
		Total:      s.Total,
	}
}
