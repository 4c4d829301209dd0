package buffer

import (
	"fmt"
	"sort"
	"sync"
)

// Ring is a bounded history of time-stamped sensor samples.
//
// Times and amplitudes live in two index-aligned channels written under one
// lock, so readers never observe them out of step. When full, the oldest
// samples are evicted. Ring is safe for one writer and any number of
// concurrent readers; readers work on copies obtained via Snapshot or Tail.
type Ring struct {
	mu sync.RWMutex

	times []float64
	amps  []float64
	start int
	size  int
	total uint64

	sampleRate float64
}

// NewRing returns an empty Ring holding up to capacity samples acquired at
// sampleRate Hz.
func NewRing(capacity int, sampleRate float64) (*Ring, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("ring capacity must be > 0: %d", capacity)
	}

	if !(sampleRate > 0) {
		return nil, fmt.Errorf("ring sample rate must be > 0: %v", sampleRate)
	}

	return &Ring{
		times:      make([]float64, capacity),
		amps:       make([]float64, capacity),
		sampleRate: sampleRate,
	}, nil
}

// Append stores a batch of raw ADC samples. Sample i is stamped
// base + i/sampleRate. A base at or before the newest retained sample is
// moved to one sample period after it, so retained timestamps stay strictly
// increasing when device batches overlap. An empty batch is a no-op.
func (r *Ring) Append(base float64, raw []uint16) {
	if len(raw) == 0 {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.size > 0 {
		if last := r.at(r.size - 1); !(base > last) {
			base = last + 1/r.sampleRate
		}
	}

	r.total += uint64(len(raw))

	capacity := len(r.times)

	// Only the newest capacity samples of an oversized batch survive.
	skip := 0
	if len(raw) > capacity {
		skip = len(raw) - capacity
	}

	for i := skip; i < len(raw); i++ {
		idx := (r.start + r.size) % capacity
		r.times[idx] = base + float64(i)/r.sampleRate
		r.amps[idx] = float64(raw[i])

		if r.size < capacity {
			r.size++
		} else {
			r.start = (r.start + 1) % capacity
		}
	}
}

// Snapshot returns a copy of the full retained history, oldest first.
func (r *Ring) Snapshot() Snapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.copyFrom(0)
}

// Tail returns a copy of the samples stamped within seconds of the newest
// sample. Timestamps are assumed non-decreasing.
func (r *Ring) Tail(seconds float64) Snapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.size == 0 {
		return r.copyFrom(0)
	}

	threshold := r.at(r.size-1) - seconds
	from := sort.Search(r.size, func(i int) bool {
		return r.at(i) >= threshold
	})

	return r.copyFrom(from)
}

// Clear drops all samples and resets the received counter.
func (r *Ring) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.start = 0
	r.size = 0
	r.total = 0
}

// Len returns the number of retained samples.
func (r *Ring) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.size
}

// Cap returns the maximum number of retained samples.
func (r *Ring) Cap() int {
	return len(r.times)
}

// Total returns the number of samples appended since creation or the last
// Clear, including evicted ones.
func (r *Ring) Total() uint64 {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.total
}

// SampleRate returns the nominal acquisition rate in Hz.
func (r *Ring) SampleRate() float64 {
	return r.sampleRate
}

// at returns the timestamp at logical index i. Callers hold the lock.
func (r *Ring) at(i int) float64 {
	return r.times[(r.start+i)%len(r.times)]
}

// copyFrom copies logical indices [from, size) into a new Snapshot.
// Callers hold the lock.
func (r *Ring) copyFrom(from int) Snapshot {
	n := r.size - from
	s := Snapshot{
		Times:      make([]float64, n),
		Amplitudes: make([]float64, n),
		Total:      r.total,
	}

	if n == 0 {
		return s
	}

	capacity := len(r.times)
	first := (r.start + from) % capacity

	// The logical range is at most two physical runs.
	head := min(n, capacity-first)
	copy(s.Times, r.times[first:first+head])
	copy(s.Amplitudes, r.amps[first:first+head])
	copy(s.Times[head:], r.times[:n-head])
	copy(s.Amplitudes[head:], r.amps[:n-head])

	return s
}
