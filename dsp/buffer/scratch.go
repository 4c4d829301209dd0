package buffer

import (
	"slices"
	"sync"
)

// Buffer is a resizable float64 work area. Filters take plain slices; use
// Samples to pass one on.
type Buffer struct {
	samples []float64
}

// New returns a zeroed Buffer holding length samples.
func New(length int) *Buffer {
	b := &Buffer{}
	b.Resize(length)

	return b
}

// Samples returns the backing slice.
func (b *Buffer) Samples() []float64 {
	return b.samples
}

// Len returns the number of samples.
func (b *Buffer) Len() int {
	return len(b.samples)
}

// Resize sets the length to n, keeping the leading samples. Samples exposed
// by growing read as zero, also when the backing array is reused.
func (b *Buffer) Resize(n int) {
	n = max(n, 0)

	old := len(b.samples)
	if n <= old {
		b.samples = b.samples[:n]
		return
	}

	b.samples = slices.Grow(b.samples, n-old)[:n]
	clear(b.samples[old:])
}

// Pool recycles Buffers between filter passes so long blocks do not
// allocate on every call. It is safe for concurrent use.
type Pool struct {
	pool sync.Pool
}

// NewPool returns an empty Pool.
func NewPool() *Pool {
	return &Pool{pool: sync.Pool{New: func() any { return new(Buffer) }}}
}

// Get returns a zeroed Buffer of the given length. Hand it back with Put.
func (p *Pool) Get(length int) *Buffer {
	b := p.pool.Get().(*Buffer)
	b.Resize(length)
	clear(b.samples)

	return b
}

// Put returns b to the pool. b must not be used afterwards. nil is ignored.
func (p *Pool) Put(b *Buffer) {
	if b != nil {
		p.pool.Put(b)
	}
}
