package source

import (
	"context"
	"io"
)

// Reader replays device output captured from the serial link.
type Reader struct {
	r    io.Reader
	opts options
}

// NewReader returns a source reading protocol lines from r.
func NewReader(r io.Reader, opts ...Option) *Reader {
	return &Reader{r: r, opts: applyOptions(opts)}
}

// Stream implements Source.
func (r *Reader) Stream(ctx context.Context, out chan<- Batch) error {
	return scanLines(ctx, r.r, out, r.opts)
}
