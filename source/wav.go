package source

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/cwbudde/piezoscope/dsp/core"
)

// ErrUnsupportedWAV is returned for recordings that are not 16-bit PCM.
var ErrUnsupportedWAV = errors.New("source: unsupported WAV file")

// WAV replays a 16-bit PCM recording. Only the first channel is used. Each
// sample is reduced to the 12-bit ADC range around the nominal offset.
type WAV struct {
	dec  *wav.Decoder
	opts options
}

// NewWAV validates the recording header and returns a source for it.
func NewWAV(r io.ReadSeeker, opts ...Option) (*WAV, error) {
	dec := wav.NewDecoder(r)
	if !dec.IsValidFile() {
		if err := dec.Err(); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrUnsupportedWAV, err)
		}

		return nil, fmt.Errorf("%w: invalid header", ErrUnsupportedWAV)
	}

	if dec.BitDepth != 16 {
		return nil, fmt.Errorf("%w: %d-bit samples, need 16", ErrUnsupportedWAV, dec.BitDepth)
	}

	return &WAV{dec: dec, opts: applyOptions(opts)}, nil
}

// SampleRate returns the recording sample rate in Hz.
func (w *WAV) SampleRate() float64 {
	return float64(w.dec.SampleRate)
}

// Channels returns the number of interleaved channels in the recording.
func (w *WAV) Channels() int {
	return int(w.dec.NumChans)
}

// ToADC maps a signed 16-bit PCM sample onto the 12-bit ADC scale.
func ToADC(s int) uint16 {
	return uint16((s >> 4) + core.ADCMidscale)
}

// Stream implements Source.
func (w *WAV) Stream(ctx context.Context, out chan<- Batch) error {
	if err := w.dec.FwdToPCM(); err != nil {
		return fmt.Errorf("source: wav: %w", err)
	}

	chans := max(1, w.Channels())
	block := w.opts.proc.BlockSize
	rate := w.SampleRate()

	buf := &audio.IntBuffer{
		Format: w.dec.Format(),
		Data:   make([]int, block*chans),
	}

	w.opts.logger.Debugw("replaying wav", "sample_rate", rate, "channels", chans)

	var pos int64

	for {
		n, err := w.dec.PCMBuffer(buf)
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("source: wav: %w", err)
		}

		frames := n / chans
		if frames == 0 {
			return nil
		}

		samples := make([]uint16, frames)
		for i := range samples {
			samples[i] = ToADC(buf.Data[i*chans])
		}

		b := Batch{Timestamp: float64(pos) / rate, Samples: samples}
		if err := send(ctx, out, b); err != nil {
			return err
		}

		pos += int64(frames)
	}
}
