package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	serial "github.com/tarm/goserial"
)

var errPortClosed = errors.New("source: serial port closed")

// Serial reads the device line protocol from a serial port. It reconnects
// after open and read failures until its context is cancelled.
type Serial struct {
	port string
	opts options
	open func(name string, baud int) (io.ReadWriteCloser, error)
}

// NewSerial returns a source for the named port, e.g. /dev/ttyACM0.
func NewSerial(port string, opts ...Option) *Serial {
	return &Serial{
		port: port,
		opts: applyOptions(opts),
		open: openPort,
	}
}

func openPort(name string, baud int) (io.ReadWriteCloser, error) {
	return serial.OpenPort(&serial.Config{Name: name, Baud: baud})
}

// Stream implements Source. It only returns once ctx is cancelled.
func (s *Serial) Stream(ctx context.Context, out chan<- Batch) error {
	log := s.opts.logger.With("port", s.port)

	for {
		log.Debugw("opening serial port", "baud", s.opts.baud)

		err := s.session(ctx, out)
		if ctxErr := ctx.Err(); ctxErr != nil {
			log.Infow("serial stream stopped")
			return ctxErr
		}

		log.Warnw("serial link lost, reconnecting", "error", err, "delay", s.opts.reconnectDelay)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(s.opts.reconnectDelay):
		}
	}
}

// session runs one connection until it fails or ctx is cancelled.
func (s *Serial) session(ctx context.Context, out chan<- Batch) error {
	port, err := s.open(s.port, s.opts.baud)
	if err != nil {
		return fmt.Errorf("source: open %s: %w", s.port, err)
	}

	s.opts.logger.Infow("connected", "port", s.port, "baud", s.opts.baud)

	// Closing the port unblocks a pending read on cancellation.
	stop := context.AfterFunc(ctx, func() { _ = port.Close() })
	defer func() {
		if stop() {
			_ = port.Close()
		}
	}()

	if err := scanLines(ctx, port, out, s.opts); err != nil {
		return err
	}

	return errPortClosed
}
