package source

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrMalformedLine is returned for lines that do not follow the protocol.
var ErrMalformedLine = errors.New("source: malformed line")

// LineKind classifies a protocol line.
type LineKind int

const (
	LineBlank LineKind = iota
	LineStatus
	LineSamples
)

// Line is a parsed protocol line.
type Line struct {
	Kind   LineKind
	Status string
	Batch  Batch
}

// ParseLine parses one line of device output. Surrounding whitespace is
// ignored. A samples line needs a numeric microsecond timestamp and at least
// one sample in [0, 65535].
func ParseLine(s string) (Line, error) {
	s = strings.TrimSpace(s)

	switch {
	case s == "":
		return Line{Kind: LineBlank}, nil
	case strings.HasPrefix(s, "#"):
		return Line{Kind: LineStatus, Status: strings.TrimSpace(s[1:])}, nil
	}

	fields := strings.Split(s, ",")
	if len(fields) < 2 {
		return Line{}, fmt.Errorf("%w: no samples", ErrMalformedLine)
	}

	us, err := strconv.ParseFloat(strings.TrimSpace(fields[0]), 64)
	if err != nil {
		return Line{}, fmt.Errorf("%w: timestamp: %w", ErrMalformedLine, err)
	}

	samples := make([]uint16, len(fields)-1)
	for i, f := range fields[1:] {
		v, err := strconv.ParseUint(strings.TrimSpace(f), 10, 16)
		if err != nil {
			return Line{}, fmt.Errorf("%w: sample %d: %w", ErrMalformedLine, i, err)
		}

		samples[i] = uint16(v)
	}

	return Line{
		Kind:  LineSamples,
		Batch: Batch{Timestamp: us / 1e6, Samples: samples},
	}, nil
}

// scanLines streams protocol lines from r until EOF, a read error or
// cancellation. Malformed lines are dropped.
func scanLines(ctx context.Context, r io.Reader, out chan<- Batch, o options) error {
	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}

		line, err := ParseLine(scanner.Text())
		if err != nil {
			o.logger.Debugw("dropping line", "error", err)
			continue
		}

		switch line.Kind {
		case LineStatus:
			o.logger.Infow("device status", "message", line.Status)
			if o.onStatus != nil {
				o.onStatus(line.Status)
			}
		case LineSamples:
			if err := send(ctx, out, line.Batch); err != nil {
				return err
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("source: read: %w", err)
	}

	return nil
}
