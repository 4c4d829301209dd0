package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cwbudde/piezoscope/analyzer"
	"github.com/cwbudde/piezoscope/internal/log"
	"github.com/cwbudde/piezoscope/source"
)

var errInvalidInterval = errors.New("monitor: interval must be positive")

// MonitorCmd streams from the sensor and periodically logs the overview.
type MonitorCmd struct {
	Port     string        `help:"Serial device." default:"/dev/ttyACM0" env:"PIEZOSCOPE_PORT"`
	Baud     int           `help:"Serial line speed." default:"921600" env:"PIEZOSCOPE_BAUD"`
	Interval time.Duration `help:"Time between overview reports." default:"1s"`
	Window   float64       `help:"Overview window in seconds." default:"5"`

	Filter FilterFlags `embed:""`
}

// Run executes the monitor command until interrupted.
func (c *MonitorCmd) Run(g *Globals, ctx context.Context) error {
	if c.Interval <= 0 {
		return fmt.Errorf("%w: %v", errInvalidInterval, c.Interval)
	}

	logger := log.GetSugaredLogger()

	s, err := analyzer.New(
		analyzer.WithProcessorOptions(g.processorOptions()...),
		analyzer.WithLogger(logger),
		analyzer.WithFilter(c.Filter.config()),
	)
	if err != nil {
		return err
	}

	src := source.NewSerial(c.Port,
		source.WithBaud(c.Baud),
		source.WithLogger(logger),
	)

	done := make(chan error, 1)
	go func() { done <- s.Run(ctx, src) }()

	ticker := time.NewTicker(c.Interval)
	defer ticker.Stop()

	for {
		select {
		case err := <-done:
			return err
		case <-ticker.C:
			ov, err := s.Overview(c.Window, analyzer.DefaultOverviewPoints)
			if err != nil {
				return err
			}

			logOverview(ov)
		}
	}
}

func logOverview(ov analyzer.Overview) {
	if ov.Retained == 0 {
		log.Infow("waiting for samples")
		return
	}

	log.Infow("overview",
		"received", ov.Received,
		"retained", ov.Retained,
		"buffer_s", ov.BufferDuration,
		"rate_hz", ov.ActualRate.Format(0),
		"rms", ov.Stats.RMS.Format(2),
		"p2p", ov.Stats.PeakToPeak.Format(1),
		"freq_hz", ov.Stats.AvgFrequency.Format(1),
		"zero_line", ov.ZeroLine,
	)
}

// printError writes err to stderr in the report style. Operator mistakes
// are shown as hints.
func printError(err error) {
	if analyzer.IsUserInput(err) || errors.Is(err, context.Canceled) {
		printHint(err.Error())
		return
	}

	printFailure(err.Error())
}
