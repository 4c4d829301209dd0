package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/cwbudde/piezoscope/analyzer"
	"github.com/cwbudde/piezoscope/dsp/core"
	"github.com/cwbudde/piezoscope/dsp/signal"
	"github.com/cwbudde/piezoscope/internal/log"
	"github.com/cwbudde/piezoscope/source"
)

// AnalyzeCmd replays a capture into a session and reports a region.
type AnalyzeCmd struct {
	File string `arg:"" type:"existingfile" help:"Captured device output, or a WAV recording."`
	WAV  bool   `name:"wav" help:"Treat the file as WAV even without a .wav extension."`

	Filter FilterFlags `embed:""`
	Region RegionFlags `embed:""`
}

// Run executes the analyze command.
func (c *AnalyzeCmd) Run(g *Globals, ctx context.Context) error {
	f, err := os.Open(c.File)
	if err != nil {
		return err
	}
	defer f.Close()

	procOpts := g.processorOptions()

	var src source.Source

	if c.WAV || strings.EqualFold(filepath.Ext(c.File), ".wav") {
		w, err := source.NewWAV(f, source.WithLogger(log.GetSugaredLogger()))
		if err != nil {
			return err
		}

		// The recording defines the time base.
		procOpts = append(procOpts, core.WithSampleRate(w.SampleRate()))
		src = w
	} else {
		src = source.NewReader(f,
			source.WithLogger(log.GetSugaredLogger()),
			source.WithStatusHandler(func(m string) { log.Infow("device status", "message", m) }),
		)
	}

	return replay(ctx, os.Stdout, src, procOpts, c.Filter, c.Region)
}

// SimulateCmd analyzes a synthetic sensor stream.
type SimulateCmd struct {
	Duration float64 `help:"Seconds of signal to generate." default:"3"`
	Seed     int64   `help:"Noise seed." default:"1"`
	Interval float64 `help:"Seconds between simulated impacts." default:"0.5"`

	Filter FilterFlags `embed:""`
	Region RegionFlags `embed:""`
}

// Run executes the simulate command.
func (c *SimulateCmd) Run(g *Globals, ctx context.Context) error {
	cfg := signal.DefaultSensorConfig()
	cfg.SpikeInterval = c.Interval

	sim, err := source.NewSimulator(cfg,
		source.WithSampleRate(g.SampleRate),
		source.WithDuration(c.Duration),
		source.WithSeed(c.Seed),
		source.WithLogger(log.GetSugaredLogger()),
	)
	if err != nil {
		return err
	}

	return replay(ctx, os.Stdout, sim, g.processorOptions(), c.Filter, c.Region)
}

// replay feeds src into a new session, then measures the requested region
// and prints the report to w.
func replay(ctx context.Context, w io.Writer, src source.Source, procOpts []core.ProcessorOption, ff FilterFlags, rf RegionFlags) error {
	s, err := analyzer.New(
		analyzer.WithProcessorOptions(procOpts...),
		analyzer.WithLogger(log.GetSugaredLogger()),
		analyzer.WithFilter(ff.config()),
		analyzer.WithDetection(rf.detection()),
	)
	if err != nil {
		return err
	}

	if err := s.Run(ctx, src); err != nil {
		return err
	}

	from, to := rf.From, rf.To
	if rf.wholeHistory() {
		b, ok := s.Bounds()
		if !ok {
			return analyzer.ErrNoData
		}

		from, to = b.Start, b.End
	}

	m, err := s.SelectRegion(from, to)
	if err != nil {
		return err
	}

	records, err := s.DetectSpikes()
	if err != nil {
		return err
	}

	ov, err := s.Overview(analyzer.DefaultOverviewWindow, analyzer.DefaultOverviewPoints)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, renderReport(ov, m, records))

	return err
}
