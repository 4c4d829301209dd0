// Command piezoscope acquires and analyzes piezoelectric sensor signals.
//
// Usage:
//
//	piezoscope monitor --port /dev/ttyACM0
//	piezoscope analyze capture.txt --from 1.2 --to 2.5
//	piezoscope analyze recording.wav --threshold 150
//	piezoscope simulate --duration 3
//
// Global settings can also be given as PIEZOSCOPE_* environment variables.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"

	"github.com/cwbudde/piezoscope/dsp/core"
	"github.com/cwbudde/piezoscope/internal/log"
)

// Globals are flags shared by every command.
type Globals struct {
	Debug      bool    `help:"Enable debug logging." env:"PIEZOSCOPE_DEBUG"`
	SampleRate float64 `help:"Acquisition sample rate in Hz." default:"10000" env:"PIEZOSCOPE_SAMPLE_RATE"`
	Capacity   int     `help:"Number of samples kept in history." default:"300000" env:"PIEZOSCOPE_CAPACITY"`
}

func (g *Globals) processorOptions() []core.ProcessorOption {
	return []core.ProcessorOption{
		core.WithSampleRate(g.SampleRate),
		core.WithCapacity(g.Capacity),
	}
}

// CLI defines the command-line interface.
type CLI struct {
	Globals

	Monitor  MonitorCmd  `cmd:"" help:"Acquire from a serial port and log a live overview."`
	Analyze  AnalyzeCmd  `cmd:"" help:"Measure a region of a captured stream or WAV recording."`
	Simulate SimulateCmd `cmd:"" help:"Measure a region of a simulated sensor stream."`
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cli := &CLI{}
	kctx := kong.Parse(cli,
		kong.Name("piezoscope"),
		kong.Description("Piezo sensor acquisition and spike analysis"),
		kong.UsageOnError(),
		kong.BindTo(ctx, (*context.Context)(nil)),
	)

	if err := log.Init(cli.Debug); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer log.Sync()

	if err := kctx.Run(&cli.Globals); err != nil {
		log.Errorw("command failed", "command", kctx.Command(), "error", err)
		printError(err)
		log.Sync()
		stop()
		os.Exit(1)
	}
}
