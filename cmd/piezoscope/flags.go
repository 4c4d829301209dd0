package main

import (
	"github.com/cwbudde/piezoscope/dsp/filterchain"
	"github.com/cwbudde/piezoscope/measure/spike"
)

// FilterFlags map onto a filterchain.Config. A zero frequency disables the
// stage.
type FilterFlags struct {
	Highpass float64 `help:"High-pass cutoff in Hz (0 disables)." default:"10"`
	Lowpass  float64 `help:"Low-pass cutoff in Hz (0 disables)." default:"0"`
	Notch    float64 `help:"Notch centre frequency in Hz (0 disables)." default:"50"`
	NotchQ   float64 `name:"notch-q" help:"Notch quality factor." default:"30"`
}

func (f FilterFlags) config() filterchain.Config {
	return filterchain.Config{
		Highpass: filterchain.Highpass{Enabled: f.Highpass > 0, CutoffHz: f.Highpass},
		Lowpass:  filterchain.Lowpass{Enabled: f.Lowpass > 0, CutoffHz: f.Lowpass},
		Notch:    filterchain.Notch{Enabled: f.Notch > 0, FreqHz: f.Notch, Q: f.NotchQ},
	}
}

// RegionFlags select the measured region and the spike detector settings.
// With From and To both zero the whole history is measured.
type RegionFlags struct {
	From        float64 `help:"Region start in seconds." default:"0"`
	To          float64 `help:"Region end in seconds." default:"0"`
	Threshold   float64 `help:"Spike threshold in ADC units." default:"100"`
	MinDistance float64 `help:"Minimum time between spikes in seconds." default:"0.05"`
}

func (r RegionFlags) detection() spike.Params {
	return spike.Params{Threshold: r.Threshold, MinSeparation: r.MinDistance}
}

func (r RegionFlags) wholeHistory() bool {
	return r.From == 0 && r.To == 0
}
