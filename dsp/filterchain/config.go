package filterchain

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidConfig is returned when an enabled stage cannot be realised at
// the given sample rate.
var ErrInvalidConfig = errors.New("filterchain: invalid config")

// Highpass configures the high-pass stage.
type Highpass struct {
	Enabled  bool
	CutoffHz float64
}

// Lowpass configures the low-pass stage.
type Lowpass struct {
	Enabled  bool
	CutoffHz float64
}

// Notch configures the mains-hum notch stage. Q is the ratio of the centre
// frequency to the -3 dB bandwidth.
type Notch struct {
	Enabled bool
	FreqHz  float64
	Q       float64
}

// Config selects and parameterises the filter stages. It is a value; a
// caller changes filtering by passing a different Config.
type Config struct {
	Highpass Highpass
	Lowpass  Lowpass
	Notch    Notch
}

// DefaultConfig returns the acquisition defaults: high-pass at 10 Hz and a
// 50 Hz notch with Q 30 enabled, low-pass at 500 Hz disabled.
func DefaultConfig() Config {
	return Config{
		Highpass: Highpass{Enabled: true, CutoffHz: 10},
		Lowpass:  Lowpass{Enabled: false, CutoffHz: 500},
		Notch:    Notch{Enabled: true, FreqHz: 50, Q: 30},
	}
}

// Active reports whether any stage is enabled.
func (c Config) Active() bool {
	return c.Highpass.Enabled || c.Lowpass.Enabled || c.Notch.Enabled
}

// Validate checks the parameters of every enabled stage against sampleRate.
// Disabled stages are not checked.
func (c Config) Validate(sampleRate float64) error {
	if !c.Active() {
		return nil
	}

	if !(sampleRate > 0) || math.IsInf(sampleRate, 0) {
		return fmt.Errorf("%w: sample rate must be > 0: %v", ErrInvalidConfig, sampleRate)
	}

	nyquist := sampleRate / 2

	if c.Highpass.Enabled && !inBand(c.Highpass.CutoffHz, nyquist) {
		return fmt.Errorf("%w: highpass cutoff must be in (0, %v) Hz: %v",
			ErrInvalidConfig, nyquist, c.Highpass.CutoffHz)
	}

	if c.Lowpass.Enabled && !inBand(c.Lowpass.CutoffHz, nyquist) {
		return fmt.Errorf("%w: lowpass cutoff must be in (0, %v) Hz: %v",
			ErrInvalidConfig, nyquist, c.Lowpass.CutoffHz)
	}

	if c.Notch.Enabled {
		if !inBand(c.Notch.FreqHz, nyquist) {
			return fmt.Errorf("%w: notch frequency must be in (0, %v) Hz: %v",
				ErrInvalidConfig, nyquist, c.Notch.FreqHz)
		}

		if !(c.Notch.Q > 0) || math.IsInf(c.Notch.Q, 0) {
			return fmt.Errorf("%w: notch Q must be > 0: %v", ErrInvalidConfig, c.Notch.Q)
		}
	}

	return nil
}

func inBand(freq, nyquist float64) bool {
	return freq > 0 && freq < nyquist
}
