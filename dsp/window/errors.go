package window

import "errors"

var (
	// ErrInvalidSize is returned for window lengths below one sample.
	ErrInvalidSize = errors.New("window: size must be > 0")

	// ErrZeroGain is returned when coefficients sum to zero or are empty,
	// so amplitudes cannot be corrected for the window.
	ErrZeroGain = errors.New("window: zero coherent gain")
)
