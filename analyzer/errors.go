package analyzer

import "errors"

// Errors caused by operator input. The session state is left untouched.
var (
	ErrNoRegion    = errors.New("analyzer: no region selected")
	ErrEmptyRegion = errors.New("analyzer: region contains no samples")
	ErrNoData      = errors.New("analyzer: no samples acquired")
)

// IsUserInput reports whether err stems from operator input rather than a
// fault, so a front end can show it as a hint.
func IsUserInput(err error) bool {
	return errors.Is(err, ErrNoRegion) ||
		errors.Is(err, ErrEmptyRegion) ||
		errors.Is(err, ErrNoData)
}
