// Package window provides the tapering windows applied to signal blocks
// before spectral estimation.
package window
