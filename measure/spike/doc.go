// Package spike detects discrete impact events in a piezo sensor trace.
//
// [Detect] looks for local maxima of the rectified signal that clear an
// amplitude threshold and are separated by at least a minimum time. For every
// accepted event it reports the signed extrema found in a neighbourhood of
// half the separation around the peak, which captures both lobes of a
// bipolar piezo response.
package spike
