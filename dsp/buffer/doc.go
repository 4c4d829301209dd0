// Package buffer provides sample storage for the acquisition pipeline.
//
// [Ring] holds the bounded, time-stamped history a sensor stream is appended
// to; analysis reads it through copied [Snapshot] values. [Buffer] and [Pool]
// provide reusable float64 scratch space for block processing in hot paths.
package buffer
