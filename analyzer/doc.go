// Package analyzer ties acquisition and analysis together for one
// measurement session.
//
// A [Session] owns the sample history, the active filter and detection
// settings, and the operator's current region. Samples arrive through
// [Session.Ingest] or [Session.Run]; analysis calls work on snapshots and
// return plain values for a presentation layer. Pausing freezes the data
// under analysis while acquisition continues in the background.
package analyzer
