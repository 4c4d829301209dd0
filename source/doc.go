// Package source produces batches of raw sensor samples.
//
// Every [Source] streams [Batch] values, each holding the timestamp of its
// first sample and the raw 12-bit ADC readings that follow at the
// acquisition rate. Implementations cover the live serial link, replay of
// captured device output from any io.Reader, WAV recordings, and a
// synthetic sensor for demos and tests.
//
// The device line protocol is
//
//	<timestamp_us>,<s1>,<s2>,...
//
// with one batch per line. Lines starting with '#' carry device status
// messages.
package source
