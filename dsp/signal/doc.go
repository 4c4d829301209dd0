// Package signal generates deterministic test and simulation signals.
//
// [Generator] produces one-shot blocks (sines, noise, impact ringdowns).
// [Sensor] streams a continuous model of a piezo sensor: a mid-scale ADC
// offset with mains hum, wideband noise and periodic impact ringdowns. It
// backs the simulated sample source.
package signal
