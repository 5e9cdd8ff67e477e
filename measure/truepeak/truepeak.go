// Package truepeak is the measurement-facing wrapper around
// dsp/filter/truepeak's polyphase oversampling kernel: per-channel and
// stereo-max true-peak queries for the Track façade.
package truepeak

import "github.com/cwbudde/loudcore/dsp/filter/truepeak"

// Channel returns the true-peak linear magnitude of a single channel.
// Sample rate has no bearing on the result (the oversampling filter is
// rate-independent) and is not accepted here; rate-specific behavior lives
// entirely in measure/loudness.
func Channel(samples []float32) float64 {
	return truepeak.Measure(samples)
}

// Max returns the maximum true-peak linear magnitude across all channels.
func Max(channels [][]float32) float64 {
	return truepeak.MeasureStereo(channels)
}
