// Package testutil provides signal generators shared across the module's
// test files. It is internal: a test fixture, not part of the exported API.
package testutil

import "math"

// DeterministicSine generates a sine wave of the given frequency, sample
// rate, and peak amplitude. Deterministic in the sense that repeated calls
// with identical arguments produce bit-identical output, which is what the
// loudness/track/transform test suites rely on for fixed expected values.
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}
