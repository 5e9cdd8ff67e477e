package transform

import "github.com/cwbudde/loudcore/dsp/core"

// Gain multiplies every sample in every channel by db_to_linear(db). Output
// buffers are freshly allocated; no clipping is applied.
func Gain(channels [][]float32, db float64) [][]float32 {
	factor := float32(core.DBToLinear(db))

	out := make([][]float32, len(channels))
	for c, ch := range channels {
		buf := make([]float32, len(ch))
		for i, x := range ch {
			buf[i] = x * factor
		}
		out[c] = buf
	}
	return out
}
