package transform

// FadeIn ramps the first floor(ms*rate/1000) samples of every channel
// linearly from 0 to 1; samples beyond the fade region are unchanged. If
// the fade region exceeds the channel length, the whole channel is ramped.
func FadeIn(channels [][]float32, ms float64, rate int) [][]float32 {
	return fade(channels, ms, rate, true)
}

// FadeOut ramps the last floor(ms*rate/1000) samples of every channel
// linearly from 1 to 0; samples before the fade region are unchanged. If
// the fade region exceeds the channel length, the whole channel is ramped.
func FadeOut(channels [][]float32, ms float64, rate int) [][]float32 {
	return fade(channels, ms, rate, false)
}

func fade(channels [][]float32, ms float64, rate int, in bool) [][]float32 {
	fadeLen := int(ms * float64(rate) / 1000)

	out := make([][]float32, len(channels))
	for c, ch := range channels {
		buf := make([]float32, len(ch))
		copy(buf, ch)

		n := fadeLen
		if n > len(buf) {
			n = len(buf)
		}
		if n <= 0 {
			out[c] = buf
			continue
		}

		if in {
			for i := 0; i < n; i++ {
				buf[i] *= float32(i) / float32(n)
			}
		} else {
			start := len(buf) - n
			for i := 0; i < n; i++ {
				buf[start+i] *= float32(n-i-1) / float32(n)
			}
		}

		out[c] = buf
	}
	return out
}
