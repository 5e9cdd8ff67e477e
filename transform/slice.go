package transform

// Slice extracts samples in [floor(startMs*rate/1000), floor(endMs*rate/1000))
// from every channel. endMs < 0 means end-of-track. Out-of-range indices
// clamp to buffer bounds.
func Slice(channels [][]float32, startMs float64, endMs float64, rate int) [][]float32 {
	out := make([][]float32, len(channels))
	for c, ch := range channels {
		start := int(startMs * float64(rate) / 1000)
		end := len(ch)
		if endMs >= 0 {
			end = int(endMs * float64(rate) / 1000)
		}

		if start < 0 {
			start = 0
		}
		if end > len(ch) {
			end = len(ch)
		}
		if start > end {
			start = end
		}

		buf := make([]float32, end-start)
		copy(buf, ch[start:end])
		out[c] = buf
	}
	return out
}
