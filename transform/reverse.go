package transform

// Reverse mirrors every channel. Reverse(Reverse(c)) reproduces c.
func Reverse(channels [][]float32) [][]float32 {
	out := make([][]float32, len(channels))
	for c, ch := range channels {
		buf := make([]float32, len(ch))
		n := len(ch)
		for i, x := range ch {
			buf[n-1-i] = x
		}
		out[c] = buf
	}
	return out
}
