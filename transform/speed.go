package transform

import (
	"fmt"
	"math"
)

// Speed resamples every channel by rateFactor via linear interpolation.
// Output length is round(N/rateFactor); sample rate is unchanged, so pitch
// shifts with speed. Requires rateFactor > 0.
func Speed(channels [][]float32, rateFactor float64) ([][]float32, error) {
	if rateFactor <= 0 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSpeedRate, rateFactor)
	}

	out := make([][]float32, len(channels))
	for c, ch := range channels {
		n := len(ch)
		outLen := int(math.Round(float64(n) / rateFactor))

		buf := make([]float32, outLen)
		for i := 0; i < outLen; i++ {
			s := float64(i) * rateFactor
			idx := int(math.Floor(s))
			f := s - float64(idx)

			if idx >= n {
				idx = n - 1
				f = 0
			}

			next := idx + 1
			if next >= n {
				next = n - 1
			}

			var x0, x1 float32
			if n > 0 {
				x0 = ch[idx]
				x1 = ch[next]
			}

			buf[i] = float32(float64(x0)*(1-f) + float64(x1)*f)
		}
		out[c] = buf
	}
	return out, nil
}
