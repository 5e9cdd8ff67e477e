package transform

import (
	"fmt"

	"github.com/cwbudde/loudcore/dsp/core"
)

// Mix sums a and b sample-wise, applying gainDB to b, zero-extending the
// shorter of the two. Requires matching channel count and sample rate.
func Mix(a [][]float32, rateA int, b [][]float32, rateB int, gainDB float64) ([][]float32, error) {
	if len(a) != len(b) {
		return nil, fmt.Errorf("%w: %d vs %d", ErrChannelCountMismatch, len(a), len(b))
	}
	if rateA != rateB {
		return nil, fmt.Errorf("%w: %d vs %d", ErrSampleRateMismatch, rateA, rateB)
	}

	gain := float32(core.DBToLinear(gainDB))

	out := make([][]float32, len(a))
	for c := range a {
		n := len(a[c])
		if len(b[c]) > n {
			n = len(b[c])
		}

		buf := make([]float32, n)
		for i := 0; i < n; i++ {
			var av, bv float32
			if i < len(a[c]) {
				av = a[c][i]
			}
			if i < len(b[c]) {
				bv = b[c][i]
			}
			buf[i] = av + gain*bv
		}
		out[c] = buf
	}
	return out, nil
}
