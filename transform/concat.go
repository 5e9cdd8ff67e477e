package transform

import "fmt"

// Concat appends b after a, per channel. Requires matching channel count
// (ErrChannelCountMismatch) and matching sample rate rateA == rateB
// (ErrSampleRateMismatch).
func Concat(a [][]float32, rateA int, b [][]float32, rateB int) ([][]float32, error) {
	if len(a) != len(b) {
		return nil, fmt.Errorf("%w: %d vs %d", ErrChannelCountMismatch, len(a), len(b))
	}
	if rateA != rateB {
		return nil, fmt.Errorf("%w: %d vs %d", ErrSampleRateMismatch, rateA, rateB)
	}

	out := make([][]float32, len(a))
	for c := range a {
		buf := make([]float32, len(a[c])+len(b[c]))
		n := copy(buf, a[c])
		copy(buf[n:], b[c])
		out[c] = buf
	}
	return out, nil
}
