// Package kweighting implements the ITU-R BS.1770-4 / EBU R128 K-weighting
// filter cascade (high-shelf pre-filter followed by the RLB high-pass) and
// the per-channel loudness weights consumed by measure/loudness.
package kweighting

import (
	"errors"
	"fmt"

	"github.com/cwbudde/loudcore/dsp/filter/biquad"
)

// ErrUnsupportedSampleRate is returned when K-weighting is requested at a
// sample rate other than 44100 Hz or 48000 Hz, the only two rates BS.1770-4
// defines coefficient tables for.
var ErrUnsupportedSampleRate = errors.New("kweighting: unsupported sample rate")

// table holds the full-precision coefficients for one sample rate.
type table struct {
	pre biquad.Coefficients // high-shelf pre-filter
	rlb biquad.Coefficients // Revised Low-frequency B-curve high-pass
}

var tables = map[int]table{
	48000: {
		pre: biquad.NewCoefficients(
			1.53512485958697, -2.69169618940638, 1.19839281085285,
			1, -1.69065929318241, 0.73248077421585,
		),
		rlb: biquad.NewCoefficients(
			1, -2, 1,
			1, -1.99004745483398, 0.99007225036621,
		),
	},
	44100: {
		pre: biquad.NewCoefficients(
			1.5308412300498355, -2.6509799951536985, 1.1690790799210682,
			1, -1.6636551132560204, 0.7125954280732254,
		),
		rlb: biquad.NewCoefficients(
			1, -2, 1,
			1, -1.9891696736297957, 0.9891990357870394,
		),
	},
}

// Supported reports whether rate has a defined K-weighting table.
func Supported(rate int) bool {
	_, ok := tables[rate]
	return ok
}

// Cascade applies the K-weighting pre-filter and RLB high-pass in series,
// each with independent zero-initialized state.
type Cascade struct {
	pre *biquad.Section
	rlb *biquad.Section
}

// New builds a fresh K-weighting cascade for rate. Returns
// ErrUnsupportedSampleRate for any rate other than 44100 or 48000 Hz.
func New(rate int) (*Cascade, error) {
	t, ok := tables[rate]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedSampleRate, rate)
	}

	return &Cascade{
		pre: biquad.NewSection(t.pre),
		rlb: biquad.NewSection(t.rlb),
	}, nil
}

// ProcessSample filters one sample through pre-filter then RLB.
func (c *Cascade) ProcessSample(x float64) float64 {
	return c.rlb.ProcessSample(c.pre.ProcessSample(x))
}

// Apply returns a new buffer of identical length containing
// rlb(pre(samples)), using a fresh zero-state cascade for rate.
func Apply(samples []float64, rate int) ([]float64, error) {
	c, err := New(rate)
	if err != nil {
		return nil, err
	}

	out := make([]float64, len(samples))
	for i, x := range samples {
		out[i] = c.ProcessSample(x)
	}

	return out, nil
}

// ChannelWeights returns the BS.1770 channel power weights for a channel
// layout of the given count. 1 and 2 channels (mono, stereo) weight every
// channel 1.0. 6 channels follow the 5.1 layout (L, R, C, LFE, Ls, Rs),
// excluding the LFE channel (index 3) with weight 0. Any other channel
// count defaults to 1.0 per channel.
func ChannelWeights(channels int) []float64 {
	switch channels {
	case 6:
		return []float64{1, 1, 1, 0, 1.41253754462275, 1.41253754462275}
	default:
		w := make([]float64, channels)
		for i := range w {
			w[i] = 1.0
		}
		return w
	}
}
