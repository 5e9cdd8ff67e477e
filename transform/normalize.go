package transform

import (
	"math"

	"github.com/cwbudde/loudcore/dsp/core"
	"github.com/cwbudde/loudcore/measure/loudness"
	"github.com/cwbudde/loudcore/measure/truepeak"
)

// NormalizeLoudness adjusts channels to the configured integrated-loudness
// target (default -14 LUFS), then backs the gain off if doing so would push
// the true peak above the configured ceiling (default -1.5 dBTP). The same
// scalar gain is applied to every channel (stereo-matched), preserving the
// stereo image. If the input measures -Inf (silence or too short), it is
// returned unchanged.
func NormalizeLoudness(channels [][]float32, rate int, opts ...NormalizeOption) ([][]float32, error) {
	cfg := defaultNormalizeConfig()
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	channels64 := toFloat64(channels)

	measured, err := loudness.Integrated(channels64, rate)
	if err != nil {
		return nil, err
	}
	if math.IsInf(measured, -1) {
		return copyChannels(channels), nil
	}

	gain := core.DBToLinear(cfg.targetLUFS - measured)

	peak := truepeak.Max(channels)
	peakLimit := core.DBToLinear(cfg.peakLimitDBTP)
	if peak*gain > peakLimit {
		gain = peakLimit / peak
	}

	return applyLinearGain(channels, gain), nil
}

func applyLinearGain(channels [][]float32, gain float64) [][]float32 {
	factor := float32(gain)

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

func toFloat64(channels [][]float32) [][]float64 {
	out := make([][]float64, len(channels))
	for c, ch := range channels {
		buf := make([]float64, len(ch))
		for i, x := range ch {
			buf[i] = float64(x)
		}
		out[c] = buf
	}
	return out
}
