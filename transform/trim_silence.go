package transform

import (
	"math"

	"github.com/cwbudde/loudcore/dsp/core"
)

const trimWindowMs = 10.0

// TrimSilence scans channels in windowed-RMS steps of trimWindowMs,
// locating the first and last window whose cross-channel max RMS exceeds
// the linear equivalent of the configured threshold (default -30 dB). The
// surviving region is expanded by the configured head/tail margins (default
// 10 ms / 50 ms, clamped to buffer bounds) and sliced out. If no window
// exceeds the threshold, the input is returned unchanged.
func TrimSilence(channels [][]float32, rate int, opts ...TrimSilenceOption) ([][]float32, error) {
	cfg := defaultTrimSilenceConfig()
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	if len(channels) == 0 || len(channels[0]) == 0 {
		return copyChannels(channels), nil
	}

	threshold := core.DBToLinear(cfg.thresholdDB)
	windowLen := int(trimWindowMs * float64(rate) / 1000)
	if windowLen <= 0 {
		windowLen = 1
	}

	n := len(channels[0])

	firstActive := -1
	lastActive := -1

	for start := 0; start < n; start += windowLen {
		end := start + windowLen
		if end > n {
			end = n
		}

		if windowRMSExceeds(channels, start, end, threshold) {
			if firstActive == -1 {
				firstActive = start
			}
			lastActive = end
		}
	}

	if firstActive == -1 {
		return copyChannels(channels), nil
	}

	headSamples := int(cfg.headMs * float64(rate) / 1000)
	tailSamples := int(cfg.tailMs * float64(rate) / 1000)

	start := firstActive - headSamples
	if start < 0 {
		start = 0
	}
	end := lastActive + tailSamples
	if end > n {
		end = n
	}

	out := make([][]float32, len(channels))
	for c, ch := range channels {
		buf := make([]float32, end-start)
		copy(buf, ch[start:end])
		out[c] = buf
	}
	return out, nil
}

func windowRMSExceeds(channels [][]float32, start, end int, threshold float64) bool {
	for _, ch := range channels {
		var sumSq float64
		for i := start; i < end; i++ {
			x := float64(ch[i])
			sumSq += x * x
		}
		rms := 0.0
		if end > start {
			rms = math.Sqrt(sumSq / float64(end-start))
		}
		if rms > threshold {
			return true
		}
	}
	return false
}

func copyChannels(channels [][]float32) [][]float32 {
	out := make([][]float32, len(channels))
	for c, ch := range channels {
		buf := make([]float32, len(ch))
		copy(buf, ch)
		out[c] = buf
	}
	return out
}
