// Package loudness implements ITU-R BS.1770-4 / EBU R128 integrated
// loudness measurement over a fully buffered, in-memory signal: K-weight
// every channel, segment into 400 ms / 100 ms-hop gating blocks, then apply
// the dual absolute/relative gate.
package loudness

import (
	"math"

	"github.com/cwbudde/loudcore/dsp/core"
	"github.com/cwbudde/loudcore/dsp/filter/kweighting"
)

const (
	blockDurationSec = 0.4
	blockOverlap     = 0.75 // 75% overlap between successive gating blocks
	hopFactor        = 1 - blockOverlap

	absoluteGateLUFS = -70.0
	relativeGateLU   = -10.0
)

// BlockSize returns the gating block length in samples at the given rate:
// floor(0.4 * rate).
func BlockSize(rate int) int {
	return int(blockDurationSec * float64(rate))
}

// HopSize returns the gating block hop length in samples: floor(blockSize * 0.25).
func HopSize(rate int) int {
	return int(float64(BlockSize(rate)) * hopFactor)
}

// Integrated computes the BS.1770-4 integrated loudness in LUFS for a set
// of channel buffers (all equal length) at rate. Returns -Inf (not an
// error) when channels is empty, the track is shorter than one 400 ms
// block, or all surviving blocks are gated out. Returns
// kweighting.ErrUnsupportedSampleRate if rate has no K-weighting table.
func Integrated(channels [][]float64, rate int) (float64, error) {
	if len(channels) == 0 {
		return math.Inf(-1), nil
	}

	weights := kweighting.ChannelWeights(len(channels))

	weighted := make([][]float64, len(channels))
	for i, ch := range channels {
		w, err := kweighting.Apply(ch, rate)
		if err != nil {
			return 0, err
		}
		weighted[i] = w
	}

	blocks := blockPowers(weighted, weights, rate)
	if len(blocks) == 0 {
		return math.Inf(-1), nil
	}

	gated := applyGating(blocks)
	if gated == 0 {
		return math.Inf(-1), nil
	}

	return toLUFS(gated), nil
}

// blockPowers segments the K-weighted channels into overlapping 400 ms
// blocks and returns each block's weighted power sum across channels.
func blockPowers(weighted [][]float64, weights []float64, rate int) []float64 {
	blockSize := BlockSize(rate)
	hop := HopSize(rate)
	if blockSize <= 0 || hop <= 0 {
		return nil
	}

	n := len(weighted[0])

	var blocks []float64
	for start := 0; start+blockSize <= n; start += hop {
		var power float64
		for ch, samples := range weighted {
			var sumSq float64
			for _, s := range samples[start : start+blockSize] {
				sumSq += s * s
			}
			meanSq := sumSq / float64(blockSize)
			power += weights[ch] * meanSq
		}
		blocks = append(blocks, power)
	}

	return blocks
}

// applyGating runs the BS.1770 dual absolute/relative gate over block
// powers and returns the integrated mean-square power, or 0 if every block
// is gated out.
func applyGating(blocks []float64) float64 {
	absThresholdPower := powerAtLUFS(absoluteGateLUFS)

	var (
		absGated    []float64
		absGatedSum float64
	)
	for _, p := range blocks {
		if p > absThresholdPower {
			absGated = append(absGated, p)
			absGatedSum += p
		}
	}
	if len(absGated) == 0 {
		return 0
	}

	relativeThresholdLUFS := toLUFS(absGatedSum/float64(len(absGated))) + relativeGateLU
	relativeThresholdPower := powerAtLUFS(relativeThresholdLUFS)

	var (
		relGatedSum   float64
		relGatedCount int
	)
	for _, p := range absGated {
		if p > relativeThresholdPower {
			relGatedSum += p
			relGatedCount++
		}
	}
	if relGatedCount == 0 {
		return 0
	}

	return relGatedSum / float64(relGatedCount)
}

// toLUFS converts mean-square K-weighted power to LUFS.
func toLUFS(meanSquare float64) float64 {
	if meanSquare <= 0 {
		return math.Inf(-1)
	}
	return -0.691 + core.LinearPowerToDB(meanSquare)
}

// powerAtLUFS inverts toLUFS: the mean-square power corresponding to a
// given LUFS value.
func powerAtLUFS(lufs float64) float64 {
	return core.DBPowerToLinear(lufs + 0.691)
}
