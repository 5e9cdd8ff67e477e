package transform

import (
	"fmt"
	"math"
)

const (
	defaultNormalizeTargetLUFS    = -14.0
	defaultNormalizePeakLimitDBTP = -1.5
	minNormalizeTargetLUFS        = -70.0
	maxNormalizeTargetLUFS        = 0.0
	maxNormalizePeakLimitDBTP     = 0.0

	defaultTrimSilenceThresholdDB = -30.0
	defaultTrimSilenceHeadMs      = 10.0
	defaultTrimSilenceTailMs      = 50.0
	maxTrimSilenceThresholdDB     = 0.0
)

// NormalizeOption mutates NormalizeLoudness configuration.
type NormalizeOption func(*normalizeConfig) error

type normalizeConfig struct {
	targetLUFS    float64
	peakLimitDBTP float64
}

func defaultNormalizeConfig() normalizeConfig {
	return normalizeConfig{
		targetLUFS:    defaultNormalizeTargetLUFS,
		peakLimitDBTP: defaultNormalizePeakLimitDBTP,
	}
}

// WithNormalizeTargetLUFS overrides the integrated-loudness target.
// Range: [-70, 0] LUFS.
func WithNormalizeTargetLUFS(targetLUFS float64) NormalizeOption {
	return func(cfg *normalizeConfig) error {
		if math.IsNaN(targetLUFS) || targetLUFS < minNormalizeTargetLUFS || targetLUFS > maxNormalizeTargetLUFS {
			return fmt.Errorf("normalize target must be in [%g, %g] LUFS: %f",
				minNormalizeTargetLUFS, maxNormalizeTargetLUFS, targetLUFS)
		}
		cfg.targetLUFS = targetLUFS
		return nil
	}
}

// WithNormalizePeakLimitDBTP overrides the true-peak ceiling applied after
// the target gain is computed. Must be <= 0 dBTP.
func WithNormalizePeakLimitDBTP(peakLimitDBTP float64) NormalizeOption {
	return func(cfg *normalizeConfig) error {
		if math.IsNaN(peakLimitDBTP) || peakLimitDBTP > maxNormalizePeakLimitDBTP {
			return fmt.Errorf("normalize peak limit must be <= %g dBTP: %f",
				maxNormalizePeakLimitDBTP, peakLimitDBTP)
		}
		cfg.peakLimitDBTP = peakLimitDBTP
		return nil
	}
}

// TrimSilenceOption mutates TrimSilence configuration.
type TrimSilenceOption func(*trimSilenceConfig) error

type trimSilenceConfig struct {
	thresholdDB float64
	headMs      float64
	tailMs      float64
}

func defaultTrimSilenceConfig() trimSilenceConfig {
	return trimSilenceConfig{
		thresholdDB: defaultTrimSilenceThresholdDB,
		headMs:      defaultTrimSilenceHeadMs,
		tailMs:      defaultTrimSilenceTailMs,
	}
}

// WithTrimSilenceThresholdDB overrides the RMS threshold, in dB, below which
// a window is considered silent. Must be <= 0.
func WithTrimSilenceThresholdDB(thresholdDB float64) TrimSilenceOption {
	return func(cfg *trimSilenceConfig) error {
		if math.IsNaN(thresholdDB) || thresholdDB > maxTrimSilenceThresholdDB {
			return fmt.Errorf("trim silence threshold must be <= %g dB: %f",
				maxTrimSilenceThresholdDB, thresholdDB)
		}
		cfg.thresholdDB = thresholdDB
		return nil
	}
}

// WithTrimSilenceHeadMs overrides the lead-in, in milliseconds, kept before
// the first surviving window. Must be >= 0.
func WithTrimSilenceHeadMs(headMs float64) TrimSilenceOption {
	return func(cfg *trimSilenceConfig) error {
		if math.IsNaN(headMs) || math.IsInf(headMs, 0) || headMs < 0 {
			return fmt.Errorf("trim silence head_ms must be >= 0: %f", headMs)
		}
		cfg.headMs = headMs
		return nil
	}
}

// WithTrimSilenceTailMs overrides the trail-out, in milliseconds, kept
// after the last surviving window. Must be >= 0.
func WithTrimSilenceTailMs(tailMs float64) TrimSilenceOption {
	return func(cfg *trimSilenceConfig) error {
		if math.IsNaN(tailMs) || math.IsInf(tailMs, 0) || tailMs < 0 {
			return fmt.Errorf("trim silence tail_ms must be >= 0: %f", tailMs)
		}
		cfg.tailMs = tailMs
		return nil
	}
}
