// Command loudcore measures and normalizes the integrated loudness and
// true peak of a WAV file.
//
// Usage:
//
//	loudcore [flags] input.wav
//
// Examples:
//
//	loudcore track.wav
//	loudcore --normalize --target -16 --out normalized.wav track.wav
//	loudcore --trim-silence --out trimmed.wav track.wav
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"

	"github.com/cwbudde/loudcore/codec/wav"
	"github.com/cwbudde/loudcore/dsp/core"
	"github.com/cwbudde/loudcore/track"
	"github.com/cwbudde/loudcore/transform"
)

func main() {
	target := pflag.Float64P("target", "t", track.DefaultNormalizeTargetLUFS, "normalize target loudness in LUFS")
	peakLimit := pflag.Float64P("peak-limit", "p", track.DefaultNormalizePeakLimitDBTP, "normalize true-peak ceiling in dBTP")
	normalize := pflag.BoolP("normalize", "n", false, "normalize loudness before reporting")
	trimSilence := pflag.Bool("trim-silence", false, "trim leading/trailing silence before reporting")
	trimThreshold := pflag.Float64("trim-threshold", track.DefaultTrimSilenceThresholdDB, "trim_silence RMS threshold in dB")
	trimHeadMs := pflag.Float64("trim-head-ms", track.DefaultTrimSilenceHeadMs, "trim_silence lead-in, milliseconds")
	trimTailMs := pflag.Float64("trim-tail-ms", track.DefaultTrimSilenceTailMs, "trim_silence trail-out, milliseconds")
	outPath := pflag.StringP("out", "o", "", "write the (possibly normalized) track to this WAV path")
	verbose := pflag.BoolP("verbose", "v", false, "enable debug logging")
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: loudcore [flags] input.wav\n\n")
		pflag.PrintDefaults()
	}
	pflag.Parse()

	logger := log.New(os.Stderr)
	if *verbose {
		logger.SetLevel(log.DebugLevel)
	}

	args := pflag.Args()
	if len(args) != 1 {
		pflag.Usage()
		os.Exit(2)
	}

	opts := runOptions{
		normalize:     *normalize,
		target:        *target,
		peakLimit:     *peakLimit,
		trimSilence:   *trimSilence,
		trimThreshold: *trimThreshold,
		trimHeadMs:    *trimHeadMs,
		trimTailMs:    *trimTailMs,
		outPath:       *outPath,
	}
	if err := run(logger, args[0], opts); err != nil {
		logger.Error("loudcore failed", "err", err)
		os.Exit(1)
	}
}

type runOptions struct {
	normalize     bool
	target        float64
	peakLimit     float64
	trimSilence   bool
	trimThreshold float64
	trimHeadMs    float64
	trimTailMs    float64
	outPath       string
}

func run(logger *log.Logger, inputPath string, opts runOptions) error {
	data, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	if len(data) < 4 || string(data[:4]) != "RIFF" {
		return fmt.Errorf("loudcore: only WAV input is supported from the command line")
	}

	channels, rate, err := wav.Decode(data)
	if err != nil {
		return fmt.Errorf("decoding WAV: %w", err)
	}

	tr, err := track.FromChannels(channels, rate)
	if err != nil {
		return fmt.Errorf("constructing track: %w", err)
	}

	logger.Debug("loaded track", "duration_sec", tr.DurationSec(), "channels", tr.ChannelCount(), "rate", tr.SampleRate())

	if opts.trimSilence {
		logger.Info("trimming silence", "threshold_db", opts.trimThreshold, "head_ms", opts.trimHeadMs, "tail_ms", opts.trimTailMs)
		tr, err = tr.TrimSilence(
			transform.WithTrimSilenceThresholdDB(opts.trimThreshold),
			transform.WithTrimSilenceHeadMs(opts.trimHeadMs),
			transform.WithTrimSilenceTailMs(opts.trimTailMs),
		)
		if err != nil {
			return fmt.Errorf("trimming silence: %w", err)
		}
	}

	if opts.normalize {
		logger.Info("normalizing", "target_lufs", opts.target, "peak_limit_dbtp", opts.peakLimit)
		tr, err = tr.NormalizeLoudness(
			transform.WithNormalizeTargetLUFS(opts.target),
			transform.WithNormalizePeakLimitDBTP(opts.peakLimit),
		)
		if err != nil {
			return fmt.Errorf("normalizing: %w", err)
		}
	}

	lufs, err := tr.Loudness()
	if err != nil {
		return fmt.Errorf("measuring loudness: %w", err)
	}
	peak := tr.TruePeak()

	fmt.Printf("loudness: %.2f LUFS\n", lufs)
	fmt.Printf("true peak: %.4f (%.2f dBTP)\n", peak, core.LinearToDB(peak))

	if opts.outPath != "" {
		if err := os.WriteFile(opts.outPath, tr.ToWAV(), 0o644); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
		logger.Info("wrote output", "path", opts.outPath)
	}

	return nil
}
