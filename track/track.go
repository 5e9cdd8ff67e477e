// Package track implements the immutable audio container: construction
// from raw bytes or channel buffers, loudness/peak measurement, a family of
// loudness-preserving transforms, and WAV/MP3/PCM export. Every operation
// returns a fresh Track; the receiver is never mutated.
package track

import (
	"context"
	"fmt"
	"math"

	"github.com/cwbudde/loudcore/codec/compressed"
	"github.com/cwbudde/loudcore/codec/wav"
	"github.com/cwbudde/loudcore/measure/loudness"
	"github.com/cwbudde/loudcore/measure/truepeak"
	"github.com/cwbudde/loudcore/transform"
)

const (
	// DefaultNormalizeTargetLUFS is the default normalize_loudness target.
	DefaultNormalizeTargetLUFS = -14.0
	// DefaultNormalizePeakLimitDBTP is the default normalize_loudness true-peak ceiling.
	DefaultNormalizePeakLimitDBTP = -1.5
	// DefaultTrimSilenceThresholdDB is the default trim_silence threshold.
	DefaultTrimSilenceThresholdDB = -30.0
	// DefaultTrimSilenceHeadMs is the default trim_silence lead-in.
	DefaultTrimSilenceHeadMs = 10.0
	// DefaultTrimSilenceTailMs is the default trim_silence trail-out.
	DefaultTrimSilenceTailMs = 50.0
	// DefaultMP3BitrateKbps is the default to_mp3 bitrate.
	DefaultMP3BitrateKbps = 128

	// DefaultSilenceSampleRate is the sample rate used by Silence when rate <= 0.
	DefaultSilenceSampleRate = 44100
	// DefaultSilenceChannels is the channel count used by Silence when channels <= 0.
	DefaultSilenceChannels = 1
)

// Track is an immutable bundle of equal-length channel buffers and a
// sample rate. It is never mutated after construction; every method that
// appears to modify a Track returns a new one.
type Track struct {
	channels   [][]float32
	sampleRate int
}

// SampleRate returns the sample rate in Hz.
func (t *Track) SampleRate() int { return t.sampleRate }

// ChannelCount returns the number of channels. No constructor limits the
// count to 1 or 2: FromChannels, Silence and FromBuffer accept any positive
// count.
func (t *Track) ChannelCount() int { return len(t.channels) }

// Length returns the number of samples per channel.
func (t *Track) Length() int {
	if len(t.channels) == 0 {
		return 0
	}
	return len(t.channels[0])
}

// DurationSec returns Length() / SampleRate().
func (t *Track) DurationSec() float64 {
	if t.sampleRate == 0 {
		return 0
	}
	return float64(t.Length()) / float64(t.sampleRate)
}

// FromChannels validates and copies channels (non-empty, equal length,
// rate > 0) into a new Track. The caller's buffers are never aliased.
func FromChannels(channels [][]float32, rate int) (*Track, error) {
	if len(channels) == 0 {
		return nil, ErrEmptyChannels
	}
	if rate <= 0 {
		return nil, ErrInvalidSampleRate
	}

	n := len(channels[0])
	for _, ch := range channels {
		if len(ch) != n {
			return nil, ErrChannelLengthMismatch
		}
	}

	return &Track{channels: copyChannels(channels), sampleRate: rate}, nil
}

// Silence allocates durationMs of zero-filled audio. rate defaults to
// 44100 Hz and channels to 1 when non-positive.
func Silence(durationMs float64, rate, channels int) (*Track, error) {
	if rate <= 0 {
		rate = DefaultSilenceSampleRate
	}
	if channels <= 0 {
		channels = DefaultSilenceChannels
	}

	n := int(durationMs * float64(rate) / 1000)
	if n < 0 {
		n = 0
	}

	bufs := make([][]float32, channels)
	for c := range bufs {
		bufs[c] = make([]float32, n)
	}

	return &Track{channels: bufs, sampleRate: rate}, nil
}

// FromBuffer sniffs the first four bytes of data: "RIFF" is parsed as WAV
// in-process; anything else is handed to dec, an external compressed
// decoder. Asynchronous because decoding may be; the returned channel
// yields exactly one Track or one error.
func FromBuffer(ctx context.Context, data []byte, dec compressed.Decoder) <-chan Result {
	out := make(chan Result, 1)

	go func() {
		defer close(out)

		if len(data) >= 4 && string(data[0:4]) == "RIFF" {
			channels, rate, err := wav.Decode(data)
			if err != nil {
				out <- Result{Err: err}
				return
			}
			out <- Result{Track: &Track{channels: channels, sampleRate: rate}}
			return
		}

		if dec == nil {
			out <- Result{Err: ErrNoDecoderConfigured}
			return
		}

		select {
		case <-ctx.Done():
			out <- Result{Err: ctx.Err()}
			return
		default:
		}

		channels, rate, err := dec.Decode(data)
		if err != nil {
			out <- Result{Err: fmt.Errorf("%w: %v", ErrDecodeFailed, err)}
			return
		}
		out <- Result{Track: &Track{channels: channels, sampleRate: rate}}
	}()

	return out
}

// Result carries the outcome of an asynchronous FromBuffer decode.
type Result struct {
	Track *Track
	Err   error
}

// Loudness returns the integrated loudness in LUFS, or -Inf for silence or
// input shorter than one 400 ms gating block.
func (t *Track) Loudness() (float64, error) {
	return loudness.Integrated(toFloat64(t.channels), t.sampleRate)
}

// TruePeak returns the linear maximum true peak across all channels.
func (t *Track) TruePeak() float64 {
	return truepeak.Max(t.channels)
}

// RMS returns the root-mean-square level as a linear value (not dB) across
// all channels and samples.
func (t *Track) RMS() float64 {
	var sumSq float64
	var n int
	for _, ch := range t.channels {
		for _, x := range ch {
			sumSq += float64(x) * float64(x)
		}
		n += len(ch)
	}
	if n == 0 {
		return 0
	}
	return math.Sqrt(sumSq / float64(n))
}

// GetChannel returns a copy of channel i.
func (t *Track) GetChannel(i int) ([]float32, error) {
	if i < 0 || i >= len(t.channels) {
		return nil, fmt.Errorf("%w: index %d, have %d channels", ErrChannelIndexOutOfRange, i, len(t.channels))
	}
	buf := make([]float32, len(t.channels[i]))
	copy(buf, t.channels[i])
	return buf, nil
}

// Gain multiplies every sample by db_to_linear(db).
func (t *Track) Gain(db float64) *Track {
	return &Track{channels: transform.Gain(t.channels, db), sampleRate: t.sampleRate}
}

// FadeIn ramps the first ms milliseconds in from 0 to 1.
func (t *Track) FadeIn(ms float64) *Track {
	return &Track{channels: transform.FadeIn(t.channels, ms, t.sampleRate), sampleRate: t.sampleRate}
}

// FadeOut ramps the last ms milliseconds out from 1 to 0.
func (t *Track) FadeOut(ms float64) *Track {
	return &Track{channels: transform.FadeOut(t.channels, ms, t.sampleRate), sampleRate: t.sampleRate}
}

// Slice extracts [startMs, endMs); endMs < 0 means end-of-track.
func (t *Track) Slice(startMs, endMs float64) *Track {
	return &Track{channels: transform.Slice(t.channels, startMs, endMs, t.sampleRate), sampleRate: t.sampleRate}
}

// Reverse mirrors every channel.
func (t *Track) Reverse() *Track {
	return &Track{channels: transform.Reverse(t.channels), sampleRate: t.sampleRate}
}

// Concat appends other after t. Requires matching sample rate and channel count.
func (t *Track) Concat(other *Track) (*Track, error) {
	channels, err := transform.Concat(t.channels, t.sampleRate, other.channels, other.sampleRate)
	if err != nil {
		return nil, err
	}
	return &Track{channels: channels, sampleRate: t.sampleRate}, nil
}

// Mix sums t and other sample-wise, applying gainDB to other. Requires
// matching sample rate and channel count.
func (t *Track) Mix(other *Track, gainDB float64) (*Track, error) {
	channels, err := transform.Mix(t.channels, t.sampleRate, other.channels, other.sampleRate, gainDB)
	if err != nil {
		return nil, err
	}
	return &Track{channels: channels, sampleRate: t.sampleRate}, nil
}

// Speed resamples by rateFactor via linear interpolation; pitch shifts with speed.
func (t *Track) Speed(rateFactor float64) (*Track, error) {
	channels, err := transform.Speed(t.channels, rateFactor)
	if err != nil {
		return nil, err
	}
	return &Track{channels: channels, sampleRate: t.sampleRate}, nil
}

// TrimSilence scans for the first/last window whose RMS exceeds the
// configured threshold (default -30 dB) and expands by the configured
// head/tail margins (default 10 ms / 50 ms) before slicing. Pass
// transform.With* options to override any default.
func (t *Track) TrimSilence(opts ...transform.TrimSilenceOption) (*Track, error) {
	channels, err := transform.TrimSilence(t.channels, t.sampleRate, opts...)
	if err != nil {
		return nil, err
	}
	return &Track{channels: channels, sampleRate: t.sampleRate}, nil
}

// NormalizeLoudness adjusts the track to the configured target loudness
// (default -14 LUFS), backing off the gain if needed to respect the
// configured true-peak ceiling (default -1.5 dBTP). Pass transform.With*
// options to override either default.
func (t *Track) NormalizeLoudness(opts ...transform.NormalizeOption) (*Track, error) {
	channels, err := transform.NormalizeLoudness(t.channels, t.sampleRate, opts...)
	if err != nil {
		return nil, err
	}
	return &Track{channels: channels, sampleRate: t.sampleRate}, nil
}

// ToWAV serializes the track as a canonical 16-bit PCM RIFF/WAVE buffer.
func (t *Track) ToWAV() []byte {
	return wav.Encode(t.channels, t.sampleRate)
}

// ToMP3 serializes the track via enc, an external MP3 encoder, at the
// given bitrate in kbps.
func (t *Track) ToMP3(enc compressed.Encoder, bitrateKbps int) ([]byte, error) {
	if enc == nil {
		return nil, ErrNoEncoderConfigured
	}
	return enc.Encode(t.channels, t.sampleRate, bitrateKbps)
}

// ToPCM copies out the channel buffers.
func (t *Track) ToPCM() [][]float32 {
	return copyChannels(t.channels)
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
