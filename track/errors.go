package track

import (
	"errors"

	"github.com/cwbudde/loudcore/codec/compressed"
	"github.com/cwbudde/loudcore/codec/wav"
	"github.com/cwbudde/loudcore/dsp/filter/kweighting"
	"github.com/cwbudde/loudcore/transform"
)

// ErrUnsupportedSampleRate is raised when loudness measurement is invoked
// at a rate other than 44100 or 48000 Hz.
var ErrUnsupportedSampleRate = kweighting.ErrUnsupportedSampleRate

// ErrChannelCountMismatch is raised by Concat/Mix across differing channel counts.
var ErrChannelCountMismatch = transform.ErrChannelCountMismatch

// ErrSampleRateMismatch is raised by Concat/Mix across differing sample rates.
var ErrSampleRateMismatch = transform.ErrSampleRateMismatch

// ErrInvalidSpeedRate is raised by Speed(rate) with rate <= 0.
var ErrInvalidSpeedRate = transform.ErrInvalidSpeedRate

// ErrInvalidWav is raised when a WAV header is missing RIFF/WAVE magic or
// shorter than 44 bytes.
var ErrInvalidWav = wav.ErrInvalidWav

// ErrChannelIndexOutOfRange is raised by GetChannel(i) with i < 0 or i >= channel count.
var ErrChannelIndexOutOfRange = errors.New("track: channel index out of range")

// ErrEmptyChannels is raised by FromChannels with zero channels.
var ErrEmptyChannels = errors.New("track: channels must be non-empty")

// ErrChannelLengthMismatch is raised by FromChannels when buffers differ in length.
var ErrChannelLengthMismatch = errors.New("track: channel buffers must share the same length")

// ErrInvalidSampleRate is raised by FromChannels with rate <= 0. Silence
// does not raise it; it substitutes DefaultSilenceSampleRate instead.
var ErrInvalidSampleRate = errors.New("track: sample rate must be > 0")

// ErrNoDecoderConfigured is raised by FromBuffer on non-WAV input when no
// compressed.Decoder has been supplied.
var ErrNoDecoderConfigured = errors.New("track: no decoder configured for non-WAV input")

// ErrDecodeFailed is raised when an external compressed decoder fails.
var ErrDecodeFailed = compressed.ErrDecodeFailed

// ErrNoEncoderConfigured is raised by ToMP3 when no compressed.Encoder has
// been supplied.
var ErrNoEncoderConfigured = compressed.ErrNoEncoderConfigured
