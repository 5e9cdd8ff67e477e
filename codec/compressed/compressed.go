// Package compressed defines the decode/encode boundary for formats outside
// the canonical WAV container (MP3, OGG, FLAC). These are treated as
// external collaborators: loudcore supplies the interfaces and a ready-made
// MP3 decoder, and leaves encoding to a caller-supplied implementation since
// no lossy encoder is bundled.
package compressed

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/hajimehoshi/go-mp3"
)

// ErrDecodeFailed wraps any underlying decode error from a Decoder
// implementation.
var ErrDecodeFailed = errors.New("compressed: decode failed")

// ErrNoEncoderConfigured is returned by operations that need to produce a
// compressed buffer when no Encoder has been supplied.
var ErrNoEncoderConfigured = errors.New("compressed: no encoder configured")

// Decoder turns an encoded buffer into per-channel float32 samples in
// [-1, 1] plus the sample rate in Hz.
type Decoder interface {
	Decode(data []byte) (channels [][]float32, sampleRate int, err error)
}

// Encoder turns per-channel float32 samples into an encoded buffer at the
// requested bitrate. loudcore ships no default implementation: callers that
// need lossy export supply their own, backed by whichever library or
// external tool fits their deployment.
type Encoder interface {
	Encode(channels [][]float32, sampleRate, bitrateKbps int) ([]byte, error)
}

// MP3Decoder decodes MP3 via go-mp3, a pure-Go decoder. go-mp3 always
// produces 16-bit little-endian stereo PCM regardless of the source file's
// channel count; mono sources arrive with both channels identical.
type MP3Decoder struct{}

// Decode implements Decoder.
func (MP3Decoder) Decode(data []byte) ([][]float32, int, error) {
	dec, err := mp3.NewDecoder(bytes.NewReader(data))
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrDecodeFailed, err)
	}

	rate := dec.SampleRate()

	var left, right []float32

	buf := make([]byte, 4096)
	for {
		n, err := dec.Read(buf)
		if n > 0 {
			frames := n / 4 // 2 channels * 2 bytes
			for i := 0; i < frames; i++ {
				l := int16(buf[i*4]) | int16(buf[i*4+1])<<8
				r := int16(buf[i*4+2]) | int16(buf[i*4+3])<<8
				left = append(left, int16ToFloat32(l))
				right = append(right, int16ToFloat32(r))
			}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, 0, fmt.Errorf("%w: %v", ErrDecodeFailed, err)
		}
	}

	return [][]float32{left, right}, rate, nil
}

func int16ToFloat32(v int16) float32 {
	if v < 0 {
		return float32(v) / 32768
	}
	return float32(v) / 32767
}
