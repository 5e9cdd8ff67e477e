// Package wav implements the canonical 16-bit PCM RIFF/WAVE container: a
// fixed 44-byte header followed by interleaved int16 samples. This is the
// one container format loudcore owns outright (spec calls it "trivial");
// everything else is delegated to codec/compressed.
package wav

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/cwbudde/loudcore/dsp/core"
)

const headerSize = 44

// ErrInvalidWav is returned when a buffer is too short or missing the
// RIFF/WAVE magic to be a canonical WAV file.
var ErrInvalidWav = errors.New("wav: invalid or truncated header")

// Decode parses a canonical 16-bit PCM WAV buffer into per-channel float32
// samples in [-1, 1] and the sample rate in Hz.
func Decode(data []byte) (channels [][]float32, sampleRate int, err error) {
	if len(data) < headerSize {
		return nil, 0, fmt.Errorf("%w: %d bytes, need at least %d", ErrInvalidWav, len(data), headerSize)
	}
	if string(data[0:4]) != "RIFF" || string(data[8:12]) != "WAVE" {
		return nil, 0, fmt.Errorf("%w: missing RIFF/WAVE magic", ErrInvalidWav)
	}

	numChannels := int(binary.LittleEndian.Uint16(data[22:24]))
	rate := int(binary.LittleEndian.Uint32(data[24:28]))
	dataSize := int(binary.LittleEndian.Uint32(data[40:44]))

	if numChannels <= 0 || rate <= 0 {
		return nil, 0, fmt.Errorf("%w: invalid channel count or sample rate", ErrInvalidWav)
	}

	available := len(data) - headerSize
	if dataSize <= 0 || dataSize > available {
		dataSize = available
	}

	frameBytes := numChannels * 2
	numFrames := dataSize / frameBytes

	channels = make([][]float32, numChannels)
	for c := range channels {
		channels[c] = make([]float32, numFrames)
	}

	pos := headerSize
	for frame := range numFrames {
		for c := range numChannels {
			v := int16(binary.LittleEndian.Uint16(data[pos : pos+2]))
			channels[c][frame] = int16ToFloat32(v)
			pos += 2
		}
	}

	return channels, rate, nil
}

// Encode serializes channels (all equal length) at sampleRate into a
// canonical 16-bit PCM WAV buffer.
func Encode(channels [][]float32, sampleRate int) []byte {
	numChannels := len(channels)

	numFrames := 0
	if numChannels > 0 {
		numFrames = len(channels[0])
	}

	dataSize := numFrames * numChannels * 2
	buf := make([]byte, headerSize+dataSize)

	copy(buf[0:4], "RIFF")
	binary.LittleEndian.PutUint32(buf[4:8], uint32(headerSize+dataSize-8))
	copy(buf[8:12], "WAVE")
	copy(buf[12:16], "fmt ")
	binary.LittleEndian.PutUint32(buf[16:20], 16)
	binary.LittleEndian.PutUint16(buf[20:22], 1) // PCM
	binary.LittleEndian.PutUint16(buf[22:24], uint16(numChannels))
	binary.LittleEndian.PutUint32(buf[24:28], uint32(sampleRate))
	binary.LittleEndian.PutUint32(buf[28:32], uint32(sampleRate*numChannels*2))
	binary.LittleEndian.PutUint16(buf[32:34], uint16(numChannels*2))
	binary.LittleEndian.PutUint16(buf[34:36], 16)
	copy(buf[36:40], "data")
	binary.LittleEndian.PutUint32(buf[40:44], uint32(dataSize))

	pos := headerSize
	for frame := range numFrames {
		for c := range numChannels {
			binary.LittleEndian.PutUint16(buf[pos:pos+2], uint16(float32ToInt16(channels[c][frame])))
			pos += 2
		}
	}

	return buf
}

// float32ToInt16 converts a sample in [-1, 1] to int16 using asymmetric
// scaling: negative values scale by 32768, non-negative by 32767, so both
// extremes of the int16 range are reachable exactly.
func float32ToInt16(x float32) int16 {
	x = float32(core.Clamp(float64(x), -1, 1))

	if x < 0 {
		return int16(x * 32768)
	}
	return int16(x * 32767)
}

// int16ToFloat32 is the inverse scaling used by float32ToInt16.
func int16ToFloat32(v int16) float32 {
	if v < 0 {
		return float32(v) / 32768
	}
	return float32(v) / 32767
}
