package wav

import (
	"encoding/binary"
	"errors"
	"testing"
)

// TestEncode_ByteLayout covers the exact interleaving scenario: L=[0.5,-0.5],
// R=[0.25,-0.25] at 44100 Hz must produce bytes 44..51 interleaved as
// int16(L[0]), int16(R[0]), int16(L[1]), int16(R[1]).
func TestEncode_ByteLayout(t *testing.T) {
	left := []float32{0.5, -0.5}
	right := []float32{0.25, -0.25}

	buf := Encode([][]float32{left, right}, 44100)

	if len(buf) != headerSize+8 {
		t.Fatalf("len(buf) = %d, want %d", len(buf), headerSize+8)
	}

	want := []int16{
		float32ToInt16(0.5), float32ToInt16(0.25),
		float32ToInt16(-0.5), float32ToInt16(-0.25),
	}

	for i, w := range want {
		off := headerSize + i*2
		got := int16(binary.LittleEndian.Uint16(buf[off : off+2]))
		if got != w {
			t.Fatalf("sample %d = %d, want %d", i, got, w)
		}
	}
}

func TestEncode_HeaderFields(t *testing.T) {
	buf := Encode([][]float32{{0, 0}, {0, 0}}, 48000)

	if string(buf[0:4]) != "RIFF" || string(buf[8:12]) != "WAVE" {
		t.Fatalf("missing RIFF/WAVE magic")
	}
	if got := binary.LittleEndian.Uint16(buf[22:24]); got != 2 {
		t.Fatalf("numChannels = %d, want 2", got)
	}
	if got := binary.LittleEndian.Uint32(buf[24:28]); got != 48000 {
		t.Fatalf("sampleRate = %d, want 48000", got)
	}
	if got := binary.LittleEndian.Uint16(buf[34:36]); got != 16 {
		t.Fatalf("bitsPerSample = %d, want 16", got)
	}
}

func TestDecode_InvalidHeader(t *testing.T) {
	_, _, err := Decode([]byte("short"))
	if !errors.Is(err, ErrInvalidWav) {
		t.Fatalf("expected ErrInvalidWav, got %v", err)
	}

	bogus := make([]byte, 44)
	copy(bogus[0:4], "XXXX")
	_, _, err = Decode(bogus)
	if !errors.Is(err, ErrInvalidWav) {
		t.Fatalf("expected ErrInvalidWav for bad magic, got %v", err)
	}
}

// TestRoundTrip covers the WAV round-trip property: decode(encode(c,r))
// reproduces c and r within 1/32768 per-sample quantization error.
func TestRoundTrip(t *testing.T) {
	left := []float32{0.5, -0.5, 1.0, -1.0, 0.0, 0.333}
	right := []float32{0.25, -0.25, 0.9, -0.9, 0.1, -0.1}

	buf := Encode([][]float32{left, right}, 44100)

	channels, rate, err := Decode(buf)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if rate != 44100 {
		t.Fatalf("rate = %d, want 44100", rate)
	}
	if len(channels) != 2 {
		t.Fatalf("numChannels = %d, want 2", len(channels))
	}

	const tolerance = 1.0 / 32768

	for ci, orig := range [][]float32{left, right} {
		got := channels[ci]
		if len(got) != len(orig) {
			t.Fatalf("channel %d length = %d, want %d", ci, len(got), len(orig))
		}
		for i, v := range orig {
			diff := float64(got[i] - v)
			if diff < 0 {
				diff = -diff
			}
			if diff > tolerance {
				t.Fatalf("channel %d sample %d = %v, want ~%v (diff %v)", ci, i, got[i], v, diff)
			}
		}
	}
}

func TestFloat32ToInt16_Extremes(t *testing.T) {
	if got := float32ToInt16(1.0); got != 32767 {
		t.Fatalf("float32ToInt16(1.0) = %d, want 32767", got)
	}
	if got := float32ToInt16(-1.0); got != -32768 {
		t.Fatalf("float32ToInt16(-1.0) = %d, want -32768", got)
	}
	if got := float32ToInt16(2.0); got != 32767 {
		t.Fatalf("float32ToInt16(2.0) clamp = %d, want 32767", got)
	}
	if got := float32ToInt16(-2.0); got != -32768 {
		t.Fatalf("float32ToInt16(-2.0) clamp = %d, want -32768", got)
	}
}

func TestEncode_EmptyChannels(t *testing.T) {
	buf := Encode(nil, 44100)
	if len(buf) != headerSize {
		t.Fatalf("len(buf) = %d, want %d", len(buf), headerSize)
	}
}
