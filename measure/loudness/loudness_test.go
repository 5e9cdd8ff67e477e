package loudness

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/loudcore/dsp/filter/kweighting"
	"github.com/cwbudde/loudcore/internal/testutil"
)

func sineWave(freqHz, rate, amplitude float64, n int) []float64 {
	return testutil.DeterministicSine(freqHz, rate, amplitude, n)
}

// TestIntegrated_FullScaleSine covers spec scenario 1: a 1s, 997Hz
// full-scale sine at 48kHz measures LUFS in [-3.5, -2.5].
func TestIntegrated_FullScaleSine(t *testing.T) {
	rate := 48000
	sig := sineWave(997, float64(rate), 1.0, rate*1)

	got, err := Integrated([][]float64{sig}, rate)
	if err != nil {
		t.Fatalf("Integrated: %v", err)
	}
	if got < -3.5 || got > -2.5 {
		t.Fatalf("LUFS = %v, want in [-3.5, -2.5]", got)
	}
}

// TestIntegrated_Minus20dBSine covers spec scenario 2.
func TestIntegrated_Minus20dBSine(t *testing.T) {
	rate := 48000
	amp := math.Pow(10, -20.0/20)
	sig := sineWave(997, float64(rate), amp, rate*1)

	got, err := Integrated([][]float64{sig}, rate)
	if err != nil {
		t.Fatalf("Integrated: %v", err)
	}
	if got < -23.5 || got > -22.5 {
		t.Fatalf("LUFS = %v, want in [-23.5, -22.5]", got)
	}
}

func TestIntegrated_Silence(t *testing.T) {
	sig := make([]float64, 48000*2)
	got, err := Integrated([][]float64{sig}, 48000)
	if err != nil {
		t.Fatalf("Integrated: %v", err)
	}
	if !math.IsInf(got, -1) {
		t.Fatalf("LUFS = %v, want -Inf for silence", got)
	}
}

func TestIntegrated_ShorterThanOneBlock(t *testing.T) {
	sig := sineWave(1000, 48000, 0.5, 1000) // ~21ms, well under 400ms
	got, err := Integrated([][]float64{sig}, 48000)
	if err != nil {
		t.Fatalf("Integrated: %v", err)
	}
	if !math.IsInf(got, -1) {
		t.Fatalf("LUFS = %v, want -Inf for sub-block-length input", got)
	}
}

func TestIntegrated_EmptyChannels(t *testing.T) {
	got, err := Integrated(nil, 48000)
	if err != nil {
		t.Fatalf("Integrated: %v", err)
	}
	if !math.IsInf(got, -1) {
		t.Fatalf("LUFS = %v, want -Inf for no channels", got)
	}
}

func TestIntegrated_UnsupportedRate(t *testing.T) {
	sig := sineWave(1000, 96000, 0.5, 96000)
	_, err := Integrated([][]float64{sig}, 96000)
	if !errors.Is(err, kweighting.ErrUnsupportedSampleRate) {
		t.Fatalf("expected ErrUnsupportedSampleRate, got %v", err)
	}
}

// TestIntegrated_StereoVsMono covers the stereo-vs-mono consistency law:
// duplicating a mono channel into stereo raises LUFS by ~10*log10(2).
func TestIntegrated_StereoVsMono(t *testing.T) {
	rate := 48000
	mono := sineWave(997, float64(rate), 0.5, rate*2)

	monoLUFS, err := Integrated([][]float64{mono}, rate)
	if err != nil {
		t.Fatal(err)
	}

	stereoLUFS, err := Integrated([][]float64{mono, mono}, rate)
	if err != nil {
		t.Fatal(err)
	}

	diff := stereoLUFS - monoLUFS
	want := 10 * math.Log10(2)
	if math.Abs(diff-want) > 0.1 {
		t.Fatalf("stereo-mono diff = %v, want ~%v", diff, want)
	}
}

// TestIntegrated_CrossRateConsistency covers the cross-rate law: the same
// signal synthesized at 44100 and 48000 Hz measures within 0.5 LU.
func TestIntegrated_CrossRateConsistency(t *testing.T) {
	sig44 := sineWave(997, 44100, 0.5, 44100*2)
	sig48 := sineWave(997, 48000, 0.5, 48000*2)

	l44, err := Integrated([][]float64{sig44}, 44100)
	if err != nil {
		t.Fatal(err)
	}
	l48, err := Integrated([][]float64{sig48}, 48000)
	if err != nil {
		t.Fatal(err)
	}

	if math.Abs(l44-l48) > 0.5 {
		t.Fatalf("cross-rate diff = %v, want <= 0.5 LU (l44=%v l48=%v)", math.Abs(l44-l48), l44, l48)
	}
}

func TestBlockSizeHopSize(t *testing.T) {
	if got := BlockSize(48000); got != 19200 {
		t.Fatalf("BlockSize(48000) = %d, want 19200", got)
	}
	if got := HopSize(48000); got != 4800 {
		t.Fatalf("HopSize(48000) = %d, want 4800", got)
	}
}
