package biquad

import (
	"testing"

	"pgregory.net/rapid"
)

// TestProcessBuffer_MatchesSample_Property covers the law that
// ProcessBuffer is bit-equal to sequential ProcessSample calls, across
// randomly drawn (stable-ish) coefficients and inputs.
func TestProcessBuffer_MatchesSample_Property(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		c := Coefficients{
			B0: rapid.Float64Range(-2, 2).Draw(t, "b0"),
			B1: rapid.Float64Range(-2, 2).Draw(t, "b1"),
			B2: rapid.Float64Range(-2, 2).Draw(t, "b2"),
			A1: rapid.Float64Range(-0.5, 0.5).Draw(t, "a1"),
			A2: rapid.Float64Range(-0.2, 0.2).Draw(t, "a2"),
		}

		input := rapid.SliceOfN(rapid.Float64Range(-1, 1), 0, 64).Draw(t, "input")

		ref := NewSection(c)
		want := make([]float64, len(input))
		for i, x := range input {
			want[i] = ref.ProcessSample(x)
		}

		got := NewSection(c)
		block := append([]float64(nil), input...)
		got.ProcessBuffer(block)

		for i := range block {
			if block[i] != want[i] {
				t.Fatalf("sample %d: ProcessBuffer=%v, ProcessSample=%v", i, block[i], want[i])
			}
		}
	})
}

// TestUnityFilter_IsIdentity_Property covers the law that a unity section
// (b0=1, everything else 0) passes samples through unchanged.
func TestUnityFilter_IsIdentity_Property(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := NewSection(Coefficients{B0: 1})
		x := rapid.Float64Range(-1e6, 1e6).Draw(t, "x")

		if y := s.ProcessSample(x); y != x {
			t.Fatalf("unity filter: ProcessSample(%v) = %v", x, y)
		}
	})
}
