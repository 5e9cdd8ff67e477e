package transform

import (
	"testing"

	"pgregory.net/rapid"
)

func randChannel(t *rapid.T, label string) []float32 {
	vals := rapid.SliceOfN(rapid.Float32Range(-1, 1), 0, 256).Draw(t, label)
	return vals
}

// TestReverse_Involution_Property covers reverse(reverse(c)) = c.
func TestReverse_Involution_Property(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		in := [][]float32{randChannel(t, "ch")}
		twice := Reverse(Reverse(in))

		if len(twice[0]) != len(in[0]) {
			t.Fatalf("length changed: %d vs %d", len(twice[0]), len(in[0]))
		}
		for i := range in[0] {
			if twice[0][i] != in[0][i] {
				t.Fatalf("index %d: got %v, want %v", i, twice[0][i], in[0][i])
			}
		}
	})
}

// TestSpeed_Identity_Property covers speed(1, c) = c.
func TestSpeed_Identity_Property(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		in := [][]float32{randChannel(t, "ch")}
		out, err := Speed(in, 1.0)
		if err != nil {
			t.Fatal(err)
		}
		if len(out[0]) != len(in[0]) {
			t.Fatalf("length changed: %d vs %d", len(out[0]), len(in[0]))
		}
		for i := range in[0] {
			diff := float64(out[0][i] - in[0][i])
			if diff < -1e-4 || diff > 1e-4 {
				t.Fatalf("index %d: got %v, want %v", i, out[0][i], in[0][i])
			}
		}
	})
}

// TestConcat_LengthAdditivity_Property covers len(concat(a,b)) = len(a)+len(b).
func TestConcat_LengthAdditivity_Property(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := [][]float32{randChannel(t, "a")}
		b := [][]float32{randChannel(t, "b")}

		out, err := Concat(a, 48000, b, 48000)
		if err != nil {
			t.Fatal(err)
		}
		if len(out[0]) != len(a[0])+len(b[0]) {
			t.Fatalf("length = %d, want %d", len(out[0]), len(a[0])+len(b[0]))
		}
	})
}

// TestMix_OutputLength_Property covers len(mix(a,b)) = max(len(a),len(b)).
func TestMix_OutputLength_Property(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := [][]float32{randChannel(t, "a")}
		b := [][]float32{randChannel(t, "b")}

		out, err := Mix(a, 48000, b, 48000, 0)
		if err != nil {
			t.Fatal(err)
		}
		want := len(a[0])
		if len(b[0]) > want {
			want = len(b[0])
		}
		if len(out[0]) != want {
			t.Fatalf("length = %d, want %d", len(out[0]), want)
		}
	})
}
