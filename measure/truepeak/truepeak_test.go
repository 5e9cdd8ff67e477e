package truepeak

import "testing"

func TestChannel_Impulse(t *testing.T) {
	buf := make([]float32, 1024)
	buf[10] = 1.0
	if p := Channel(buf); p < 1.0 {
		t.Fatalf("Channel = %v, want >= 1.0", p)
	}
}

func TestMax_PicksLouderChannel(t *testing.T) {
	left := make([]float32, 100)
	right := make([]float32, 100)
	left[5] = 0.3
	right[5] = 0.95

	if p := Max([][]float32{left, right}); p < float64(right[5]) {
		t.Fatalf("Max = %v, want >= %v", p, float64(right[5]))
	}
}
