package biquad

import "github.com/cwbudde/loudcore/dsp/core"

// Coefficients holds the transfer-function coefficients for a single
// second-order section (biquad), already normalized so that a0 == 1.
// Use NewCoefficients to normalize raw {b0,b1,b2,a0,a1,a2} coefficients.
type Coefficients struct {
	B0, B1, B2 float64 // feedforward (numerator)
	A1, A2     float64 // feedback (denominator), a0 already divided out
}

// NewCoefficients normalizes raw transfer-function coefficients by a0.
func NewCoefficients(b0, b1, b2, a0, a1, a2 float64) Coefficients {
	return Coefficients{
		B0: b0 / a0,
		B1: b1 / a0,
		B2: b2 / a0,
		A1: a1 / a0,
		A2: a2 / a0,
	}
}

// Section is a single biquad filter with coefficients and Direct-Form-I
// state: the two previous inputs (x1, x2) and the two previous outputs
// (y1, y2).
//
//	y = b0*x + b1*x1 + b2*x2 - a1*y1 - a2*y2
//	(x2,x1,y2,y1) <- (x1,x,y1,y)
type Section struct {
	Coefficients

	x1, x2, y1, y2 float64
}

// NewSection returns a Section initialized with the given coefficients
// and zero state.
func NewSection(c Coefficients) *Section {
	return &Section{Coefficients: c}
}

// ProcessSample filters one input sample and returns the output.
func (s *Section) ProcessSample(x float64) float64 {
	y := s.B0*x + s.B1*s.x1 + s.B2*s.x2 - s.A1*s.y1 - s.A2*s.y2

	s.x2 = s.x1
	s.x1 = x
	s.y2 = s.y1
	s.y1 = core.FlushDenormals(y)

	return y
}

// ProcessBuffer filters buf in place. Required to be bit-equal to calling
// ProcessSample sequentially over every element.
func (s *Section) ProcessBuffer(buf []float64) {
	for i, x := range buf {
		buf[i] = s.ProcessSample(x)
	}
}

// ProcessBufferTo filters src into dst, a freshly allocated destination.
// dst and src must not alias.
func (s *Section) ProcessBufferTo(dst, src []float64) {
	for i, x := range src {
		dst[i] = s.ProcessSample(x)
	}
}

// Reset clears the delay state to zero.
func (s *Section) Reset() {
	s.x1, s.x2, s.y1, s.y2 = 0, 0, 0, 0
}

// State returns the current delay state [x1, x2, y1, y2].
func (s *Section) State() [4]float64 {
	return [4]float64{s.x1, s.x2, s.y1, s.y2}
}

// SetState restores a previously saved delay state.
func (s *Section) SetState(state [4]float64) {
	s.x1, s.x2, s.y1, s.y2 = state[0], state[1], state[2], state[3]
}
