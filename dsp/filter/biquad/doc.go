// Package biquad provides a Direct-Form-I second-order IIR filter section:
// the building block dsp/filter/kweighting cascades into the K-weighting
// pre-filter + RLB pair consumed by measure/loudness.
package biquad
