// Package transform implements the loudness-preserving operations applied
// to Track channel buffers: gain, fades, slice, reverse, concat, mix,
// speed, silence trimming, and loudness normalization. Every function takes
// and returns channel buffers directly so the Track façade can stay a thin
// wrapper.
package transform

import "errors"

// ErrChannelCountMismatch is returned by Concat and Mix when the two inputs
// carry a different number of channels.
var ErrChannelCountMismatch = errors.New("transform: channel count mismatch")

// ErrSampleRateMismatch is returned by Concat and Mix when the two inputs
// were captured at different sample rates.
var ErrSampleRateMismatch = errors.New("transform: sample rate mismatch")

// ErrInvalidSpeedRate is returned by Speed when rateFactor is not positive.
var ErrInvalidSpeedRate = errors.New("transform: speed rate factor must be > 0")
