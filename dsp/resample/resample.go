/*
NAME
  resample.go

DESCRIPTION
  resample.go linearly resamples a real-valued waveform from one sample
  rate to another, in either direction (upsampling or downsampling), as
  the HAMDRM decoder needs at its input boundary (spec §4.8 step 1).

AUTHOR
  Trek Hopton <trek@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package resample provides a naive linear-interpolation resampler for
// real-valued PCM waveforms.
package resample

import (
	"gonum.org/v1/gonum/floats"

	"github.com/pkg/errors"
)

// Linear resamples samples from inRate Hz to outRate Hz using linear
// interpolation. If inRate equals outRate, samples is returned unchanged.
func Linear(samples []float64, inRate, outRate int) ([]float64, error) {
	if inRate <= 0 || outRate <= 0 {
		return nil, errors.New("resample: sample rates must be positive")
	}
	if inRate == outRate {
		return samples, nil
	}
	if len(samples) == 0 {
		return nil, nil
	}

	ratio := float64(inRate) / float64(outRate)
	outLen := int(float64(len(samples)-1)/ratio) + 1
	out := make([]float64, outLen)

	// xs holds the source-domain position of each output sample:
	// floats.Span lays out the 0..outLen-1 output grid and floats.Scale
	// converts it to source-domain positions in one vectorised pass.
	xs := make([]float64, outLen)
	floats.Span(xs, 0, float64(outLen-1))
	floats.Scale(ratio, xs)
	for i, srcPos := range xs {
		lo := int(srcPos)
		if lo >= len(samples)-1 {
			out[i] = samples[len(samples)-1]
			continue
		}
		frac := srcPos - float64(lo)
		out[i] = samples[lo] + frac*(samples[lo+1]-samples[lo])
	}
	return out, nil
}
