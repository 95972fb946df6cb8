/*
NAME
  demodulate.go

DESCRIPTION
  demodulate.go recovers the per-symbol constellation cells of one
  transmission frame from its time-domain samples: guard removal, forward
  FFT and active-carrier extraction.

AUTHOR
  Saxon Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package ofdm

import (
	"github.com/pkg/errors"

	"github.com/easypal-go/hamdrm/config"
	"github.com/easypal-go/hamdrm/dsp/fft"
	"github.com/easypal-go/hamdrm/qam"
)

// ErrShortFrame is returned when samples does not hold a full frame
// starting at the requested offset.
var ErrShortFrame = errors.New("ofdm: not enough samples for a full frame")

// Demodulate recovers the raw (pre-equalisation) constellation grid of one
// transmission frame from samples, which must hold at least
// cfg.FrameLen() samples starting at frameStart.
func Demodulate(cfg config.Config, samples []float64, frameStart int) (Grid, error) {
	var out Grid
	if frameStart < 0 || frameStart+cfg.FrameLen() > len(samples) {
		return out, ErrShortFrame
	}

	nu := cfg.SymbolsUseful
	for s := 0; s < cfg.SymbolsPerFrame; s++ {
		start := frameStart + s*cfg.SymbolLen() + cfg.GuardLen
		re := make([]float64, nu)
		copy(re, samples[start:start+nu])
		im := make([]float64, nu)

		fft.Transform(re, im, nu, false)

		for i := 0; i < NumCarriers; i++ {
			bin := carrierBin(cfg, KMin+i)
			out[s][i] = qam.Cell{Re: re[bin], Im: im[bin]}
		}
	}
	return out, nil
}
