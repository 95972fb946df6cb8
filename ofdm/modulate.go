/*
NAME
  modulate.go

DESCRIPTION
  modulate.go synthesises the time-domain samples of one transmission
  frame from its per-symbol constellation cells: pilot insertion, inverse
  FFT, cyclic-prefix assembly and peak normalisation.

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
	"github.com/easypal-go/hamdrm/config"
	"github.com/easypal-go/hamdrm/dsp/fft"
	"github.com/easypal-go/hamdrm/qam"
)

// Grid holds the per-symbol, per-active-carrier data/FAC/SDC cells of one
// transmission frame; pilot slots are populated automatically by Modulate
// and ignored on input.
type Grid [NumSymbols][NumCarriers]qam.Cell

// Modulate synthesises the FrameLen() time-domain samples of one
// transmission frame from cells. Every slot classified SlotPilot by Kind
// is overwritten with PilotValue regardless of what cells holds there.
// The result is not peak-normalised: that is a single reduction over the
// entire multi-frame transmission, done once by Normalise after every
// frame has been concatenated.
//
// The per-symbol spectrum is built with conjugate (Hermitian) mirror bins
// so that the inverse FFT yields a real-valued signal directly; the
// decoder only ever reads the forward active-carrier bins back, so the
// mirror image is otherwise inert. See DESIGN.md.
func Modulate(cfg config.Config, cells Grid) []float64 {
	nu := cfg.SymbolsUseful
	out := make([]float64, 0, cfg.FrameLen())

	for s := 0; s < cfg.SymbolsPerFrame; s++ {
		re := make([]float64, nu)
		im := make([]float64, nu)
		for i := 0; i < NumCarriers; i++ {
			c := cells[s][i]
			if Kind(s, i) == SlotPilot {
				c = PilotValue
			}
			bin := carrierBin(cfg, KMin+i)
			mirror := mod(-bin, nu)
			re[bin], im[bin] = c.Re, c.Im
			re[mirror], im[mirror] = c.Re, -c.Im
		}

		fft.Transform(re, im, nu, true)

		sym := make([]float64, cfg.SymbolLen())
		copy(sym[:cfg.GuardLen], re[nu-cfg.GuardLen:])
		copy(sym[cfg.GuardLen:], re)
		out = append(out, sym...)
	}

	return out
}

// Normalise scales samples in place to a peak absolute value of 0.9, the
// single-pass peak normalisation §4.6/§4.7 apply once over the entire
// concatenated transmission, not per frame. A near-silent input (peak <=
// 1e-9) is left untouched.
func Normalise(samples []float64) {
	peak := 0.0
	for _, v := range samples {
		if a := abs(v); a > peak {
			peak = a
		}
	}
	if peak <= 1e-9 {
		return
	}
	scale := 0.9 / peak
	for i := range samples {
		samples[i] *= scale
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// carrierBin maps subcarrier index k to its FFT bin, wrapping modulo the
// useful symbol length.
func carrierBin(cfg config.Config, k int) int {
	return mod(cfg.CentreBin+k, cfg.SymbolsUseful)
}

func mod(a, n int) int {
	m := a % n
	if m < 0 {
		m += n
	}
	return m
}
