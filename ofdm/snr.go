/*
NAME
  snr.go

DESCRIPTION
  snr.go estimates the per-frame signal-to-noise ratio from how far the
  received pilot cells have drifted from their known transmitted value.

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

import "math"

// MaxSNRdB caps the reported estimate for a near-noiseless channel, where
// the true ratio is effectively unbounded.
const MaxSNRdB = 40.0

// EstimateSNR returns the frame's SNR in dB, computed from every received
// pilot cell in grid against PilotValue:
//
//	SNR = 10*log10(sum |PilotValue|^2 / sum |rx - PilotValue|^2)
//
// A frame with no measurable noise reports MaxSNRdB.
func EstimateSNR(grid Grid) float64 {
	var signal, noise float64
	for s := 0; s < NumSymbols; s++ {
		for i := 0; i < NumCarriers; i++ {
			if Kind(s, i) != SlotPilot {
				continue
			}
			rx := grid[s][i]
			signal += PilotValue.Re*PilotValue.Re + PilotValue.Im*PilotValue.Im
			dRe, dIm := rx.Re-PilotValue.Re, rx.Im-PilotValue.Im
			noise += dRe*dRe + dIm*dIm
		}
	}
	if noise < 1e-15 {
		return MaxSNRdB
	}
	db := 10 * math.Log10(signal/noise)
	if db > MaxSNRdB {
		return MaxSNRdB
	}
	return db
}
