/*
NAME
  channel.go

DESCRIPTION
  channel.go estimates the per-carrier channel response from pilot
  observations and equalises received data cells against it.

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

import "github.com/easypal-go/hamdrm/qam"

// unitChannel is the flat, no-distortion channel response used when a
// symbol has no pilots to observe and no previous estimate to fall back
// on.
var unitChannel = func() [NumCarriers]qam.Cell {
	var h [NumCarriers]qam.Cell
	for i := range h {
		h[i] = qam.Cell{Re: 1, Im: 0}
	}
	return h
}()

// EstimateSymbolChannel estimates the per-carrier channel response H for
// one symbol from its pilot-carrier observations, linearly interpolating
// across the carriers lying between pilots. Carriers outside the
// outermost pilots hold the nearest pilot's estimate. A symbol with no
// pilot carriers (none occur in this profile, since every symbol carries
// the 5 time-pilot carriers) falls back to prevH, or the unit channel if
// havePrev is false.
func EstimateSymbolChannel(symbol int, rx [NumCarriers]qam.Cell, prevH [NumCarriers]qam.Cell, havePrev bool) [NumCarriers]qam.Cell {
	type obs struct {
		idx int
		h   qam.Cell
	}
	var obsList []obs
	for i := 0; i < NumCarriers; i++ {
		if Kind(symbol, i) == SlotPilot {
			obsList = append(obsList, obs{i, complexDiv(rx[i], PilotValue)})
		}
	}
	if len(obsList) == 0 {
		if havePrev {
			return prevH
		}
		return unitChannel
	}

	var h [NumCarriers]qam.Cell
	for i := 0; i < NumCarriers; i++ {
		var before, after *obs
		for j := range obsList {
			if obsList[j].idx <= i {
				before = &obsList[j]
			}
			if obsList[j].idx >= i && after == nil {
				after = &obsList[j]
			}
		}
		switch {
		case before != nil && after != nil && before.idx == after.idx:
			h[i] = before.h
		case before != nil && after != nil:
			t := float64(i-before.idx) / float64(after.idx-before.idx)
			h[i] = qam.Cell{
				Re: before.h.Re + t*(after.h.Re-before.h.Re),
				Im: before.h.Im + t*(after.h.Im-before.h.Im),
			}
		case before != nil:
			h[i] = before.h
		default:
			h[i] = after.h
		}
	}
	return h
}

// Equalize divides rx by h, the estimated channel response at that
// carrier, returning (0,0) where h is too small to divide by safely.
func Equalize(rx, h qam.Cell) qam.Cell {
	return complexDiv(rx, h)
}

// complexDiv returns a/b, or the zero Cell if |b|^2 is too small to
// divide by safely.
func complexDiv(a, b qam.Cell) qam.Cell {
	d := b.Re*b.Re + b.Im*b.Im
	if d < 1e-12 {
		return qam.Cell{}
	}
	return qam.Cell{
		Re: (a.Re*b.Re + a.Im*b.Im) / d,
		Im: (a.Im*b.Re - a.Re*b.Im) / d,
	}
}
