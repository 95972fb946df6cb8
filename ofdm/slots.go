/*
NAME
  slots.go

DESCRIPTION
  slots.go classifies every (symbol, carrier) slot of a HAMDRM
  transmission frame as pilot, FAC, SDC, or MSC, and builds the
  canonical slot-order lists the framer uses to place and extract cells.

AUTHOR
  Saxon Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package ofdm implements the HAMDRM OFDM engine: the modulator,
// demodulator, coarse time synchroniser, pilot-based channel estimator,
// equaliser and SNR estimator.
package ofdm

import "github.com/easypal-go/hamdrm/qam"

// Carrier and symbol layout constants for the narrowband profile.
const (
	KMin        = -10
	KMax        = 18
	NumCarriers = KMax - KMin + 1 // 29
	NumSymbols  = 15
)

// SlotKind identifies what a (symbol, carrier) slot carries.
type SlotKind int

const (
	SlotMSC SlotKind = iota
	SlotPilot
	SlotFAC
	SlotSDC
)

// PilotValue is the deterministic pilot constellation point, (sqrt(2), 0).
var PilotValue = qam.Cell{Re: 1.4142135623730951, Im: 0}

var timePilotCarriers = [5]int{-9, -3, 4, 8, 12}
var facCarriers = [2]int{-7, 6}
var sdcCarriers = [6]int{-6, -5, -4, 7, 9, 10}

// FreqPilotPositions lists the frequency-pilot (symbol, carrier k)
// positions of the layout. Channel estimation does not read this list: it
// treats every SlotPilot slot alike. Every one of these positions sits at
// a carrier already in timePilotCarriers, so
// it does not add a distinct slot to the grid: §3's "75 time-pilot / 7
// frequency-pilot" counts sum to more than 435 only because the two sets
// overlap by exactly these 7 positions. See DESIGN.md.
var FreqPilotPositions = [7][2]int{
	{0, -9}, {0, 8}, {5, -3}, {5, 12}, {10, 4}, {14, -9}, {14, 8},
}

var slotKind [NumSymbols][NumCarriers]SlotKind

func init() {
	pilotSet := map[int]bool{}
	for _, k := range timePilotCarriers {
		pilotSet[k] = true
	}
	facSet := map[int]bool{}
	for _, k := range facCarriers {
		facSet[k] = true
	}
	sdcSet := map[int]bool{}
	for _, k := range sdcCarriers {
		sdcSet[k] = true
	}

	for s := 0; s < NumSymbols; s++ {
		for i := 0; i < NumCarriers; i++ {
			k := KMin + i
			switch {
			case pilotSet[k]:
				slotKind[s][i] = SlotPilot
			case s == 0 && facSet[k]:
				slotKind[s][i] = SlotFAC
			case s == 0 && sdcSet[k]:
				slotKind[s][i] = SlotSDC
			default:
				slotKind[s][i] = SlotMSC
			}
		}
	}
}

// Kind returns the slot kind at (symbol, carrierIdx), where carrierIdx is
// 0-based within the active band (carrier k = KMin + carrierIdx).
func Kind(symbol, carrierIdx int) SlotKind {
	return slotKind[symbol][carrierIdx]
}

// slotsOf returns the (symbol, carrierIdx) positions of every slot of the
// given kind, in canonical symbol-major, carrier-ascending order.
func slotsOf(kind SlotKind) [][2]int {
	var out [][2]int
	for s := 0; s < NumSymbols; s++ {
		for i := 0; i < NumCarriers; i++ {
			if slotKind[s][i] == kind {
				out = append(out, [2]int{s, i})
			}
		}
	}
	return out
}

var (
	mscSlots   = slotsOf(SlotMSC)
	facSlots   = slotsOf(SlotFAC)
	sdcSlots   = slotsOf(SlotSDC)
	pilotSlots = slotsOf(SlotPilot)
)

// MSCSlots returns the 352 MSC (symbol, carrierIdx) positions in
// canonical order.
func MSCSlots() [][2]int { return mscSlots }

// FACSlots returns the 2 FAC (symbol, carrierIdx) positions.
func FACSlots() [][2]int { return facSlots }

// SDCSlots returns the 6 SDC (symbol, carrierIdx) positions.
func SDCSlots() [][2]int { return sdcSlots }

// PilotSlots returns the 75 pilot (symbol, carrierIdx) positions.
func PilotSlots() [][2]int { return pilotSlots }
