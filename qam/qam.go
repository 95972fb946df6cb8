/*
NAME
  qam.go

DESCRIPTION
  qam.go implements the Gray-coded 4-QAM and 16-QAM constellations used
  to map bits onto the MSC, FAC and SDC channels.

AUTHOR
  Saxon Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package qam implements the hard-decision 4-QAM and 16-QAM constellations
// used by the HAMDRM channel framing: FAC and SDC ride on 4-QAM, MSC rides
// on 16-QAM.
package qam

import "math"

// Cell is a single complex constellation point or received sample.
type Cell struct {
	Re, Im float64
}

// grayPerm maps a raw level index (into levels16, unpermuted) to its
// 2-bit Gray code, and vice versa: {0,1,3,2} swaps positions 2 and 3 and
// is therefore its own inverse.
var grayPerm = [4]int{0, 1, 3, 2}

var levels16 = [4]float64{-3, -1, 1, 3}

const scale16 = 0.31622776601683794 // sqrt(1/10)

// Map16QAM maps 4 bits (MSB first: b0 b1 b2 b3) to a 16-QAM cell. b0,b1
// form the Gray-coded row (imaginary-axis) code, b2,b3 the Gray-coded
// column (real-axis) code; grayPerm inverts each to its raw level index.
func Map16QAM(b0, b1, b2, b3 byte) Cell {
	rowCode := int(b0)<<1 | int(b1)
	colCode := int(b2)<<1 | int(b3)
	return Cell{
		Re: levels16[grayPerm[colCode]] * scale16,
		Im: levels16[grayPerm[rowCode]] * scale16,
	}
}

// Demap16QAM returns the 4 bits (MSB first) whose constellation point is
// closest in Euclidean distance to c.
func Demap16QAM(c Cell) [4]byte {
	row := nearestLevel(c.Im)
	col := nearestLevel(c.Re)
	rowCode := grayPerm[row]
	colCode := grayPerm[col]
	sym := (rowCode << 2) | colCode
	return [4]byte{
		byte((sym >> 3) & 1),
		byte((sym >> 2) & 1),
		byte((sym >> 1) & 1),
		byte(sym & 1),
	}
}

// nearestLevel returns the raw (unpermuted) index into levels16 whose
// scaled value is nearest to v.
func nearestLevel(v float64) int {
	best := 0
	bestDist := math.Inf(1)
	for i, lvl := range levels16 {
		scaled := lvl * scale16
		d := (v - scaled) * (v - scaled)
		if d < bestDist {
			bestDist = d
			best = i
		}
	}
	return best
}

const scale4 = 0.7071067811865476 // sqrt(1/2)

var points4 = [4]Cell{
	{Re: +1, Im: +1},
	{Re: -1, Im: +1},
	{Re: -1, Im: -1},
	{Re: +1, Im: -1},
}

// Map4QAM maps 2 bits (b0, b1) to a 4-QAM cell using table
// {(+1,+1),(-1,+1),(-1,-1),(+1,-1)}, pre-scaled by sqrt(1/2).
func Map4QAM(b0, b1 byte) Cell {
	p := points4[int(b0)<<1|int(b1)]
	return Cell{Re: p.Re * scale4, Im: p.Im * scale4}
}

// Demap4QAM returns the 2 bits whose constellation point (from the same
// table Map4QAM uses) is closest in Euclidean distance to c. Nearest-point
// decoding, rather than a closed-form quadrant test, is used so that
// demapping always inverts Map4QAM exactly regardless of which quadrant
// each index is assigned to.
func Demap4QAM(c Cell) [2]byte {
	best := 0
	bestDist := math.Inf(1)
	for idx, p := range points4 {
		re, im := p.Re*scale4, p.Im*scale4
		d := (c.Re-re)*(c.Re-re) + (c.Im-im)*(c.Im-im)
		if d < bestDist {
			bestDist = d
			best = idx
		}
	}
	return [2]byte{byte((best >> 1) & 1), byte(best & 1)}
}
