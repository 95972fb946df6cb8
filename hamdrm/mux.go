/*
NAME
  mux.go

DESCRIPTION
  mux.go places and extracts the FAC, SDC and interleaved MSC cells of
  one transmission frame, and cycles the fixed-size FAC and SDC bit
  strings across frames per §4.7/§4.8.

AUTHOR
  Saxon Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package hamdrm

import (
	"github.com/easypal-go/hamdrm/interleave"
	"github.com/easypal-go/hamdrm/ofdm"
	"github.com/easypal-go/hamdrm/qam"
)

// mscGroupSizes holds the per-symbol MSC slot-group sizes in symbol
// order (16 for symbol 0, 24 for each of symbols 1-14): the frequency
// interleaver operates independently within each group.
var mscGroupSizes = func() []int {
	counts := make([]int, ofdm.NumSymbols)
	for _, pos := range ofdm.MSCSlots() {
		counts[pos[0]]++
	}
	return counts
}()

// mscCellsFromBits maps a flat MSC bit vector (4 bits per cell, MSB
// first) to 16-QAM cells.
func mscCellsFromBits(bits []byte) []qam.Cell {
	cells := make([]qam.Cell, len(bits)/4)
	for i := range cells {
		b := bits[i*4 : i*4+4]
		cells[i] = qam.Map16QAM(b[0], b[1], b[2], b[3])
	}
	return cells
}

// mscBitsFromCells is the inverse of mscCellsFromBits.
func mscBitsFromCells(cells []qam.Cell) []byte {
	bits := make([]byte, 0, len(cells)*4)
	for _, c := range cells {
		b := qam.Demap16QAM(c)
		bits = append(bits, b[0], b[1], b[2], b[3])
	}
	return bits
}

// freqInterleaveFrame applies the frequency interleaver independently to
// each symbol's MSC slot group within a flat, symbol-major 352-cell
// array.
func freqInterleaveFrame(cells []qam.Cell) []qam.Cell {
	out := make([]qam.Cell, 0, len(cells))
	off := 0
	for _, sz := range mscGroupSizes {
		out = append(out, interleave.FreqInterleave(cells[off:off+sz])...)
		off += sz
	}
	return out
}

// freqDeinterleaveFrame inverts freqInterleaveFrame.
func freqDeinterleaveFrame(cells []qam.Cell) []qam.Cell {
	out := make([]qam.Cell, 0, len(cells))
	off := 0
	for _, sz := range mscGroupSizes {
		out = append(out, interleave.FreqDeinterleave(cells[off:off+sz])...)
		off += sz
	}
	return out
}

// buildMSCCellsForFrame maps one frame's 1408 MSC bits to the 352
// interleaved cells ready to place into the frame's MSC slots.
func buildMSCCellsForFrame(bits []byte) []qam.Cell {
	cells := mscCellsFromBits(bits)
	cells = freqInterleaveFrame(cells)
	return interleave.TimeInterleave(cells)
}

// extractMSCBitsFromFrame is the inverse of buildMSCCellsForFrame,
// reading the 352 MSC cells out of grid in canonical slot order first.
func extractMSCBitsFromFrame(grid ofdm.Grid) []byte {
	slots := ofdm.MSCSlots()
	cells := make([]qam.Cell, len(slots))
	for i, pos := range slots {
		cells[i] = grid[pos[0]][pos[1]]
	}
	cells = interleave.TimeDeinterleave(cells)
	cells = freqDeinterleaveFrame(cells)
	return mscBitsFromCells(cells)
}

// placeFAC writes the 4 bits of facBits at cyclic offset (f*4 mod
// len(facBits)) into the frame's 2 FAC slots as two 4-QAM cells.
func placeFAC(grid *ofdm.Grid, facBits []byte, f int) {
	n := len(facBits)
	offset := (f * 4) % n
	chunk := facBits[offset : offset+4]
	cells := [2]qam.Cell{
		qam.Map4QAM(chunk[0], chunk[1]),
		qam.Map4QAM(chunk[2], chunk[3]),
	}
	for i, pos := range ofdm.FACSlots() {
		grid[pos[0]][pos[1]] = cells[i]
	}
}

// placeSDC writes 12 bits of sdcBits, starting at cyclic offset (f*12
// mod len(sdcBits)), into the frame's 6 SDC slots as six 4-QAM cells.
func placeSDC(grid *ofdm.Grid, sdcBits []byte, f int) {
	n := len(sdcBits)
	offset := (f * 12) % n
	for i, pos := range ofdm.SDCSlots() {
		b0 := sdcBits[(offset+2*i)%n]
		b1 := sdcBits[(offset+2*i+1)%n]
		grid[pos[0]][pos[1]] = qam.Map4QAM(b0, b1)
	}
}

// extractFAC demaps the frame's 2 FAC cells and writes their 4 bits into
// facBuf at the same cyclic offset placeFAC used.
func extractFAC(grid ofdm.Grid, facBuf []byte, f int) {
	slots := ofdm.FACSlots()
	bits := make([]byte, 0, 4)
	for _, pos := range slots {
		b := qam.Demap4QAM(grid[pos[0]][pos[1]])
		bits = append(bits, b[0], b[1])
	}
	n := len(facBuf)
	offset := (f * 4) % n
	copy(facBuf[offset:offset+4], bits)
}

// extractSDC demaps the frame's 6 SDC cells and writes their 12 bits
// into sdcBuf at the same cyclic offset placeSDC used.
func extractSDC(grid ofdm.Grid, sdcBuf []byte, f int) {
	slots := ofdm.SDCSlots()
	n := len(sdcBuf)
	offset := (f * 12) % n
	for i, pos := range slots {
		b := qam.Demap4QAM(grid[pos[0]][pos[1]])
		sdcBuf[(offset+2*i)%n] = b[0]
		sdcBuf[(offset+2*i+1)%n] = b[1]
	}
}

// equalizeGrid runs pilot-based channel estimation and equalisation over
// every symbol of grid, carrying the previous symbol's estimate forward
// for any symbol with no pilot observations of its own.
func equalizeGrid(grid ofdm.Grid) ofdm.Grid {
	var out ofdm.Grid
	var prevH [ofdm.NumCarriers]qam.Cell
	have := false
	for s := 0; s < ofdm.NumSymbols; s++ {
		h := ofdm.EstimateSymbolChannel(s, grid[s], prevH, have)
		prevH, have = h, true
		for i := 0; i < ofdm.NumCarriers; i++ {
			out[s][i] = ofdm.Equalize(grid[s][i], h[i])
		}
	}
	return out
}
