/*
NAME
  interleave.go

DESCRIPTION
  interleave.go implements the two-level HAMDRM interleaver: a per-symbol
  bit-reversal frequency permutation, and a row-column time interleaver
  over the flat 352-cell MSC array of one transmission frame.

AUTHOR
  Saxon Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package interleave implements the HAMDRM frequency and time
// interleavers. The size-16 and size-24 frequency permutations are
// computed once at init and treated as constants; the time interleaver's
// read order is recomputed from the array length on each call.
package interleave

import "github.com/easypal-go/hamdrm/qam"

// TimeCols is the column count of the row-column time interleaver; not a
// value from any published DRM table. For this profile's 352-cell MSC
// array it gives ceil(352/30) = 12 rows, of whose 360 positions the last
// 8 are padding that is skipped.
const TimeCols = 30

// freqPerm16/freqInv16 and freqPerm24/freqInv24 are the frequency
// interleaver permutations for the size-16 (symbol 0) and size-24
// (symbols 1-14) MSC slot groups.
var (
	freqPerm16, freqInv16 = buildBitReversalPermutation(16)
	freqPerm24, freqInv24 = buildBitReversalPermutation(24)
)

// FreqPermutation returns the forward permutation and its inverse for a
// group of n MSC slots (n is 16 or 24 in this profile).
func FreqPermutation(n int) (perm, inv []int) {
	switch n {
	case 16:
		return freqPerm16, freqInv16
	case 24:
		return freqPerm24, freqInv24
	default:
		return buildBitReversalPermutation(n)
	}
}

// buildBitReversalPermutation builds the bijective permutation of [0,n)
// by enumerating candidate indices i=0,1,2,... and accepting the
// bit-reversal of i (over ceil(log2(max(n,2))) bits) whenever it is < n
// and not already used.
func buildBitReversalPermutation(n int) (perm, inv []int) {
	nbits := ceilLog2(maxInt(n, 2))
	perm = make([]int, n)
	inv = make([]int, n)
	used := make([]bool, n)
	count := 0
	for i := 0; count < n; i++ {
		rv := bitReverse(i, nbits)
		if rv < n && !used[rv] {
			used[rv] = true
			perm[count] = rv
			count++
		}
	}
	for i, p := range perm {
		inv[p] = i
	}
	return perm, inv
}

func bitReverse(i, nbits int) int {
	r := 0
	for b := 0; b < nbits; b++ {
		r = (r << 1) | (i & 1)
		i >>= 1
	}
	return r
}

func ceilLog2(n int) int {
	bits := 0
	for (1 << bits) < n {
		bits++
	}
	return bits
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// FreqInterleave returns a permuted copy of a single symbol's MSC slot
// group: output[perm[i]] = input[i]. The input slice is not modified.
func FreqInterleave(cells []qam.Cell) []qam.Cell {
	perm, _ := FreqPermutation(len(cells))
	out := make([]qam.Cell, len(cells))
	for i, c := range cells {
		out[perm[i]] = c
	}
	return out
}

// FreqDeinterleave inverts FreqInterleave: output[inv[i]] = input[i].
func FreqDeinterleave(cells []qam.Cell) []qam.Cell {
	_, inv := FreqPermutation(len(cells))
	out := make([]qam.Cell, len(cells))
	for i, c := range cells {
		out[inv[i]] = c
	}
	return out
}

// timeOrder is the ordered list of source indices read off the logical
// rows x cols matrix in column-major order, skipping any position whose
// row-major index falls in the padding beyond n.
func timeOrder(n int) []int {
	rows := (n + TimeCols - 1) / TimeCols
	order := make([]int, 0, n)
	for c := 0; c < TimeCols; c++ {
		for row := 0; row < rows; row++ {
			src := row*TimeCols + c
			if src < n {
				order = append(order, src)
			}
		}
	}
	return order
}

// TimeInterleave performs the row-column transpose on the flat MSC cell
// array for one frame: the cell written row-by-row into the logical
// matrix at position src is read out at the src's position in
// column-major order.
func TimeInterleave(cells []qam.Cell) []qam.Cell {
	order := timeOrder(len(cells))
	out := make([]qam.Cell, len(order))
	for k, src := range order {
		out[k] = cells[src]
	}
	return out
}

// TimeDeinterleave inverts TimeInterleave.
func TimeDeinterleave(cells []qam.Cell) []qam.Cell {
	order := timeOrder(len(cells))
	out := make([]qam.Cell, len(cells))
	for k, src := range order {
		out[src] = cells[k]
	}
	return out
}
