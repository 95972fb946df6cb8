/*
NAME
  fft.go

DESCRIPTION
  fft.go implements an in-place radix-2 decimation-in-time complex FFT
  and its inverse, as required by the OFDM modulator/demodulator.

AUTHOR
  Saxon Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package fft implements an in-place radix-2 Cooley-Tukey FFT over
// parallel real/imaginary slices, the exact shape the OFDM engine needs
// for per-symbol spectrum synthesis and analysis.
package fft

import "math"

// Transform performs an in-place complex FFT (inverse=false) or IFFT
// (inverse=true) of length N on the parallel slices re and im. N must be
// a power of two and re, im must each have length N. When inverse is
// true, each output sample is scaled by 1/N.
func Transform(re, im []float64, N int, inverse bool) {
	if len(re) != N || len(im) != N {
		panic("fft: re/im length must equal N")
	}
	if N <= 1 {
		return
	}
	if N&(N-1) != 0 {
		panic("fft: N must be a power of two")
	}

	bitReverse(re, im, N)

	sign := -1.0
	if inverse {
		sign = 1.0
	}

	for size := 2; size <= N; size <<= 1 {
		half := size / 2
		theta := sign * 2 * math.Pi / float64(size)
		wStepRe, wStepIm := math.Cos(theta), math.Sin(theta)
		for start := 0; start < N; start += size {
			wRe, wIm := 1.0, 0.0
			for k := 0; k < half; k++ {
				i, j := start+k, start+k+half
				tRe := re[j]*wRe - im[j]*wIm
				tIm := re[j]*wIm + im[j]*wRe

				re[j] = re[i] - tRe
				im[j] = im[i] - tIm
				re[i] = re[i] + tRe
				im[i] = im[i] + tIm

				nwRe := wRe*wStepRe - wIm*wStepIm
				nwIm := wRe*wStepIm + wIm*wStepRe
				wRe, wIm = nwRe, nwIm
			}
		}
	}

	if inverse {
		invN := 1.0 / float64(N)
		for i := range re {
			re[i] *= invN
			im[i] *= invN
		}
	}
}

// bitReverse permutes re and im in place into bit-reversal order, the
// standard precondition for an iterative decimation-in-time FFT.
func bitReverse(re, im []float64, N int) {
	j := 0
	for i := 1; i < N; i++ {
		bit := N >> 1
		for ; j&bit != 0; bit >>= 1 {
			j ^= bit
		}
		j ^= bit
		if i < j {
			re[i], re[j] = re[j], re[i]
			im[i], im[j] = im[j], im[i]
		}
	}
}
