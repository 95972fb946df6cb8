package fft

import (
	"math"
	"math/cmplx"
	"testing"

	dspfft "github.com/mjibson/go-dsp/fft"
)

func TestRoundTrip(t *testing.T) {
	for _, N := range []int{2, 4, 8, 16, 64, 256, 1024} {
		re := make([]float64, N)
		im := make([]float64, N)
		for i := range re {
			re[i] = math.Sin(float64(i)) + 0.5*math.Cos(float64(i)*3)
			im[i] = math.Cos(float64(i) * 0.7)
		}
		origRe := append([]float64(nil), re...)
		origIm := append([]float64(nil), im...)

		Transform(re, im, N, false)
		Transform(re, im, N, true)

		for i := range re {
			if !closeEnough(re[i], origRe[i]) || !closeEnough(im[i], origIm[i]) {
				t.Fatalf("N=%d: round trip mismatch at %d: got (%g,%g) want (%g,%g)",
					N, i, re[i], im[i], origRe[i], origIm[i])
			}
		}
	}
}

// TestAgainstReferenceFFT cross-checks the forward transform against the
// github.com/mjibson/go-dsp/fft reference implementation, confirming the
// bin ordering and scaling conventions agree.
func TestAgainstReferenceFFT(t *testing.T) {
	const N = 64
	re := make([]float64, N)
	im := make([]float64, N)
	in := make([]complex128, N)
	for i := range re {
		re[i] = math.Sin(float64(i) * 0.3)
		in[i] = complex(re[i], 0)
	}

	Transform(re, im, N, false)
	want := dspfft.FFT(in)

	for i := range want {
		gotC := complex(re[i], im[i])
		if cmplx.Abs(gotC-want[i]) > 1e-6*math.Max(1, cmplx.Abs(want[i])) {
			t.Fatalf("bin %d: got %v want %v", i, gotC, want[i])
		}
	}
}

func closeEnough(a, b float64) bool {
	if math.Abs(b) < 1e-9 {
		return math.Abs(a-b) < 1e-6
	}
	return math.Abs(a-b)/math.Abs(b) < 1e-6
}
