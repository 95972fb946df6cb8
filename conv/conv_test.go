package conv

import (
	"math/rand"
	"testing"
)

func TestRoundTripZeros(t *testing.T) {
	x := make([]byte, 32)
	enc := Encode(x, PunctureMSC)
	if len(enc) != 114 {
		t.Fatalf("encoded length = %d, want 114", len(enc))
	}
	dec := Decode(enc, PunctureMSC)
	if len(dec) != len(x) {
		t.Fatalf("decoded length = %d, want %d", len(dec), len(x))
	}
	for i := range x {
		if dec[i] != x[i] {
			t.Fatalf("bit %d: got %d want %d", i, dec[i], x[i])
		}
	}
}

func TestRoundTripRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for _, puncture := range [][]int{PunctureMSC, PunctureFAC, PunctureSDC} {
		for trial := 0; trial < 20; trial++ {
			n := 1 + rng.Intn(64)
			x := make([]byte, n)
			for i := range x {
				x[i] = byte(rng.Intn(2))
			}
			enc := Encode(x, puncture)
			dec := Decode(enc, puncture)
			if len(dec) != len(x) {
				t.Fatalf("puncture=%v n=%d: decoded length %d, want %d", puncture, n, len(dec), n)
			}
			for i := range x {
				if dec[i] != x[i] {
					t.Fatalf("puncture=%v n=%d: bit %d mismatch: got %d want %d", puncture, n, i, dec[i], x[i])
				}
			}
		}
	}
}

func TestEncodeLength(t *testing.T) {
	x := make([]byte, 10)
	for _, tc := range []struct {
		puncture []int
		kept     int
	}{
		{PunctureMSC, 3},
		{PunctureFAC, 4},
		{PunctureSDC, 2},
	} {
		enc := Encode(x, tc.puncture)
		want := (len(x) + ConstraintLength - 1) * tc.kept
		if len(enc) != want {
			t.Errorf("puncture %v: encoded length = %d, want %d", tc.puncture, len(enc), want)
		}
	}
}
