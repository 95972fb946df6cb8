package wavcodec

import (
	"math"
	"testing"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	samples := make([]float64, 320*3)
	for i := range samples {
		samples[i] = math.Sin(float64(i) * 0.1)
	}

	wavBytes, err := Encode(samples, 12000)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	got, rate, err := Decode(wavBytes)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if rate != 12000 {
		t.Errorf("sample rate = %d, want 12000", rate)
	}
	if len(got) != len(samples) {
		t.Fatalf("sample count = %d, want %d", len(got), len(samples))
	}
	for i := range samples {
		if math.Abs(got[i]-samples[i]) > 1.0/(1<<14) {
			t.Fatalf("sample %d: got %v, want %v", i, got[i], samples[i])
		}
	}
}

func TestEncodeInvalidRate(t *testing.T) {
	if _, err := Encode(nil, 0); err != ErrInvalidRate {
		t.Fatalf("err = %v, want ErrInvalidRate", err)
	}
}

func TestDecodeMalformed(t *testing.T) {
	if _, _, err := Decode([]byte("not a wav file")); err != ErrMalformed {
		t.Fatalf("err = %v, want ErrMalformed", err)
	}
}

func TestEncodeClipsOutOfRange(t *testing.T) {
	wavBytes, err := Encode([]float64{2, -2}, 12000)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	got, _, err := Decode(wavBytes)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got[0] <= 0.9 || got[1] >= -0.9 {
		t.Fatalf("clipped samples = %v, want near +/-1", got)
	}
}
