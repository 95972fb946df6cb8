package hamdrm

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/easypal-go/hamdrm/config"
)

func bytesRange(n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(i)
	}
	return b
}

// minSDCFrames is the number of frames needed to cycle a full SDC record
// (frame.SDCWireLen*8 bits at 12 bits/frame) through at least once; below
// this, DecodeSDC never sees every bit and its CRC check can't pass, so
// diag.MIME/diag.PayloadLength stay at their zero values (§4.8, "SDC is
// recovered opportunistically").
const minSDCFrames = 26

func TestEncodeDecodeRoundTripSmallPayloads(t *testing.T) {
	cfg := config.Default()
	for _, n := range []int{1, 10, 100, 796, 1000, 2000} {
		payload := bytesRange(n)
		enc := NewEncoder(cfg, nil)
		wavBytes, err := enc.Encode(payload, "image/jpeg")
		if err != nil {
			t.Fatalf("payload len %d: Encode: %v", n, err)
		}

		dec := NewDecoder(cfg, nil)
		got, diag, err := dec.Decode(wavBytes)
		if err != nil {
			t.Fatalf("payload len %d: Decode: %v", n, err)
		}
		if !bytes.Equal(got, payload) {
			t.Fatalf("payload len %d: decoded %d bytes, want %d bytes matching original", n, len(got), n)
		}
		if diag.SegmentErrors != 0 {
			t.Errorf("payload len %d: segment errors = %d, want 0", n, diag.SegmentErrors)
		}
		if diag.FramesDecoded < minSDCFrames {
			continue
		}
		if diag.MIME != "image/jpeg" {
			t.Errorf("payload len %d: MIME = %q, want image/jpeg", n, diag.MIME)
		}
		if diag.PayloadLength != n {
			t.Errorf("payload len %d: diagnostics PayloadLength = %d", n, diag.PayloadLength)
		}
	}
}

// TestDecodeDiagnosticsStructMatchesEncodedPayload checks the decoded
// Diagnostics record as a whole, using cmp.Diff for a readable mismatch
// report in the style of revid/config's tests. The payload is large
// enough (minSDCFrames or more frames) to recover SDC, so MIME and
// PayloadLength are populated; fields that vary run to run (timing, SNR,
// exact frame/sample counts) are excluded from the comparison.
func TestDecodeDiagnosticsStructMatchesEncodedPayload(t *testing.T) {
	cfg := config.Default()
	payload := bytesRange(2000)
	enc := NewEncoder(cfg, nil)
	wavBytes, err := enc.Encode(payload, "image/jpeg")
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	dec := NewDecoder(cfg, nil)
	_, diag, err := dec.Decode(wavBytes)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if diag.FramesDecoded < minSDCFrames {
		t.Fatalf("FramesDecoded = %d, want >= %d for SDC to be recoverable", diag.FramesDecoded, minSDCFrames)
	}

	want := Diagnostics{
		SampleRateIn:      cfg.SampleRate,
		Mode:              cfg.Mode,
		SpectrumOccupancy: cfg.SpectrumOccupancy,
		FECRate:           "1/2",
		MIME:              "image/jpeg",
		PayloadLength:     len(payload),
		SegmentErrors:     0,
	}

	opts := cmp.Options{
		cmpopts.IgnoreFields(Diagnostics{}, "FileDurationS", "SNRdB", "FramesDecoded", "SegmentCRCErrors", "DecodeDurationMS"),
		cmpopts.EquateEmpty(),
	}
	if diff := cmp.Diff(want, diag, opts...); diff != "" {
		t.Errorf("diagnostics mismatch (-want +got):\n%s", diff)
	}
}

func TestEncodeDecode10ByteFrameSize(t *testing.T) {
	cfg := config.Default()
	payload := bytesRange(10)
	enc := NewEncoder(cfg, nil)
	wavBytes, err := enc.Encode(payload, "")
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	dataSize := len(wavBytes) - 44
	if dataSize%9600 != 0 {
		t.Errorf("WAV data size = %d, want a multiple of 9600", dataSize)
	}

	dec := NewDecoder(cfg, nil)
	got, diag, err := dec.Decode(wavBytes)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !bytes.Equal(got, payload) {
		t.Fatalf("decoded payload does not match original")
	}
	if diag.SegmentErrors != 0 {
		t.Errorf("segment errors = %d, want 0", diag.SegmentErrors)
	}
}

func TestDecodeReportsSNRAndFrames(t *testing.T) {
	cfg := config.Default()
	payload := bytesRange(500)
	enc := NewEncoder(cfg, nil)
	wavBytes, err := enc.Encode(payload, "image/png")
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	dec := NewDecoder(cfg, nil)
	_, diag, err := dec.Decode(wavBytes)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if diag.FramesDecoded <= 0 {
		t.Errorf("FramesDecoded = %d, want > 0", diag.FramesDecoded)
	}
	if diag.SNRdB < 30 {
		t.Errorf("SNRdB = %v, want a high value for a clean channel", diag.SNRdB)
	}
	if diag.Mode != "B" || diag.SpectrumOccupancy != "SO_0" {
		t.Errorf("Mode/SpectrumOccupancy = %s/%s, want B/SO_0", diag.Mode, diag.SpectrumOccupancy)
	}
}

func TestEncodePayloadTooLarge(t *testing.T) {
	cfg := config.Default()
	enc := NewEncoder(cfg, nil)
	_, err := enc.Encode(make([]byte, 1<<24), "image/jpeg")
	if err == nil {
		t.Fatal("Encode: want error for oversize payload")
	}
}

func TestDecodeEmptyPayload(t *testing.T) {
	cfg := config.Default()
	enc := NewEncoder(cfg, nil)
	wavBytes, err := enc.Encode(nil, "image/jpeg")
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	dec := NewDecoder(cfg, nil)
	got, _, err := dec.Decode(wavBytes)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("decoded %d bytes, want 0", len(got))
	}
}
