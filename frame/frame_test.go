package frame

import (
	"bytes"
	"testing"
)

func TestFACIdempotence(t *testing.T) {
	rec, err := DecodeFAC(EncodeFAC())
	if err != nil {
		t.Fatalf("DecodeFAC: %v", err)
	}
	want := FACRecord{
		Mode:              "B",
		SpectrumOccupancy: "SO_0",
		InterleaveDepth:   1,
		MSCQAM:            16,
		SDCQAM:            4,
		NumServices:       1,
		ServiceType:       1,
		ServiceID:         0,
	}
	if *rec != want {
		t.Fatalf("DecodeFAC(EncodeFAC()) = %+v, want %+v", *rec, want)
	}
}

func TestFACCRCSensitivity(t *testing.T) {
	base := EncodeFAC()
	for i := range base {
		flipped := append([]byte(nil), base...)
		flipped[i] ^= 1
		if _, err := DecodeFAC(flipped); err != ErrCrcMismatch {
			t.Errorf("bit %d: DecodeFAC error = %v, want ErrCrcMismatch", i, err)
		}
	}
}

func TestSDCIdempotence(t *testing.T) {
	gotLen, gotMime, err := DecodeSDC(EncodeSDC(123456, "image/jpeg"))
	if err != nil {
		t.Fatalf("DecodeSDC: %v", err)
	}
	if gotLen != 123456 || gotMime != "image/jpeg" {
		t.Fatalf("got (%d, %q), want (123456, image/jpeg)", gotLen, gotMime)
	}
}

func TestSDCMIMEClipped(t *testing.T) {
	long := "application/x-very-long-mime-type-string-indeed"
	wire := EncodeSDC(1, long)
	_, mime, err := DecodeSDC(wire)
	if err != nil {
		t.Fatalf("DecodeSDC: %v", err)
	}
	if len(mime) != MaxSDCMIMELen || mime != long[:MaxSDCMIMELen] {
		t.Fatalf("mime = %q (len %d), want %q", mime, len(mime), long[:MaxSDCMIMELen])
	}
}

func TestSDCCRCSensitivity(t *testing.T) {
	base := EncodeSDC(42, "image/jpeg")
	for i := range base {
		for bit := 0; bit < 8; bit++ {
			flipped := append([]byte(nil), base...)
			flipped[i] ^= 1 << uint(bit)
			_, _, err := DecodeSDC(flipped)
			if err == nil {
				// A flipped length/MIME byte can, in principle, still collide
				// with a valid-looking record only if the CRC also matches,
				// which CRC16Sensitivity in the crc package rules out.
				t.Errorf("byte %d bit %d: DecodeSDC succeeded unexpectedly", i, bit)
			}
		}
	}
}

func bytesRange(n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(i)
	}
	return b
}

func TestSegmentMSCSingle(t *testing.T) {
	data := bytesRange(100)
	segs, err := SegmentMSC(data)
	if err != nil {
		t.Fatalf("SegmentMSC: %v", err)
	}
	if len(segs) != 1 {
		t.Fatalf("got %d segments, want 1", len(segs))
	}
	if segs[0].SegNo != 0 || segs[0].Total != 1 || len(segs[0].Data) != 100 {
		t.Fatalf("segment = %+v", segs[0])
	}
	wire := SerialiseSegment(segs[0])
	if len(wire) != 106 {
		t.Fatalf("wire length = %d, want 106", len(wire))
	}
}

func TestSegmentMSCMultiple(t *testing.T) {
	data := bytesRange(2000)
	segs, err := SegmentMSC(data)
	if err != nil {
		t.Fatalf("SegmentMSC: %v", err)
	}
	if len(segs) != 3 {
		t.Fatalf("got %d segments, want 3", len(segs))
	}
	wantLens := []int{796, 796, 408}
	for i, s := range segs {
		if len(s.Data) != wantLens[i] {
			t.Errorf("segment %d: data length %d, want %d", i, len(s.Data), wantLens[i])
		}
	}

	var wires [][]byte
	for _, s := range segs {
		wires = append(wires, SerialiseSegment(s))
	}
	parsed, bad := DeserialiseSegments(wires)
	if len(bad) != 0 {
		t.Fatalf("unexpected bad segments: %v", bad)
	}
	got, err := ReassembleMSC(parsed, 3)
	if err != nil {
		t.Fatalf("ReassembleMSC: %v", err)
	}
	if !bytes.Equal(got, data) {
		t.Fatalf("reassembled payload does not match original")
	}
}

func TestSegmentMSCPayloadTooLarge(t *testing.T) {
	_, err := SegmentMSC(make([]byte, MaxPayloadLen+1))
	if err != ErrPayloadTooLarge {
		t.Fatalf("err = %v, want ErrPayloadTooLarge", err)
	}
}

func TestReassembleMissing(t *testing.T) {
	segs, _ := SegmentMSC(bytesRange(2000))
	var wires [][]byte
	for i, s := range segs {
		if i == 1 {
			continue // drop the middle segment
		}
		wires = append(wires, SerialiseSegment(s))
	}
	parsed, _ := DeserialiseSegments(wires)
	_, err := ReassembleMSC(parsed, len(segs))
	if err != ErrMissingSegment {
		t.Fatalf("err = %v, want ErrMissingSegment", err)
	}
}

func TestDeserialiseSegmentCRCMismatch(t *testing.T) {
	segs, _ := SegmentMSC(bytesRange(10))
	wire := SerialiseSegment(segs[0])
	wire[len(wire)-1] ^= 0xff
	_, err := DeserialiseSegment(wire)
	if err != ErrCrcMismatch {
		t.Fatalf("err = %v, want ErrCrcMismatch", err)
	}
}
