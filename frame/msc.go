/*
NAME
  msc.go

DESCRIPTION
  msc.go segments an opaque payload into MSC segments, serialises them to
  and from their CRC-checked wire form, and reassembles a payload from
  received segments.

AUTHOR
  Saxon Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package frame

import (
	"encoding/binary"

	"github.com/easypal-go/hamdrm/crc"
)

// MaxSegmentData is the maximum payload data bytes carried by one MSC
// segment; the header occupies a further 4 bytes and the wire form a
// further 2 bytes of trailing CRC-16, for a maximum wire size of 800.
const MaxSegmentData = 796

// MaxPayloadLen is the largest payload SegmentMSC will accept, bound by
// the 24-bit SDC payload-length field.
const MaxPayloadLen = 1<<24 - 1

// Segment is one logical MSC segment: a slice of the overall payload
// tagged with its position among the total segment count.
type Segment struct {
	SegNo uint16
	Total uint16
	Data  []byte
}

// SegmentMSC splits data into ordered Segments of at most MaxSegmentData
// bytes each. An empty payload still yields one (empty) segment. It fails
// with ErrPayloadTooLarge if data exceeds MaxPayloadLen bytes.
func SegmentMSC(data []byte) ([]Segment, error) {
	if len(data) > MaxPayloadLen {
		return nil, ErrPayloadTooLarge
	}

	total := (len(data) + MaxSegmentData - 1) / MaxSegmentData
	if total == 0 {
		total = 1
	}

	segments := make([]Segment, 0, total)
	for i := 0; i < total; i++ {
		start := i * MaxSegmentData
		end := start + MaxSegmentData
		if end > len(data) {
			end = len(data)
		}
		segments = append(segments, Segment{
			SegNo: uint16(i),
			Total: uint16(total),
			Data:  data[start:end],
		})
	}
	return segments, nil
}

// SerialiseSegment renders the wire form of a Segment: 2-byte segment
// index, 2-byte total count, data, and a big-endian CRC-16 over the
// header and data.
func SerialiseSegment(s Segment) []byte {
	buf := make([]byte, 4, 4+len(s.Data)+2)
	binary.BigEndian.PutUint16(buf[0:2], s.SegNo)
	binary.BigEndian.PutUint16(buf[2:4], s.Total)
	buf = append(buf, s.Data...)

	c := crc.CRC16(buf)
	buf = append(buf, byte(c>>8), byte(c))
	return buf
}

// DeserialiseSegment parses one wire-form segment, verifying its CRC-16.
// It fails with ErrTooShort if the buffer cannot hold the mandatory
// header and checksum, or ErrCrcMismatch if the checksum does not verify.
func DeserialiseSegment(wire []byte) (Segment, error) {
	if len(wire) < 4+2 {
		return Segment{}, ErrTooShort
	}
	body := wire[:len(wire)-2]
	want := crc.CRC16(body)
	got := uint16(wire[len(wire)-2])<<8 | uint16(wire[len(wire)-1])
	if got != want {
		return Segment{}, ErrCrcMismatch
	}
	return Segment{
		SegNo: binary.BigEndian.Uint16(body[0:2]),
		Total: binary.BigEndian.Uint16(body[2:4]),
		Data:  body[4:],
	}, nil
}

// DeserialiseSegments parses each wire-form segment in turn, skipping (and
// reporting the index of) any that fail deserialisation, rather than
// aborting on the first corrupt segment. This lets reassembly proceed
// best-effort over a noisy channel.
func DeserialiseSegments(wires [][]byte) (segments []Segment, badIndexes []int) {
	for i, w := range wires {
		s, err := DeserialiseSegment(w)
		if err != nil {
			badIndexes = append(badIndexes, i)
			continue
		}
		segments = append(segments, s)
	}
	return segments, badIndexes
}

// ReassembleMSC concatenates data from segments 0..expectedTotal-1, using
// the first occurrence seen of each segment index (segments are assumed
// to already have had their own CRC verified by DeserialiseSegment). It
// fails with ErrMissingSegment if any index in that range is absent.
func ReassembleMSC(segments []Segment, expectedTotal int) ([]byte, error) {
	bySeg := make(map[uint16]Segment, expectedTotal)
	for _, s := range segments {
		if _, ok := bySeg[s.SegNo]; !ok {
			bySeg[s.SegNo] = s
		}
	}

	var out []byte
	for i := 0; i < expectedTotal; i++ {
		s, ok := bySeg[uint16(i)]
		if !ok {
			return nil, ErrMissingSegment
		}
		out = append(out, s.Data...)
	}
	return out, nil
}
