/*
NAME
  segments.go

DESCRIPTION
  segments.go slices the decoder's flat, Viterbi-decoded byte stream back
  into individual MSC segment wire forms, since the stream itself carries
  no explicit per-segment length field.

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

import "github.com/easypal-go/hamdrm/frame"

// segmentWireLen returns the wire length of a segment carrying dataLen
// bytes of payload data: a 4-byte header, the data itself, and a 2-byte
// CRC-16.
func segmentWireLen(dataLen int) int { return 4 + dataLen + 2 }

// splitKnownSegments slices data into expectedTotal wire-form segments,
// given the original payload length from a successfully recovered SDC
// record: every segment but the last carries frame.MaxSegmentData
// bytes, and the last carries whatever payloadLen implies remains.
func splitKnownSegments(data []byte, expectedTotal, payloadLen int) [][]byte {
	var wires [][]byte
	off := 0
	for i := 0; i < expectedTotal; i++ {
		dataLen := frame.MaxSegmentData
		if i == expectedTotal-1 {
			dataLen = payloadLen - frame.MaxSegmentData*(expectedTotal-1)
		}
		if dataLen < 0 {
			break
		}
		wl := segmentWireLen(dataLen)
		if off+wl > len(data) {
			break
		}
		wires = append(wires, data[off:off+wl])
		off += wl
	}
	return wires
}

// splitUnknownLastSegment slices expectedTotal-1 full-size segments off
// the front of data, then searches the remaining bytes for the shortest
// prefix whose CRC-16 validates as the final segment. Used when SDC's
// payload length could not be recovered, so the last segment's data
// length is not otherwise known.
func splitUnknownLastSegment(data []byte, expectedTotal int) [][]byte {
	var wires [][]byte
	off := 0
	for i := 0; i < expectedTotal-1; i++ {
		wl := segmentWireLen(frame.MaxSegmentData)
		if off+wl > len(data) {
			return wires
		}
		wires = append(wires, data[off:off+wl])
		off += wl
	}
	if expectedTotal == 0 {
		return wires
	}
	for dataLen := 0; dataLen <= frame.MaxSegmentData; dataLen++ {
		wl := segmentWireLen(dataLen)
		if off+wl > len(data) {
			break
		}
		candidate := data[off : off+wl]
		if _, err := frame.DeserialiseSegment(candidate); err == nil {
			wires = append(wires, candidate)
			return wires
		}
	}
	return wires
}
