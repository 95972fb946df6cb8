/*
NAME
  sdc.go

DESCRIPTION
  sdc.go encodes and decodes the Service Description Channel record,
  which carries the end-to-end payload length and MIME type of the
  transmitted image.

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
	"bytes"

	"github.com/easypal-go/hamdrm/crc"
)

// MaxSDCMIMELen is the maximum MIME string length carried by an SDC
// record; longer strings are clipped.
const MaxSDCMIMELen = 32

// mimeFieldLen is the fixed width of the nul-terminated MIME field: the
// clipped MIME plus at least one terminator byte. Padding it to a fixed
// width regardless of the actual MIME length gives every SDC record the
// same wire length (SDCWireLen), which the top-level framer relies on to
// cycle SDC bits across frames without first knowing the message's MIME
// string.
const mimeFieldLen = MaxSDCMIMELen + 1

// SDCWireLen is the fixed length, in bytes, of every SDC record this
// package produces.
const SDCWireLen = 3 + mimeFieldLen + 2

// EncodeSDC renders an SDC record: a 24-bit big-endian payload length,
// the MIME string (clipped to MaxSDCMIMELen bytes) nul-terminated and
// zero-padded to a fixed width, and a big-endian CRC-16 over everything
// preceding it.
func EncodeSDC(payloadLen uint32, mime string) []byte {
	if len(mime) > MaxSDCMIMELen {
		mime = mime[:MaxSDCMIMELen]
	}
	buf := make([]byte, 3, SDCWireLen)
	buf[0] = byte(payloadLen >> 16)
	buf[1] = byte(payloadLen >> 8)
	buf[2] = byte(payloadLen)
	buf = append(buf, mime...)
	buf = append(buf, make([]byte, mimeFieldLen-len(mime))...)

	c := crc.CRC16(buf)
	buf = append(buf, byte(c>>8), byte(c))
	return buf
}

// DecodeSDC parses an SDC record, verifying its CRC-16, and returns the
// payload length and MIME type. It fails with ErrTooShort if the buffer is
// not exactly SDCWireLen bytes long or its MIME field has no NUL
// terminator, or ErrCrcMismatch if the checksum does not verify.
func DecodeSDC(data []byte) (payloadLen uint32, mime string, err error) {
	if len(data) != SDCWireLen {
		return 0, "", ErrTooShort
	}
	body := data[:len(data)-2]
	want := crc.CRC16(body)
	got := uint16(data[len(data)-2])<<8 | uint16(data[len(data)-1])
	if got != want {
		return 0, "", ErrCrcMismatch
	}

	payloadLen = uint32(body[0])<<16 | uint32(body[1])<<8 | uint32(body[2])
	mimeField := body[3:]
	nul := bytes.IndexByte(mimeField, 0)
	if nul < 0 {
		return 0, "", ErrTooShort
	}
	mime = string(mimeField[:nul])
	return payloadLen, mime, nil
}
