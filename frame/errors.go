/*
NAME
  errors.go

DESCRIPTION
  errors.go defines the sentinel errors used by the FAC/SDC/MSC channel
  framer.

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

import "github.com/pkg/errors"

// Sentinel errors for the framer. Callers should use errors.Is (or
// errors.Cause, since these are also wrapped with github.com/pkg/errors
// context as they propagate) to test against these.
var (
	// ErrCrcMismatch indicates a FAC word, SDC record, or MSC segment
	// failed its CRC check.
	ErrCrcMismatch = errors.New("frame: crc mismatch")

	// ErrTooShort indicates a wire-format buffer was too short to
	// contain its mandatory fields.
	ErrTooShort = errors.New("frame: buffer too short")

	// ErrMissingSegment indicates MSC reassembly could not find every
	// segment index in [0, expectedTotal).
	ErrMissingSegment = errors.New("frame: missing msc segment")

	// ErrPayloadTooLarge indicates a payload exceeds the 2^24-1 byte
	// limit imposed by the SDC payload-length field.
	ErrPayloadTooLarge = errors.New("frame: payload too large")
)
