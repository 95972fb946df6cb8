/*
NAME
  fac.go

DESCRIPTION
  fac.go encodes and decodes the 72-bit Fast Access Channel word that
  describes the per-frame transmission parameters.

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
	"github.com/pkg/errors"

	"github.com/easypal-go/hamdrm/bitio"
	"github.com/easypal-go/hamdrm/crc"
)

// FACBits and facDataBits are the total and data-only lengths, in bits,
// of the Fast Access Channel word.
const (
	FACBits     = 72
	facDataBits = 64
)

// FAC field values fixed by this profile.
const (
	facRobustnessModeB  = 0b01
	facSpectrumOccup0   = 0b000
	facInterleaveShort  = 0
	facMSCMode16QAM     = 0b011
	facSDCMode4QAM      = 0b001
	facServicesMinusOne = 0b00
	facServiceTypeData  = 1
)

// FACRecord is the parsed, human-meaningful form of a FAC word.
type FACRecord struct {
	Mode              string // "B" for robustness Mode B.
	SpectrumOccupancy string // "SO_0" for the narrowband occupancy.
	InterleaveDepth   int    // In frames; always 1 in this profile.
	MSCQAM            int    // 4 or 16.
	SDCQAM            int    // 4 or 16.
	NumServices       int
	ServiceType       int // 0 = audio, 1 = data.
	ServiceID         int
}

// EncodeFAC returns the fixed 72-bit FAC word (as a bit vector, one 0/1
// value per byte) for this profile: Mode B, narrowband occupancy, short
// (one frame) time interleaving, 16-QAM MSC, 4-QAM SDC, one data service.
func EncodeFAC() []byte {
	w := bitio.NewBitWriter()
	w.WriteBits(facRobustnessModeB, 2)  // [0..1]
	w.WriteBits(facSpectrumOccup0, 3)   // [2..4]
	w.WriteBits(facInterleaveShort, 1)  // [5]
	w.WriteBits(facMSCMode16QAM, 3)     // [6..8]
	w.WriteBits(facSDCMode4QAM, 3)      // [9..11]
	w.WriteBits(facServicesMinusOne, 2) // [12..13]
	w.WriteBits(facServiceTypeData, 1)  // [14]
	w.WriteBits(0, 6)                   // [15..20] reserved
	w.WriteBits(0, 7)                   // [21..27] service ID
	w.WriteBits(0, 36)                  // [28..63] reserved

	data := w.Bits()
	if len(data) != facDataBits {
		panic("frame: EncodeFAC: internal bit count mismatch")
	}
	crcByte := crc.CRC8(bitio.Pack(data))

	out := make([]byte, 0, FACBits)
	out = append(out, data...)
	out = append(out, bitio.Unpack([]byte{crcByte}, 8)...)
	return out
}

// DecodeFAC parses a 72-bit FAC word, verifying its CRC-8, and returns the
// parsed parameters. It fails with ErrCrcMismatch if the checksum does
// not verify.
func DecodeFAC(bits []byte) (*FACRecord, error) {
	if len(bits) != FACBits {
		return nil, errors.Errorf("frame: DecodeFAC: want %d bits, got %d", FACBits, len(bits))
	}
	data := bits[:facDataBits]
	crcBits := bits[facDataBits:]

	want := crc.CRC8(bitio.Pack(data))
	got := bitio.Pack(crcBits)[0]
	if got != want {
		return nil, ErrCrcMismatch
	}

	r := bitio.NewBitReader(data)
	robustness, _ := r.ReadBits(2)
	spectrum, _ := r.ReadBits(3)
	depth, _ := r.ReadBits(1)
	msc, _ := r.ReadBits(3)
	sdc, _ := r.ReadBits(3)
	services, _ := r.ReadBits(2)
	serviceType, _ := r.ReadBits(1)
	_, _ = r.ReadBits(6) // reserved
	serviceID, _ := r.ReadBits(7)

	rec := &FACRecord{
		NumServices: int(services) + 1,
		ServiceType: int(serviceType),
		ServiceID:   int(serviceID),
	}
	if robustness == facRobustnessModeB {
		rec.Mode = "B"
	}
	if spectrum == facSpectrumOccup0 {
		rec.SpectrumOccupancy = "SO_0"
	}
	if depth == facInterleaveShort {
		rec.InterleaveDepth = 1
	}
	switch msc {
	case facMSCMode16QAM:
		rec.MSCQAM = 16
	}
	switch sdc {
	case facSDCMode4QAM:
		rec.SDCQAM = 4
	}
	return rec, nil
}
