/*
NAME
  crc.go

DESCRIPTION
  crc.go provides the two CRC variants used by the HAMDRM framer: an
  MSB-first CRC-8 for the FAC word, and a CRC-16-CCITT for SDC records
  and MSC segments.

AUTHOR
  Saxon Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package crc implements the CRC-8 and CRC-16-CCITT checksums used by the
// HAMDRM channel framing.
package crc

// crc8Table is built for polynomial 0xD5, MSB first.
var crc8Table = makeCRC8Table(0xd5)

func makeCRC8Table(poly byte) *[256]byte {
	var t [256]byte
	for i := 0; i < 256; i++ {
		crc := byte(i)
		for j := 0; j < 8; j++ {
			if crc&0x80 != 0 {
				crc = (crc << 1) ^ poly
			} else {
				crc <<= 1
			}
		}
		t[i] = crc
	}
	return &t
}

// CRC8 computes the FAC checksum: polynomial 0xD5, initial 0xFF, MSB
// first, final XOR 0xFF.
func CRC8(data []byte) byte {
	crc := byte(0xff)
	for _, b := range data {
		crc = crc8Table[crc^b]
	}
	return crc ^ 0xff
}

// crc16Table is built for polynomial 0x1021 (CCITT), MSB first.
var crc16Table = makeCRC16Table(0x1021)

func makeCRC16Table(poly uint16) *[256]uint16 {
	var t [256]uint16
	for i := 0; i < 256; i++ {
		crc := uint16(i) << 8
		for j := 0; j < 8; j++ {
			if crc&0x8000 != 0 {
				crc = (crc << 1) ^ poly
			} else {
				crc <<= 1
			}
		}
		t[i] = crc
	}
	return &t
}

// CRC16 computes the SDC/MSC-segment checksum: polynomial 0x1021, initial
// 0xFFFF, no reflection, no final XOR.
func CRC16(data []byte) uint16 {
	crc := uint16(0xffff)
	for _, b := range data {
		crc = (crc << 8) ^ crc16Table[byte(crc>>8)^b]
	}
	return crc
}
