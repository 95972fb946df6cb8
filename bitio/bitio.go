/*
NAME
  bitio.go

DESCRIPTION
  bitio.go provides MSB-first bit packing and unpacking utilities used
  throughout the framer and convolutional codec.

AUTHOR
  Saxon Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package bitio provides MSB-first bit packing/unpacking between byte
// slices and bit vectors (one 0/1 value per byte), and a BitReader for
// pulling fixed-width fields out of a bit vector.
package bitio

import "github.com/pkg/errors"

// Unpack expands the first n bits of data into a bit vector, MSB first
// within each byte. n must not exceed 8*len(data).
func Unpack(data []byte, n int) []byte {
	if n > 8*len(data) {
		panic("bitio: Unpack: n exceeds available bits")
	}
	bits := make([]byte, n)
	for i := 0; i < n; i++ {
		b := data[i/8]
		bits[i] = (b >> uint(7-i%8)) & 1
	}
	return bits
}

// Pack condenses a bit vector (one 0/1 value per byte) into bytes, MSB
// first within each byte. The final byte is zero-padded if len(bits) is
// not a multiple of 8.
func Pack(bits []byte) []byte {
	out := make([]byte, (len(bits)+7)/8)
	for i, b := range bits {
		if b != 0 {
			out[i/8] |= 1 << uint(7-i%8)
		}
	}
	return out
}

// BitReader reads fixed-width MSB-first fields out of a bit vector (one
// 0/1 value per byte), as produced by Unpack.
type BitReader struct {
	bits []byte
	pos  int
}

// NewBitReader returns a BitReader over bits.
func NewBitReader(bits []byte) *BitReader {
	return &BitReader{bits: bits}
}

// ReadBits reads the next n bits and returns them as the least-significant
// bits of a uint64.
func (r *BitReader) ReadBits(n int) (uint64, error) {
	if r.pos+n > len(r.bits) {
		return 0, errors.Errorf("bitio: ReadBits(%d): only %d bits remain", n, len(r.bits)-r.pos)
	}
	var v uint64
	for i := 0; i < n; i++ {
		v = (v << 1) | uint64(r.bits[r.pos+i])
	}
	r.pos += n
	return v, nil
}

// Remaining returns the number of unread bits.
func (r *BitReader) Remaining() int { return len(r.bits) - r.pos }

// BitWriter accumulates bits MSB-first into a bit vector.
type BitWriter struct {
	bits []byte
}

// NewBitWriter returns an empty BitWriter.
func NewBitWriter() *BitWriter { return &BitWriter{} }

// WriteBits appends the low n bits of v, most-significant first.
func (w *BitWriter) WriteBits(v uint64, n int) {
	for i := n - 1; i >= 0; i-- {
		w.bits = append(w.bits, byte((v>>uint(i))&1))
	}
}

// Bits returns the accumulated bit vector.
func (w *BitWriter) Bits() []byte { return w.bits }
