/*
NAME
  wavcodec.go

DESCRIPTION
  wavcodec.go reads and writes the 16-bit little-endian mono PCM WAV
  container that carries HAMDRM audio, using github.com/go-audio for the
  container plumbing.

AUTHOR
  David Sutton <davidsutton@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package wavcodec converts between floating-point PCM sample vectors
// and the 16-bit little-endian mono WAV container format HAMDRM audio is
// carried in.
package wavcodec

import (
	"bytes"
	"io"
	"math"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/pkg/errors"
)

const (
	bitDepth = 16
	channels = 1
)

// ErrInvalidRate is returned by Encode when sampleRate is not positive.
var ErrInvalidRate = errors.New("wavcodec: sample rate must be positive")

// ErrMalformed is returned by Decode when the input is not a readable
// WAV container.
var ErrMalformed = errors.New("wavcodec: malformed WAV input")

// Encode renders samples (in [-1, 1]) as 16-bit little-endian mono PCM
// WAV bytes at sampleRate Hz.
func Encode(samples []float64, sampleRate int) ([]byte, error) {
	if sampleRate <= 0 {
		return nil, ErrInvalidRate
	}

	sink := &seekBuffer{}
	enc := wav.NewEncoder(sink, sampleRate, bitDepth, channels, 1)

	ints := make([]int, len(samples))
	for i, s := range samples {
		ints[i] = quantize(s)
	}
	frame := &audio.IntBuffer{
		Format: &audio.Format{NumChannels: channels, SampleRate: sampleRate},
		Data:   ints,
	}
	if err := enc.Write(frame); err != nil {
		return nil, errors.Wrap(err, "wavcodec: encode")
	}
	if err := enc.Close(); err != nil {
		return nil, errors.Wrap(err, "wavcodec: encode")
	}
	return sink.buf, nil
}

// seekBuffer is a minimal in-memory io.WriteSeeker, the sink type
// wav.Encoder needs so it can rewind and patch the RIFF/data chunk
// sizes once the sample count is known.
type seekBuffer struct {
	buf []byte
	pos int
}

func (s *seekBuffer) Write(p []byte) (int, error) {
	end := s.pos + len(p)
	if end > len(s.buf) {
		s.buf = append(s.buf, make([]byte, end-len(s.buf))...)
	}
	copy(s.buf[s.pos:end], p)
	s.pos = end
	return len(p), nil
}

func (s *seekBuffer) Seek(offset int64, whence int) (int64, error) {
	var base int
	switch whence {
	case io.SeekStart:
		base = 0
	case io.SeekCurrent:
		base = s.pos
	case io.SeekEnd:
		base = len(s.buf)
	default:
		return 0, errors.New("wavcodec: invalid seek whence")
	}
	pos := base + int(offset)
	if pos < 0 {
		return 0, errors.New("wavcodec: negative seek position")
	}
	s.pos = pos
	return int64(pos), nil
}

// Decode parses 16-bit little-endian mono PCM WAV bytes into a slice of
// samples in [-1, 1] and the container's declared sample rate. It fails
// with ErrMalformed if wavBytes is not a valid RIFF/WAVE PCM container.
func Decode(wavBytes []byte) (samples []float64, sampleRate int, err error) {
	dec := wav.NewDecoder(bytes.NewReader(wavBytes))
	if !dec.IsValidFile() {
		return nil, 0, ErrMalformed
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, 0, errors.Wrap(err, "wavcodec: decode")
	}

	samples = make([]float64, len(buf.Data))
	for i, v := range buf.Data {
		samples[i] = float64(v) / float64(1<<(bitDepth-1))
	}
	return samples, buf.Format.SampleRate, nil
}

// quantize maps a float64 sample in [-1, 1] to a signed 16-bit PCM value,
// clamping out-of-range input rather than wrapping it.
func quantize(s float64) int {
	if s > 1 {
		s = 1
	}
	if s < -1 {
		s = -1
	}
	scale := float64(int(1) << (bitDepth - 1))
	v := int(math.Round(s * (scale - 1)))
	return v
}
