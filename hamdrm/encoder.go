/*
NAME
  encoder.go

DESCRIPTION
  encoder.go implements the top-level HAMDRM encoder: opaque payload
  bytes to a 12,000 Hz mono PCM WAV waveform, per §4.7.

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

import (
	"github.com/easypal-go/hamdrm/bitio"
	"github.com/easypal-go/hamdrm/config"
	"github.com/easypal-go/hamdrm/conv"
	"github.com/easypal-go/hamdrm/frame"
	"github.com/easypal-go/hamdrm/logging"
	"github.com/easypal-go/hamdrm/ofdm"
	"github.com/easypal-go/hamdrm/wavcodec"
)

// Encoder renders payload bytes to HAMDRM audio under one fixed
// configuration.
type Encoder struct {
	Config config.Config
	Logger logging.Logger
}

// NewEncoder returns an Encoder for cfg, logging to logger (logging.Discard
// if nil).
func NewEncoder(cfg config.Config, logger logging.Logger) *Encoder {
	if logger == nil {
		logger = logging.Discard
	}
	return &Encoder{Config: cfg, Logger: logger}
}

// Encode renders payload (with the given MIME type, or Config.DefaultMIME
// if mime is empty) as 16-bit mono PCM WAV bytes at Config.SampleRate. It
// fails with frame.ErrPayloadTooLarge if payload exceeds frame.MaxPayloadLen
// bytes.
func (e *Encoder) Encode(payload []byte, mime string) ([]byte, error) {
	cfg := e.Config
	if mime == "" {
		mime = cfg.DefaultMIME
	}

	segs, err := frame.SegmentMSC(payload)
	if err != nil {
		return nil, err
	}

	var bitstream []byte
	for _, s := range segs {
		wire := frame.SerialiseSegment(s)
		bitstream = append(bitstream, bitio.Unpack(wire, len(wire)*8)...)
	}

	encoded := conv.Encode(bitstream, conv.PunctureMSC)

	capBits := cfg.SuperFrameMSCBits()
	if rem := len(encoded) % capBits; rem != 0 {
		encoded = append(encoded, make([]byte, capBits-rem)...)
	}

	facBits := frame.EncodeFAC()
	sdcWire := frame.EncodeSDC(uint32(len(payload)), mime)
	sdcBits := bitio.Unpack(sdcWire, len(sdcWire)*8)

	bitsPerFrame := cfg.MSCCellsPerFrame * 4
	numFrames := len(encoded) / bitsPerFrame

	e.Logger.Log(logging.Info, "hamdrm: encoding payload", "bytes", len(payload), "segments", len(segs), "frames", numFrames)

	samples := make([]float64, 0, numFrames*cfg.FrameLen())
	for f := 0; f < numFrames; f++ {
		frameBits := encoded[f*bitsPerFrame : (f+1)*bitsPerFrame]
		mscCells := buildMSCCellsForFrame(frameBits)

		var grid ofdm.Grid
		for i, pos := range ofdm.MSCSlots() {
			grid[pos[0]][pos[1]] = mscCells[i]
		}
		placeFAC(&grid, facBits, f)
		placeSDC(&grid, sdcBits, f)

		samples = append(samples, ofdm.Modulate(cfg, grid)...)
	}

	ofdm.Normalise(samples)

	out, err := wavcodec.Encode(samples, cfg.SampleRate)
	if err != nil {
		return nil, err
	}
	e.Logger.Log(logging.Info, "hamdrm: encoded WAV", "bytes", len(out))
	return out, nil
}
