/*
NAME
  decoder.go

DESCRIPTION
  decoder.go implements the top-level HAMDRM decoder: a 12,000 Hz mono
  PCM WAV waveform back to opaque payload bytes plus diagnostics, per
  §4.8.

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
	"encoding/binary"
	"time"

	"github.com/easypal-go/hamdrm/bitio"
	"github.com/easypal-go/hamdrm/config"
	"github.com/easypal-go/hamdrm/conv"
	"github.com/easypal-go/hamdrm/dsp/resample"
	"github.com/easypal-go/hamdrm/frame"
	"github.com/easypal-go/hamdrm/logging"
	"github.com/easypal-go/hamdrm/ofdm"
	"github.com/easypal-go/hamdrm/qam"
	"github.com/easypal-go/hamdrm/wavcodec"
)

// Decoder recovers payload bytes from HAMDRM audio under one fixed
// configuration.
type Decoder struct {
	Config config.Config
	Logger logging.Logger
}

// NewDecoder returns a Decoder for cfg, logging to logger (logging.Discard
// if nil).
func NewDecoder(cfg config.Config, logger logging.Logger) *Decoder {
	if logger == nil {
		logger = logging.Discard
	}
	return &Decoder{Config: cfg, Logger: logger}
}

// Decode recovers payload bytes and diagnostics from wavBytes, a 16-bit
// PCM WAV container (at any sample rate; non-native rates are linearly
// resampled first).
func (d *Decoder) Decode(wavBytes []byte) ([]byte, Diagnostics, error) {
	samples, rateIn, err := wavcodec.Decode(wavBytes)
	if err != nil {
		return nil, Diagnostics{}, err
	}
	return d.decodeSamples(samples, rateIn, time.Now())
}

// DecodeSamples recovers payload bytes and diagnostics directly from a
// vector of samples at the stated sample rate, bypassing the WAV
// container.
func (d *Decoder) DecodeSamples(samples []float64, sampleRate int) ([]byte, Diagnostics, error) {
	return d.decodeSamples(samples, sampleRate, time.Now())
}

func (d *Decoder) decodeSamples(samples []float64, rateIn int, start time.Time) ([]byte, Diagnostics, error) {
	cfg := d.Config
	fileDurationS := float64(len(samples)) / float64(rateIn)

	if rateIn != cfg.SampleRate {
		resampled, err := resample.Linear(samples, rateIn, cfg.SampleRate)
		if err != nil {
			return nil, Diagnostics{}, err
		}
		samples = resampled
	}

	diag := Diagnostics{
		SampleRateIn:      rateIn,
		FileDurationS:     fileDurationS,
		Mode:              cfg.Mode,
		SpectrumOccupancy: cfg.SpectrumOccupancy,
		FECRate:           "1/2",
	}

	offset, err := ofdm.CoarseSync(cfg, samples)
	if err != nil {
		return nil, diag, err
	}

	frameLen := cfg.FrameLen()
	numFrames := (len(samples) - offset) / frameLen
	if numFrames < 1 {
		return nil, diag, ErrNoFrames
	}

	d.Logger.Log(logging.Info, "hamdrm: synced", "offset", offset, "frames", numFrames)

	facBuf := make([]byte, frame.FACBits)
	sdcBuf := make([]byte, frame.SDCWireLen*8)
	var mscBits []byte

	for f := 0; f < numFrames; f++ {
		grid, err := ofdm.Demodulate(cfg, samples, offset+f*frameLen)
		if err != nil {
			return nil, diag, err
		}

		if f == 0 {
			// Pilots arrive scaled by the global peak normalisation (and any
			// flat channel gain), so divide out their mean gain first.
			pilots := ofdm.PilotSlots()
			var mean qam.Cell
			for _, pos := range pilots {
				mean.Re += grid[pos[0]][pos[1]].Re / float64(len(pilots))
				mean.Im += grid[pos[0]][pos[1]].Im / float64(len(pilots))
			}
			gain := ofdm.Equalize(mean, ofdm.PilotValue)
			scaled := grid
			for _, pos := range pilots {
				scaled[pos[0]][pos[1]] = ofdm.Equalize(grid[pos[0]][pos[1]], gain)
			}
			diag.SNRdB = ofdm.EstimateSNR(scaled)
		}

		eq := equalizeGrid(grid)
		extractFAC(eq, facBuf, f)
		extractSDC(eq, sdcBuf, f)
		mscBits = append(mscBits, extractMSCBitsFromFrame(eq)...)
	}
	diag.FramesDecoded = numFrames

	if rec, err := frame.DecodeFAC(facBuf); err == nil {
		diag.Mode = rec.Mode
		diag.SpectrumOccupancy = rec.SpectrumOccupancy
		switch rec.MSCQAM {
		case 16:
			diag.FECRate = "1/2"
		}
	} else {
		d.Logger.Log(logging.Warning, "hamdrm: FAC CRC failed, using profile defaults", "mode", cfg.Mode, "spectrumOccupancy", cfg.SpectrumOccupancy)
	}

	var expectedTotal int
	haveSDC := false
	if sdcLen, mime, err := frame.DecodeSDC(bitio.Pack(sdcBuf)); err == nil {
		diag.MIME = mime
		diag.PayloadLength = int(sdcLen)
		expectedTotal = (int(sdcLen) + frame.MaxSegmentData - 1) / frame.MaxSegmentData
		if expectedTotal == 0 {
			expectedTotal = 1
		}
		haveSDC = true
	} else {
		d.Logger.Log(logging.Warning, "hamdrm: SDC CRC failed, falling back to segment header totals")
	}

	decodedBits := conv.Decode(mscBits, conv.PunctureMSC)
	decodedBytes := bitio.Pack(decodedBits)

	var wires [][]byte
	if haveSDC {
		wires = splitKnownSegments(decodedBytes, expectedTotal, diag.PayloadLength)
	} else {
		if expectedTotal == 0 && len(decodedBytes) >= 4 {
			expectedTotal = int(binary.BigEndian.Uint16(decodedBytes[2:4]))
		}
		if expectedTotal == 0 {
			expectedTotal = 1
		}
		wires = splitUnknownLastSegment(decodedBytes, expectedTotal)
	}

	segs, bad := frame.DeserialiseSegments(wires)
	diag.SegmentErrors = len(bad)
	diag.SegmentCRCErrors = bad

	payload, err := frame.ReassembleMSC(segs, expectedTotal)
	diag.DecodeDurationMS = float64(time.Since(start).Microseconds()) / 1000

	if err != nil {
		return nil, diag, err
	}
	return payload, diag, nil
}
