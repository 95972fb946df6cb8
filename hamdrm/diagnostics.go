/*
NAME
  diagnostics.go

DESCRIPTION
  diagnostics.go defines the decode-time diagnostics record returned
  alongside recovered payload bytes.

AUTHOR
  Saxon Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package hamdrm implements the top-level HAMDRM (EasyPal Digital SSTV)
// encoder and decoder: image payload bytes to and from a 12,000 Hz mono
// PCM WAV waveform, built on config, bitio, crc, conv, interleave, qam,
// frame, ofdm and wavcodec.
package hamdrm

// Diagnostics reports what the decoder observed about a transmission,
// beyond the recovered payload bytes themselves.
type Diagnostics struct {
	SampleRateIn      int     // Sample rate of the input WAV/samples, Hz.
	FileDurationS     float64 // Duration of the input audio, seconds.
	Mode              string  // FAC-reported robustness mode, or cfg.Mode on FAC failure.
	SpectrumOccupancy string  // FAC-reported spectrum occupancy, or cfg.SpectrumOccupancy on failure.
	FECRate           string  // MSC FEC-rate label; this profile always reports "1/2".
	SNRdB             float64 // Pilot-based SNR estimate from the first frame.
	FramesDecoded     int     // Number of transmission frames demodulated.
	SegmentErrors     int     // Count of sliced MSC segments that failed deserialisation (CRC or length); segments never sliced are not counted.
	SegmentCRCErrors  []int   // Indexes (into the sliced wire list) of the segments in SegmentErrors.
	DecodeDurationMS  float64 // Wall-clock time spent in Decode.
	MIME              string  // MIME type recovered from SDC, if any.
	PayloadLength     int     // Payload length recovered from SDC, if any.
}
