/*
NAME
  config.go

DESCRIPTION
  config.go defines the physical-layer parameters for the HAMDRM codec
  and their default (and only currently supported) values.

AUTHOR
  Saxon Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package config holds the fixed physical-layer parameters of the HAMDRM
// (EasyPal / Digital SSTV) profile, and validates that a Config is
// internally consistent before it is handed to the encoder or decoder.
package config

import "github.com/pkg/errors"

// Robustness modes. Only Mode B is currently supported.
const (
	ModeB = "B"
)

// Spectrum occupancies. Only the narrowband variant (SO_0) is supported.
const (
	SpectrumOccupancy0 = "SO_0"
)

// Config holds the narrowband HAMDRM physical-layer parameters. The zero
// value is not valid; use Default to obtain a ready-to-use Config.
type Config struct {
	// SampleRate is the internal processing sample rate in Hz.
	SampleRate int

	// SymbolsUseful is the useful (post-guard) OFDM symbol length N_u, in
	// samples.
	SymbolsUseful int

	// GuardLen is the cyclic-prefix guard length N_g, in samples.
	GuardLen int

	// SymbolsPerFrame is the number of OFDM symbols in one transmission
	// frame.
	SymbolsPerFrame int

	// FramesPerSuperFrame is the number of transmission frames in one
	// super-frame.
	FramesPerSuperFrame int

	// CarrierMin and CarrierMax are the active subcarrier index bounds,
	// inclusive, relative to the centre subcarrier.
	CarrierMin int
	CarrierMax int

	// CentreBin is the FFT bin index of the centre subcarrier (k=0).
	CentreBin int

	// MSCCellsPerFrame is the number of MSC data slots per transmission
	// frame; an invariant the encoder and decoder must agree on exactly.
	MSCCellsPerFrame int

	// DefaultMIME is used when the caller supplies no MIME type.
	DefaultMIME string

	// Mode and SpectrumOccupancy are informational labels carried in
	// diagnostics; they are fixed by this profile.
	Mode              string
	SpectrumOccupancy string
}

// Default returns the Config for the narrowband HAMDRM profile described by
// the physical-layer parameters in this package.
func Default() Config {
	return Config{
		SampleRate:          12000,
		SymbolsUseful:       256,
		GuardLen:            64,
		SymbolsPerFrame:     15,
		FramesPerSuperFrame: 3,
		CarrierMin:          -10,
		CarrierMax:          18,
		CentreBin:           32,
		MSCCellsPerFrame:    352,
		DefaultMIME:         "image/jpeg",
		Mode:                ModeB,
		SpectrumOccupancy:   SpectrumOccupancy0,
	}
}

// SymbolLen returns the full symbol length N_s (guard + useful), in samples.
func (c Config) SymbolLen() int { return c.GuardLen + c.SymbolsUseful }

// FrameLen returns the number of samples in one transmission frame.
func (c Config) FrameLen() int { return c.SymbolLen() * c.SymbolsPerFrame }

// SuperFrameLen returns the number of samples in one super-frame.
func (c Config) SuperFrameLen() int { return c.FrameLen() * c.FramesPerSuperFrame }

// ActiveCarriers returns the number of active subcarriers per symbol.
func (c Config) ActiveCarriers() int { return c.CarrierMax - c.CarrierMin + 1 }

// SuperFrameMSCBits returns the number of MSC bits carried by one
// super-frame at 4 bits/cell (16-QAM).
func (c Config) SuperFrameMSCBits() int {
	return c.MSCCellsPerFrame * 4 * c.FramesPerSuperFrame
}

// Validate checks that the configuration describes a physically consistent
// HAMDRM narrowband profile. It exists mainly to guard against accidental
// misuse of a hand-built Config rather than one from Default.
func (c Config) Validate() error {
	if c.SampleRate <= 0 {
		return errors.New("config: sample rate must be positive")
	}
	if c.SymbolsUseful <= 0 || c.SymbolsUseful&(c.SymbolsUseful-1) != 0 {
		return errors.New("config: useful symbol length must be a power of two")
	}
	if c.GuardLen <= 0 || c.GuardLen >= c.SymbolsUseful {
		return errors.New("config: guard length must be positive and less than the useful symbol length")
	}
	if c.SymbolsPerFrame <= 0 {
		return errors.New("config: symbols per frame must be positive")
	}
	if c.FramesPerSuperFrame <= 0 {
		return errors.New("config: frames per super-frame must be positive")
	}
	if c.CarrierMax <= c.CarrierMin {
		return errors.New("config: carrier range is empty or inverted")
	}
	if c.ActiveCarriers()*c.SymbolsPerFrame <= c.MSCCellsPerFrame {
		return errors.New("config: not enough slots in the frame to hold the configured MSC cell count")
	}
	if len(c.DefaultMIME) == 0 {
		return errors.New("config: default MIME must not be empty")
	}
	return nil
}
