/*
NAME
  main.go

DESCRIPTION
  hamdrm-decode is a bare bones program for recovering a payload file from
  a HAMDRM (EasyPal Digital SSTV) WAV waveform.

AUTHOR
  Saxon Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package main implements hamdrm-decode, a command line HAMDRM decoder.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/easypal-go/hamdrm/config"
	"github.com/easypal-go/hamdrm/hamdrm"
	"github.com/easypal-go/hamdrm/logging"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logging related constants.
const (
	logPath      = "/var/log/hamdrm-decode/hamdrm-decode.log"
	logMaxSize   = 100 // MB
	logMaxBackup = 5
	logMaxAge    = 28 // days
	logVerbosity = logging.Info
)

func main() {
	inPtr := flag.String("in", "", "Path to the WAV file to decode.")
	outPtr := flag.String("out", "out.bin", "Path to write the recovered payload to.")
	logPtr := flag.String("log", logPath, "Path to the log file.")
	flag.Parse()

	fileLog := &lumberjack.Logger{
		Filename:   *logPtr,
		MaxSize:    logMaxSize,
		MaxBackups: logMaxBackup,
		MaxAge:     logMaxAge,
	}
	l := logging.New(logVerbosity, io.MultiWriter(fileLog, os.Stderr))

	if *inPtr == "" {
		l.Log(logging.Fatal, "no input file given, use -in")
	}

	wavBytes, err := os.ReadFile(*inPtr)
	if err != nil {
		l.Log(logging.Fatal, "could not read input file", "error", err)
	}

	cfg := config.Default()
	if err := cfg.Validate(); err != nil {
		l.Log(logging.Fatal, "invalid configuration", "error", err)
	}

	dec := hamdrm.NewDecoder(cfg, l)
	payload, diag, err := dec.Decode(wavBytes)
	if err != nil {
		l.Log(logging.Fatal, "decode failed", "error", err, "diagnostics", diag)
	}

	if err := os.WriteFile(*outPtr, payload, 0644); err != nil {
		l.Log(logging.Fatal, "could not write output file", "error", err)
	}
	l.Log(logging.Info, "decoded WAV to payload", "in", *inPtr, "out", *outPtr, "bytes", len(payload))

	fmt.Printf("mime: %s\n", diag.MIME)
	fmt.Printf("payload length: %d bytes\n", diag.PayloadLength)
	fmt.Printf("mode/spectrum occupancy: %s/%s\n", diag.Mode, diag.SpectrumOccupancy)
	fmt.Printf("fec rate: %s\n", diag.FECRate)
	fmt.Printf("snr: %.1f dB\n", diag.SNRdB)
	fmt.Printf("frames decoded: %d\n", diag.FramesDecoded)
	fmt.Printf("segment errors: %d %v\n", diag.SegmentErrors, diag.SegmentCRCErrors)
	fmt.Printf("decode duration: %.2f ms\n", diag.DecodeDurationMS)
}
