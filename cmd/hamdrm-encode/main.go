/*
NAME
  main.go

DESCRIPTION
  hamdrm-encode is a bare bones program for rendering a payload file to a
  HAMDRM (EasyPal Digital SSTV) WAV waveform.

AUTHOR
  Saxon Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package main implements hamdrm-encode, a command line HAMDRM encoder.
package main

import (
	"flag"
	"io"
	"os"

	"github.com/easypal-go/hamdrm/config"
	"github.com/easypal-go/hamdrm/hamdrm"
	"github.com/easypal-go/hamdrm/logging"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logging related constants.
const (
	logPath      = "/var/log/hamdrm-encode/hamdrm-encode.log"
	logMaxSize   = 100 // MB
	logMaxBackup = 5
	logMaxAge    = 28 // days
	logVerbosity = logging.Info
)

func main() {
	inPtr := flag.String("in", "", "Path to the payload file to encode.")
	outPtr := flag.String("out", "out.wav", "Path to write the encoded WAV file to.")
	mimePtr := flag.String("mime", "", "MIME type of the payload; defaults to the profile default if empty.")
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

	payload, err := os.ReadFile(*inPtr)
	if err != nil {
		l.Log(logging.Fatal, "could not read input file", "error", err)
	}

	cfg := config.Default()
	if err := cfg.Validate(); err != nil {
		l.Log(logging.Fatal, "invalid configuration", "error", err)
	}

	enc := hamdrm.NewEncoder(cfg, l)
	wavBytes, err := enc.Encode(payload, *mimePtr)
	if err != nil {
		l.Log(logging.Fatal, "encode failed", "error", err)
	}

	if err := os.WriteFile(*outPtr, wavBytes, 0644); err != nil {
		l.Log(logging.Fatal, "could not write output file", "error", err)
	}
	l.Log(logging.Info, "encoded payload to WAV", "in", *inPtr, "out", *outPtr, "bytes", len(wavBytes))
}
