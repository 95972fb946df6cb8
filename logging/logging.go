/*
NAME
  logging.go

DESCRIPTION
  logging.go defines the logging interface used throughout the hamdrm
  codec so that callers can plumb in whatever logging backend they like.

AUTHOR
  Saxon Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package logging provides the minimal logging interface that the hamdrm
// encoder and decoder accept, plus a no-op implementation used when the
// caller doesn't supply one.
package logging

import (
	"fmt"
	"io"
	"os"
	"time"
)

// Log levels, lowest to highest severity.
const (
	Debug int8 = iota
	Info
	Warning
	Error
	Fatal
)

var levelName = map[int8]string{
	Debug:   "DEBUG",
	Info:    "INFO",
	Warning: "WARNING",
	Error:   "ERROR",
	Fatal:   "FATAL",
}

// Logger is implemented by any logging backend the caller wishes to plumb
// into the encoder/decoder. It mirrors the shape used elsewhere in the
// AusOcean codebase so that host applications can reuse an existing
// implementation. params is a flat key/value list (e.g.
// "error", err, "frames", n), not a printf argument list: message is
// never formatted against params, only logged alongside them.
type Logger interface {
	SetLevel(level int8)
	Log(level int8, message string, params ...interface{})
}

// discard is a Logger that drops everything; it is used when the caller
// does not supply one.
type discard struct{}

func (discard) SetLevel(int8)                    {}
func (discard) Log(int8, string, ...interface{}) {}

// Discard is the default no-op Logger.
var Discard Logger = discard{}

// writerLogger is a Logger that formats each message with a timestamp and
// level tag and writes it to out, dropping anything below the configured
// level.
type writerLogger struct {
	out   io.Writer
	level int8
}

// New returns a Logger that writes timestamped, levelled messages to out,
// suppressing anything below level.
func New(level int8, out io.Writer) Logger {
	if out == nil {
		out = os.Stderr
	}
	return &writerLogger{out: out, level: level}
}

func (l *writerLogger) SetLevel(level int8) { l.level = level }

func (l *writerLogger) Log(level int8, message string, params ...interface{}) {
	if level < l.level {
		return
	}
	ts := time.Now().Format(time.RFC3339)
	fmt.Fprintf(l.out, "%s [%s] %s", ts, levelName[level], message)
	for i := 0; i+1 < len(params); i += 2 {
		fmt.Fprintf(l.out, " %v=%v", params[i], params[i+1])
	}
	fmt.Fprintln(l.out)
	if level == Fatal {
		os.Exit(1)
	}
}
