//
// Copyright (c) 2025-2026 Markku Rossi
//
// All rights reserved.
//

package utils

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// Logger implements translator logging facility. It counts the
// warnings it emits so drivers can report how cleanly an input
// translated.
type Logger struct {
	out      io.Writer
	warnings int
}

// NewLogger creates a new logger outputting to the argument io.Writer.
func NewLogger(out io.Writer) *Logger {
	return &Logger{
		out: out,
	}
}

// Errorf logs an error message.
func (l *Logger) Errorf(loc Point, format string, a ...interface{}) error {
	msg := fmt.Sprintf(format, a...)
	if len(msg) > 0 && msg[len(msg)-1] != '\n' {
		msg += "\n"
	}
	if loc.Undefined() {
		fmt.Fprintf(l.out, "%s: %s", loc.Source, msg)
	} else {
		fmt.Fprintf(l.out, "%s: %s", loc, msg)
	}

	idx := strings.IndexRune(msg, '\n')
	if idx > 0 {
		msg = msg[:idx]
	}
	return errors.New(msg)
}

// Warningf logs a warning message.
func (l *Logger) Warningf(loc Point, format string, a ...interface{}) {
	l.warnings++
	msg := fmt.Sprintf(format, a...)
	if len(msg) > 0 && msg[len(msg)-1] != '\n' {
		msg += "\n"
	}
	if loc.Undefined() {
		fmt.Fprintf(l.out, "%s: warning: %s", loc.Source, msg)
	} else {
		fmt.Fprintf(l.out, "%s: warning: %s", loc, msg)
	}
}

// Warnings returns the number of warnings logged so far.
func (l *Logger) Warnings() int {
	return l.warnings
}
