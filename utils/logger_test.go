//
// Copyright (c) 2025-2026 Markku Rossi
//
// All rights reserved.
//

package utils

import (
	"strings"
	"testing"
)

func TestLoggerWarnings(t *testing.T) {
	var sb strings.Builder
	logger := NewLogger(&sb)

	loc := Point{Source: "test", Line: 1, Col: 0}
	logger.Warningf(loc, "first")
	logger.Warningf(loc, "second")

	if logger.Warnings() != 2 {
		t.Errorf("got %d warnings, expected 2", logger.Warnings())
	}
	if !strings.Contains(sb.String(), "test:1:0: warning: first") {
		t.Errorf("unexpected output: %q", sb.String())
	}
}

func TestLoggerErrorf(t *testing.T) {
	var sb strings.Builder
	logger := NewLogger(&sb)

	err := logger.Errorf(Point{Source: "test", Line: 2, Col: 4}, "bad input")
	if err == nil || err.Error() != "bad input" {
		t.Errorf("unexpected error: %v", err)
	}
	if logger.Warnings() != 0 {
		t.Errorf("error counted as warning")
	}
	if !strings.Contains(sb.String(), "test:2:4: bad input") {
		t.Errorf("unexpected output: %q", sb.String())
	}
}
