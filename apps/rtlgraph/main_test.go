//
// Copyright (c) 2025-2026 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"testing"

	"github.com/markkurossi/rtlgraph/viz"
)

func TestDefaultDirectives(t *testing.T) {
	configured := []viz.Directive{{Module: "Core", Depth: 0}}

	// Configured limits survive when -depth is not given: the
	// unlimited fallback must not make children of a depth-limited
	// module eligible again.
	directives := defaultDirectives(configured, -1, false)
	if len(directives) != 1 {
		t.Fatalf("got %d directives, expected 1", len(directives))
	}
	scope := viz.ChildScope(directives, "Inner",
		viz.RootScope(directives, "Core"))
	if scope.DoPorts() || scope.DoComponents() {
		t.Errorf("depth limit not in effect below Core: %s", scope)
	}

	// An explicit -depth always appends the fallback.
	directives = defaultDirectives(configured, 1, true)
	if len(directives) != 2 {
		t.Fatalf("got %d directives, expected 2", len(directives))
	}
	if !directives[1].Circuit || directives[1].Depth != 1 {
		t.Errorf("unexpected fallback directive %s", directives[1])
	}

	// Without configured scopes the fallback always applies.
	directives = defaultDirectives(nil, -1, false)
	if len(directives) != 1 {
		t.Fatalf("got %d directives, expected 1", len(directives))
	}
	if !directives[0].Circuit || directives[0].Depth != -1 {
		t.Errorf("unexpected fallback directive %s", directives[0])
	}
}
