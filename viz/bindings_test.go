//
// Copyright (c) 2025-2026 Markku Rossi
//
// All rights reserved.
//

package viz

import (
	"testing"

	"github.com/markkurossi/rtlgraph/graph"
)

func TestBindings(t *testing.T) {
	b := NewBindings()

	if ref := b.Resolve("top.x", "fallback"); ref != "fallback" {
		t.Errorf("unresolved name: got %s, expected fallback", ref)
	}

	wire := graph.NewWire("x", "top_x")
	b.Declare("top.x", wire)
	if ref := b.Resolve("top.x", "fallback"); ref != "top_x" {
		t.Errorf("resolved name: got %s, expected top_x", ref)
	}

	// Redeclaration overwrites.
	reg := graph.NewRegister("x", "top_x2")
	b.Declare("top.x", reg)
	if ref := b.Resolve("top.x", "fallback"); ref != "top_x2" {
		t.Errorf("redeclared name: got %s, expected top_x2", ref)
	}

	node, ok := b.Node("top.x")
	if !ok {
		t.Fatalf("Node lookup failed")
	}
	if _, isReg := node.(*graph.Register); !isReg {
		t.Errorf("Node lookup returned stale binding")
	}
}
