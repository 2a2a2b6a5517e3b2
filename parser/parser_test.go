//
// Copyright (c) 2025-2026 Markku Rossi
//
// All rights reserved.
//

package parser

import (
	"io"
	"strings"
	"testing"

	"github.com/markkurossi/rtlgraph/ir"
	"github.com/markkurossi/rtlgraph/utils"
)

func parse(t *testing.T, data string) *ir.Circuit {
	t.Helper()
	p := NewParser("{data}", utils.NewLogger(io.Discard),
		strings.NewReader(data))
	circ, err := p.Parse()
	if err != nil {
		t.Fatalf("Parse failed: %s", err)
	}
	return circ
}

var sample = `
; full-featured sample
circuit Top :
  module Top :
    input a : UInt<8>
    input sel : UInt<1>
    output c : UInt<8>
    wire w : UInt<8>
    reg r : UInt<8>
    mem m : UInt<8>[16] (read rd) (write wr)
    node t = add(a, w)
    inst sub of Sub
    m.wr <= a
    w <= mux(sel, a, m.rd)
    r <= validif(sel, t)
    c <= bits(r, 7, 0)
  extmodule Sub :
    input p : Clock
`

func TestParse(t *testing.T) {
	circ := parse(t, sample)
	if circ.Name != "Top" {
		t.Errorf("circuit name: got %s", circ.Name)
	}
	if len(circ.Modules) != 2 {
		t.Fatalf("got %d modules, expected 2", len(circ.Modules))
	}

	top := circ.Module("Top")
	if top == nil {
		t.Fatalf("module Top not found")
	}
	if len(top.Ports) != 3 {
		t.Errorf("got %d ports, expected 3", len(top.Ports))
	}
	if top.Ports[0].Dir != ir.Input || top.Ports[2].Dir != ir.Output {
		t.Errorf("port directions: %v, %v",
			top.Ports[0].Dir, top.Ports[2].Dir)
	}
	if top.Ports[0].Type.Kind != ir.KindUInt ||
		top.Ports[0].Type.Width != 8 {
		t.Errorf("port type: got %s", top.Ports[0].Type)
	}

	body, ok := top.Body.(*ir.Block)
	if !ok {
		t.Fatalf("module body is not a block")
	}
	if len(body.Stmts) != 9 {
		t.Fatalf("got %d statements, expected 9", len(body.Stmts))
	}

	mem, ok := body.Stmts[2].(*ir.DefMemory)
	if !ok {
		t.Fatalf("statement 2 is not a memory: %s", body.Stmts[2])
	}
	if mem.Depth != 16 || len(mem.Readers) != 1 || len(mem.Writers) != 1 {
		t.Errorf("memory: %s", mem)
	}

	node, ok := body.Stmts[3].(*ir.DefNode)
	if !ok {
		t.Fatalf("statement 3 is not a node: %s", body.Stmts[3])
	}
	prim, ok := node.Value.(*ir.Prim)
	if !ok || prim.Op != ir.OpAdd || len(prim.Args) != 2 {
		t.Errorf("node value: %s", node.Value)
	}

	inst, ok := body.Stmts[4].(*ir.DefInstance)
	if !ok || inst.Name != "sub" || inst.Module != "Sub" {
		t.Errorf("instance: %s", body.Stmts[4])
	}

	conn, ok := body.Stmts[5].(*ir.Connect)
	if !ok {
		t.Fatalf("statement 5 is not a connection: %s", body.Stmts[5])
	}
	field, ok := conn.Sink.(*ir.SubField)
	if !ok || field.Name != "wr" {
		t.Errorf("connection sink: %s", conn.Sink)
	}

	conn, ok = body.Stmts[6].(*ir.Connect)
	if !ok {
		t.Fatalf("statement 6 is not a connection: %s", body.Stmts[6])
	}
	if _, ok = conn.Value.(*ir.Mux); !ok {
		t.Errorf("connection value is not a mux: %s", conn.Value)
	}

	conn, ok = body.Stmts[8].(*ir.Connect)
	if !ok {
		t.Fatalf("statement 8 is not a connection: %s", body.Stmts[8])
	}
	bits, ok := conn.Value.(*ir.Prim)
	if !ok || bits.Op != ir.OpBits {
		t.Fatalf("connection value is not bits: %s", conn.Value)
	}
	if len(bits.Args) != 1 || len(bits.Params) != 2 ||
		bits.Params[0] != 7 || bits.Params[1] != 0 {
		t.Errorf("bits arguments: %s", conn.Value)
	}

	sub := circ.Module("Sub")
	if sub == nil || !sub.Ext {
		t.Fatalf("external module Sub not parsed")
	}
	if sub.Body != nil {
		t.Errorf("external module has a body")
	}
	if len(sub.Ports) != 1 || sub.Ports[0].Type.Kind != ir.KindClock {
		t.Errorf("external module ports: %v", sub.Ports)
	}
}

func TestParseLiterals(t *testing.T) {
	circ := parse(t, `
circuit Top :
  module Top :
    node x = UInt<8>(42)
    node y = SInt<4>(-3)
`)
	body := circ.Module("Top").Body.(*ir.Block)

	x := body.Stmts[0].(*ir.DefNode).Value
	lit, ok := x.(*ir.Literal)
	if !ok || lit.Type.Kind != ir.KindUInt || lit.Value != 42 {
		t.Errorf("unsigned literal: %s", x)
	}

	y := body.Stmts[1].(*ir.DefNode).Value
	lit, ok = y.(*ir.Literal)
	if !ok || lit.Type.Kind != ir.KindSInt || lit.Value != -3 {
		t.Errorf("signed literal: %s", y)
	}
}

func TestParseSubIndex(t *testing.T) {
	circ := parse(t, `
circuit Top :
  module Top :
    c <= v[3]
`)
	body := circ.Module("Top").Body.(*ir.Block)
	conn := body.Stmts[0].(*ir.Connect)
	idx, ok := conn.Value.(*ir.SubIndex)
	if !ok || idx.Index != 3 {
		t.Errorf("sub-index: %s", conn.Value)
	}
}

func TestParseUnknownOperator(t *testing.T) {
	circ := parse(t, `
circuit Top :
  module Top :
    node x = frobnicate(a)
`)
	body := circ.Module("Top").Body.(*ir.Block)
	prim, ok := body.Stmts[0].(*ir.DefNode).Value.(*ir.Prim)
	if !ok {
		t.Fatalf("unknown operator not parsed as primitive")
	}
	if prim.Op != ir.OpUnknown {
		t.Errorf("unknown operator mapped to %s", prim.Op)
	}
}

func TestParseSkipsMalformed(t *testing.T) {
	// A malformed statement is skipped with a diagnostic; the rest
	// of the module still parses.
	circ := parse(t, `
circuit Top :
  module Top :
    input a : UInt<8>
    output c : UInt<8>
    )))
    c <= a
`)
	body := circ.Module("Top").Body.(*ir.Block)
	if len(body.Stmts) != 1 {
		t.Fatalf("got %d statements, expected 1", len(body.Stmts))
	}
	if _, ok := body.Stmts[0].(*ir.Connect); !ok {
		t.Errorf("surviving statement is not a connection")
	}
}

func TestParseErrors(t *testing.T) {
	tests := []string{
		"",
		"module Top :\n",
		"circuit Top\n",
		"circuit Top :\n  widget Top :\n",
	}
	for _, data := range tests {
		p := NewParser("{data}", utils.NewLogger(io.Discard),
			strings.NewReader(data))
		if _, err := p.Parse(); err == nil {
			t.Errorf("parse succeeded for %q", data)
		}
	}
}
