//
// Copyright (c) 2025-2026 Markku Rossi
//
// All rights reserved.
//

// Package graph implements the visualization graph: typed nodes for
// circuit elements, a hierarchical module container, and Graphviz
// dot rendering.
package graph

import (
	"fmt"
	"io"
	"strings"
)

var (
	_ Node = &Port{}
	_ Node = &Register{}
	_ Node = &Wire{}
	_ Node = &Memory{}
	_ Node = &MemoryPort{}
	_ Node = &BinaryOp{}
	_ Node = &UnaryOp{}
	_ Node = &OneParamOp{}
	_ Node = &TwoParamOp{}
	_ Node = &Mux{}
	_ Node = &ValidIf{}
	_ Node = &Literal{}
	_ Node = &Placeholder{}
	_ Node = &Module{}
)

// Node is a graph element. Each node renders itself as one dot
// record and exposes a stable reference string other nodes use to
// address it as an edge endpoint.
type Node interface {
	// Name returns the node's local name.
	Name() string

	// Abs returns the node's absolute name, qualified by the
	// ancestor instantiation path with underscores replacing
	// hierarchy separators. Absolute names are unique within the
	// whole graph.
	Abs() string

	// RHS returns the reference string used when the node appears as
	// an edge source.
	RHS() string

	// Render writes the node's dot record to out at the given
	// nesting depth.
	Render(out io.Writer, depth int)
}

type base struct {
	name string
	abs  string
}

func (n *base) Name() string {
	return n.name
}

func (n *base) Abs() string {
	return n.abs
}

func (n *base) RHS() string {
	return n.abs
}

func indent(out io.Writer, depth int) {
	fmt.Fprint(out, strings.Repeat("  ", depth))
}

// Port is a module port. It has no internal sub-terminals and serves
// both as source and sink.
type Port struct {
	base
}

// NewPort creates a new port node.
func NewPort(name, abs string) *Port {
	return &Port{
		base: base{name: name, abs: abs},
	}
}

// Render implements the Node interface.
func (n *Port) Render(out io.Writer, depth int) {
	indent(out, depth)
	fmt.Fprintf(out, "%s\t[shape=rect,label=\"%s\"];\n", n.abs, n.name)
}

// Register is a clocked register. Writes target the in terminal,
// reads target the node itself; the two are never unified.
type Register struct {
	base
}

// NewRegister creates a new register node.
func NewRegister(name, abs string) *Register {
	return &Register{
		base: base{name: name, abs: abs},
	}
}

// Sink returns the register's write terminal reference.
func (n *Register) Sink() string {
	return n.abs + ":in"
}

// Render implements the Node interface.
func (n *Register) Render(out io.Writer, depth int) {
	indent(out, depth)
	fmt.Fprintf(out, "%s\t[shape=record,label=\"{{<in>in}|%s}\"];\n",
		n.abs, n.name)
}

// Wire is a single named pass-through value: a wire or node
// declaration.
type Wire struct {
	base
}

// NewWire creates a new wire node.
func NewWire(name, abs string) *Wire {
	return &Wire{
		base: base{name: name, abs: abs},
	}
}

// Render implements the Node interface.
func (n *Wire) Render(out io.Writer, depth int) {
	indent(out, depth)
	fmt.Fprintf(out, "%s\t[label=\"%s\"];\n", n.abs, n.name)
}

// Memory is a memory with named read and write port sub-terminals,
// addressable independently.
type Memory struct {
	base
	ports []string
}

// NewMemory creates a new memory node with the argument port names.
func NewMemory(name, abs string, ports []string) *Memory {
	return &Memory{
		base:  base{name: name, abs: abs},
		ports: ports,
	}
}

// Ports returns the memory port names in declaration order.
func (n *Memory) Ports() []string {
	return n.ports
}

// Port returns the reference string of the named memory port.
func (n *Memory) Port(name string) string {
	return n.abs + ":" + name
}

// Render implements the Node interface.
func (n *Memory) Render(out io.Writer, depth int) {
	indent(out, depth)
	var terminals []string
	for _, p := range n.ports {
		terminals = append(terminals, fmt.Sprintf("<%s>%s", p, p))
	}
	fmt.Fprintf(out, "%s\t[shape=record,label=\"{%s|{%s}}\"];\n",
		n.abs, n.name, strings.Join(terminals, "|"))
}

// MemoryPort is a named port of a memory. It renders as part of its
// memory's record and only resolves references to the port terminal.
type MemoryPort struct {
	base
	mem *Memory
}

// NewMemoryPort creates a reference node for the named port of mem.
func NewMemoryPort(mem *Memory, name string) *MemoryPort {
	return &MemoryPort{
		base: base{name: name, abs: mem.Port(name)},
		mem:  mem,
	}
}

// RHS implements the Node interface.
func (n *MemoryPort) RHS() string {
	return n.mem.Port(n.name)
}

// Render implements the Node interface. The memory port is rendered
// by its owning memory record.
func (n *MemoryPort) Render(out io.Writer, depth int) {
}

// BinaryOp is a primitive operator with two inputs.
type BinaryOp struct {
	base
	op string
}

// NewBinaryOp creates a new binary operator node with the argument
// operator label.
func NewBinaryOp(name, abs, op string) *BinaryOp {
	return &BinaryOp{
		base: base{name: name, abs: abs},
		op:   op,
	}
}

// In1 returns the first input terminal reference.
func (n *BinaryOp) In1() string {
	return n.abs + ":in1"
}

// In2 returns the second input terminal reference.
func (n *BinaryOp) In2() string {
	return n.abs + ":in2"
}

// Render implements the Node interface.
func (n *BinaryOp) Render(out io.Writer, depth int) {
	indent(out, depth)
	fmt.Fprintf(out, "%s\t[shape=record,label=\"{{<in1>|<in2>}|%s}\"];\n",
		n.abs, n.op)
}

// UnaryOp is a primitive operator with one input.
type UnaryOp struct {
	base
	op string
}

// NewUnaryOp creates a new unary operator node with the argument
// operator label.
func NewUnaryOp(name, abs, op string) *UnaryOp {
	return &UnaryOp{
		base: base{name: name, abs: abs},
		op:   op,
	}
}

// In1 returns the input terminal reference.
func (n *UnaryOp) In1() string {
	return n.abs + ":in1"
}

// Render implements the Node interface.
func (n *UnaryOp) Render(out io.Writer, depth int) {
	indent(out, depth)
	fmt.Fprintf(out, "%s\t[shape=record,label=\"{{<in1>}|%s}\"];\n",
		n.abs, n.op)
}

// OneParamOp is a primitive operator with one data input and one
// literal parameter baked into the node label.
type OneParamOp struct {
	base
	op    string
	param int64
}

// NewOneParamOp creates a new one-parameter operator node.
func NewOneParamOp(name, abs, op string, param int64) *OneParamOp {
	return &OneParamOp{
		base:  base{name: name, abs: abs},
		op:    op,
		param: param,
	}
}

// In1 returns the input terminal reference.
func (n *OneParamOp) In1() string {
	return n.abs + ":in1"
}

// Render implements the Node interface.
func (n *OneParamOp) Render(out io.Writer, depth int) {
	indent(out, depth)
	fmt.Fprintf(out, "%s\t[shape=record,label=\"{{<in1>}|%s(%d)}\"];\n",
		n.abs, n.op, n.param)
}

// TwoParamOp is a primitive operator with one data input and two
// literal parameters baked into the node label.
type TwoParamOp struct {
	base
	op     string
	param1 int64
	param2 int64
}

// NewTwoParamOp creates a new two-parameter operator node.
func NewTwoParamOp(name, abs, op string, param1, param2 int64) *TwoParamOp {
	return &TwoParamOp{
		base:   base{name: name, abs: abs},
		op:     op,
		param1: param1,
		param2: param2,
	}
}

// In1 returns the input terminal reference.
func (n *TwoParamOp) In1() string {
	return n.abs + ":in1"
}

// Render implements the Node interface.
func (n *TwoParamOp) Render(out io.Writer, depth int) {
	indent(out, depth)
	fmt.Fprintf(out, "%s\t[shape=record,label=\"{{<in1>}|%s(%d, %d)}\"];\n",
		n.abs, n.op, n.param1, n.param2)
}

// Mux is a two-way multiplexer with select, in1 (true value), and
// in2 (false value) inputs.
type Mux struct {
	base
}

// NewMux creates a new multiplexer node.
func NewMux(name, abs string) *Mux {
	return &Mux{
		base: base{name: name, abs: abs},
	}
}

// Select returns the select input terminal reference.
func (n *Mux) Select() string {
	return n.abs + ":select"
}

// In1 returns the true-value input terminal reference.
func (n *Mux) In1() string {
	return n.abs + ":in1"
}

// In2 returns the false-value input terminal reference.
func (n *Mux) In2() string {
	return n.abs + ":in2"
}

// Render implements the Node interface.
func (n *Mux) Render(out io.Writer, depth int) {
	indent(out, depth)
	fmt.Fprintf(out,
		"%s\t[shape=record,label=\"{{<select>s|<in1>t|<in2>f}|mux}\"];\n",
		n.abs)
}

// ValidIf gates a value with a validity condition: select and in1
// inputs.
type ValidIf struct {
	base
}

// NewValidIf creates a new valid-if node.
func NewValidIf(name, abs string) *ValidIf {
	return &ValidIf{
		base: base{name: name, abs: abs},
	}
}

// Select returns the condition input terminal reference.
func (n *ValidIf) Select() string {
	return n.abs + ":select"
}

// In1 returns the gated-value input terminal reference.
func (n *ValidIf) In1() string {
	return n.abs + ":in1"
}

// Render implements the Node interface.
func (n *ValidIf) Render(out io.Writer, depth int) {
	indent(out, depth)
	fmt.Fprintf(out,
		"%s\t[shape=record,label=\"{{<select>s|<in1>v}|valid}\"];\n",
		n.abs)
}

// Literal is a constant value, unique per occurrence.
type Literal struct {
	base
	value string
}

// NewLiteral creates a new literal node with the argument value
// label.
func NewLiteral(name, abs, value string) *Literal {
	return &Literal{
		base:  base{name: name, abs: abs},
		value: value,
	}
}

// Render implements the Node interface.
func (n *Literal) Render(out io.Writer, depth int) {
	indent(out, depth)
	fmt.Fprintf(out, "%s\t[shape=plaintext,label=\"%s\"];\n", n.abs, n.value)
}

// Placeholder is an inert stand-in for an unrecognized primitive
// operator. It has no input terminals.
type Placeholder struct {
	base
}

// NewPlaceholder creates a new placeholder node.
func NewPlaceholder(name, abs string) *Placeholder {
	return &Placeholder{
		base: base{name: name, abs: abs},
	}
}

// Render implements the Node interface.
func (n *Placeholder) Render(out io.Writer, depth int) {
	indent(out, depth)
	fmt.Fprintf(out, "%s\t[shape=box,label=\"?\"];\n", n.abs)
}
