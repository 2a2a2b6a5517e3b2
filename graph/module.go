//
// Copyright (c) 2025-2026 Markku Rossi
//
// All rights reserved.
//

package graph

import (
	"fmt"
	"io"
)

// Edge is a directed dataflow connection between two node terminal
// references. The endpoints are reference strings, not node
// identities, so dangling references are representable and render as
// edges to an unresolved label.
type Edge struct {
	Source string
	Sink   string
}

// Module is a container node owning an ordered collection of child
// nodes and directed edges. Modules nest recursively for sub-module
// instances.
type Module struct {
	base
	Children []Node
	Edges    []Edge
	seq      map[string]int
	names    map[string]bool
}

// NewModule creates a new module container node.
func NewModule(name, abs string) *Module {
	return &Module{
		base:  base{name: name, abs: abs},
		seq:   make(map[string]int),
		names: make(map[string]bool),
	}
}

// AddChild appends a node to the ordered child list and takes its
// name. Colliding names are both kept and both rendered; resolution
// order is governed by the name resolution table, not by the
// container.
func (m *Module) AddChild(n Node) {
	m.Children = append(m.Children, n)
	m.names[n.Name()] = true
}

// Reserve marks a name as taken without adding a node. Sequence never
// returns a reserved name.
func (m *Module) Reserve(name string) {
	m.names[name] = true
}

// Connect appends a directed edge from the source reference to the
// sink reference.
func (m *Module) Connect(sink, source string) {
	m.Edges = append(m.Edges, Edge{Source: source, Sink: sink})
}

// Sequence returns the next synthetic node name for the argument
// kind, unique and deterministic within this container. Names taken
// by declared or reserved elements are skipped.
func (m *Module) Sequence(kind string) string {
	for {
		name := fmt.Sprintf("%s%d", kind, m.seq[kind])
		m.seq[kind]++
		if !m.names[name] {
			m.names[name] = true
			return name
		}
	}
}

// Render implements the Node interface. Nested modules expand inside
// their own subgraph boundary.
func (m *Module) Render(out io.Writer, depth int) {
	indent(out, depth)
	fmt.Fprintf(out, "subgraph cluster_%s {\n", m.abs)
	indent(out, depth+1)
	fmt.Fprintf(out, "label=\"%s\";\n", m.name)
	m.renderBody(out, depth+1)
	indent(out, depth)
	fmt.Fprintf(out, "}\n")
}

func (m *Module) renderBody(out io.Writer, depth int) {
	for _, child := range m.Children {
		child.Render(out, depth)
	}
	for _, edge := range m.Edges {
		indent(out, depth)
		fmt.Fprintf(out, "%s -> %s;\n", edge.Source, edge.Sink)
	}
}

// Dot writes the whole graph as a Graphviz dot document rooted at
// this module.
func (m *Module) Dot(out io.Writer) {
	fmt.Fprintf(out, "digraph %s {\n", m.name)
	fmt.Fprintf(out, "  node\t[fontname=\"Helvetica\"];\n")
	m.renderBody(out, 1)
	fmt.Fprintf(out, "}\n")
}
