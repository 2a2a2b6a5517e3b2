//
// Copyright (c) 2025-2026 Markku Rossi
//
// All rights reserved.
//

package viz

import (
	"github.com/markkurossi/rtlgraph/graph"
)

// Bindings is the name resolution table: a mapping from fully
// qualified circuit element names to the graph node that currently
// drives them. A name is declared once per declaring statement and
// looked up at each reference site; redeclaration overwrites.
type Bindings map[string]graph.Node

// NewBindings creates an empty name resolution table.
func NewBindings() Bindings {
	return make(Bindings)
}

// Declare records node as the driver of the fully qualified name.
func (b Bindings) Declare(name string, node graph.Node) {
	b[name] = node
}

// Node returns the node bound to the fully qualified name.
func (b Bindings) Node(name string) (graph.Node, bool) {
	node, ok := b[name]
	return node, ok
}

// Resolve returns the reference string of the node bound to the
// fully qualified name. An unresolved name degrades to the fallback
// reference instead of failing.
func (b Bindings) Resolve(name, fallback string) string {
	node, ok := b[name]
	if !ok {
		return fallback
	}
	return node.RHS()
}
