//
// Copyright (c) 2025-2026 Markku Rossi
//
// All rights reserved.
//

package viz

import (
	"fmt"
	"io"
	"sort"

	"github.com/markkurossi/rtlgraph/graph"
	"github.com/markkurossi/tabulate"
)

// Stats holds statistics about a translated graph.
type Stats struct {
	Nodes   map[string]int
	Edges   int
	Modules int
}

// Collect walks the graph and counts nodes per kind, edges, and
// nested module containers.
func Collect(root *graph.Module) Stats {
	stats := Stats{
		Nodes: make(map[string]int),
	}
	stats.collect(root)
	return stats
}

func (s *Stats) collect(m *graph.Module) {
	s.Edges += len(m.Edges)
	for _, child := range m.Children {
		if sub, ok := child.(*graph.Module); ok {
			s.Modules++
			s.collect(sub)
			continue
		}
		s.Nodes[kind(child)]++
	}
}

func kind(n graph.Node) string {
	switch n.(type) {
	case *graph.Port:
		return "port"
	case *graph.Register:
		return "register"
	case *graph.Wire:
		return "wire"
	case *graph.Memory:
		return "memory"
	case *graph.BinaryOp, *graph.UnaryOp, *graph.OneParamOp,
		*graph.TwoParamOp:
		return "operator"
	case *graph.Mux:
		return "mux"
	case *graph.ValidIf:
		return "valid"
	case *graph.Literal:
		return "literal"
	case *graph.Placeholder:
		return "placeholder"
	default:
		return "unknown"
	}
}

// NumNodes returns the total leaf node count.
func (s Stats) NumNodes() int {
	var sum int
	for _, count := range s.Nodes {
		sum += count
	}
	return sum
}

// Print renders the statistics report.
func (s Stats) Print(out io.Writer) {
	tab := tabulate.New(tabulate.UnicodeLight)
	tab.Header("Kind").SetAlign(tabulate.ML)
	tab.Header("Count").SetAlign(tabulate.MR)

	kinds := make([]string, 0, len(s.Nodes))
	for k := range s.Nodes {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)

	for _, k := range kinds {
		row := tab.Row()
		row.Column(k)
		row.Column(fmt.Sprintf("%d", s.Nodes[k]))
	}

	row := tab.Row()
	row.Column("nodes").SetFormat(tabulate.FmtBold)
	row.Column(fmt.Sprintf("%d", s.NumNodes())).SetFormat(tabulate.FmtBold)

	row = tab.Row()
	row.Column("edges").SetFormat(tabulate.FmtBold)
	row.Column(fmt.Sprintf("%d", s.Edges)).SetFormat(tabulate.FmtBold)

	row = tab.Row()
	row.Column("modules").SetFormat(tabulate.FmtBold)
	row.Column(fmt.Sprintf("%d", s.Modules)).SetFormat(tabulate.FmtBold)

	tab.Print(out)
}
