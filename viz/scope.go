//
// Copyright (c) 2025-2026 Markku Rossi
//
// All rights reserved.
//

package viz

import (
	"fmt"
)

// Directive selects the rendering depth for a named module or for
// the whole circuit. Directive order is significant: the first match
// wins.
type Directive struct {
	// Module names the target module. It is empty for a
	// whole-circuit directive.
	Module string

	// Circuit marks a directive targeting the whole circuit.
	Circuit bool

	// Depth is the maximum descent depth. Negative means unlimited.
	Depth int
}

func (d Directive) String() string {
	if d.Circuit {
		return fmt.Sprintf("circuit depth=%d", d.Depth)
	}
	return fmt.Sprintf("module %s depth=%d", d.Module, d.Depth)
}

// Scope carries the remaining descent depth and visibility at one
// hierarchy level.
type Scope struct {
	Elapsed int
	Max     int
}

func (s Scope) String() string {
	return fmt.Sprintf("scope %d/%d", s.Elapsed, s.Max)
}

// DoPorts reports whether module ports are rendered at this level.
func (s Scope) DoPorts() bool {
	return s.Max < 0 || s.Elapsed <= s.Max
}

// DoComponents reports whether module internals beyond ports are
// rendered at this level.
func (s Scope) DoComponents() bool {
	return s.Max < 0 || s.Elapsed < s.Max
}

// Descend returns the scope one hierarchy level deeper.
func (s Scope) Descend() Scope {
	return Scope{
		Elapsed: s.Elapsed + 1,
		Max:     s.Max,
	}
}

// RootScope computes the scope of the top-level translation target.
func RootScope(directives []Directive, module string) Scope {
	for _, d := range directives {
		if d.Module == module || d.Circuit {
			return Scope{Max: d.Depth}
		}
	}
	return Scope{Max: -1}
}

// ChildScope computes the scope of a sub-module instantiation. A
// directive naming the instantiated module always resets the scope; a
// whole-circuit directive is eligible only while the parent policy
// still renders ports. Without a matching directive the parent scope
// is advanced one level.
func ChildScope(directives []Directive, module string, parent Scope) Scope {
	for _, d := range directives {
		if d.Module == module || (d.Circuit && parent.DoPorts()) {
			return Scope{Max: d.Depth}
		}
	}
	return parent.Descend()
}
