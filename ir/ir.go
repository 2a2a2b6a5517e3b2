//
// Copyright (c) 2025-2026 Markku Rossi
//
// All rights reserved.
//

// Package ir defines the elaborated circuit intermediate
// representation consumed by the graph translator: a tree of modules
// with typed ports and bodies made of statements and expressions.
package ir

import (
	"fmt"

	"github.com/markkurossi/rtlgraph/utils"
)

// Circuit is an elaborated circuit: an ordered collection of modules
// and the name of the designated main module.
type Circuit struct {
	Name    string
	Modules []*Module
}

// Module returns the named module, or nil if the circuit does not
// define it.
func (c *Circuit) Module(name string) *Module {
	for _, m := range c.Modules {
		if m.Name == name {
			return m
		}
	}
	return nil
}

func (c *Circuit) String() string {
	return fmt.Sprintf("circuit %s: #modules=%d", c.Name, len(c.Modules))
}

// Module is a named circuit unit with typed ports and an internal
// body of statements. External modules have ports only and a nil
// body.
type Module struct {
	Loc   utils.Point
	Name  string
	Ext   bool
	Ports []*Port
	Body  Stmt
}

// Location implements the utils.Locator interface.
func (m *Module) Location() utils.Point {
	return m.Loc
}

func (m *Module) String() string {
	if m.Ext {
		return fmt.Sprintf("extmodule %s", m.Name)
	}
	return fmt.Sprintf("module %s", m.Name)
}

// Direction specifies a port direction.
type Direction byte

// Port directions.
const (
	Input Direction = iota
	Output
)

func (d Direction) String() string {
	switch d {
	case Input:
		return "input"
	case Output:
		return "output"
	default:
		return fmt.Sprintf("{Direction %d}", d)
	}
}

// Port is a typed module port.
type Port struct {
	Loc  utils.Point
	Name string
	Dir  Direction
	Type Type
}

// Location implements the utils.Locator interface.
func (p *Port) Location() utils.Point {
	return p.Loc
}

func (p *Port) String() string {
	return fmt.Sprintf("%s %s : %s", p.Dir, p.Name, p.Type)
}
