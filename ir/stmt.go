//
// Copyright (c) 2025-2026 Markku Rossi
//
// All rights reserved.
//

package ir

import (
	"fmt"
	"strings"

	"github.com/markkurossi/rtlgraph/utils"
)

var (
	_ Stmt = &Block{}
	_ Stmt = &DefWire{}
	_ Stmt = &DefRegister{}
	_ Stmt = &DefMemory{}
	_ Stmt = &DefNode{}
	_ Stmt = &DefInstance{}
	_ Stmt = &Connect{}
)

// Stmt is a statement in a module body.
type Stmt interface {
	String() string
	Location() utils.Point
}

// Block is an ordered sequence of statements.
type Block struct {
	Loc   utils.Point
	Stmts []Stmt
}

// Location implements the utils.Locator interface.
func (s *Block) Location() utils.Point {
	return s.Loc
}

func (s *Block) String() string {
	return fmt.Sprintf("{#stmts=%d}", len(s.Stmts))
}

// Add appends a statement to the block.
func (s *Block) Add(stmt Stmt) {
	s.Stmts = append(s.Stmts, stmt)
}

// DefWire declares a wire.
type DefWire struct {
	Loc  utils.Point
	Name string
	Type Type
}

// Location implements the utils.Locator interface.
func (s *DefWire) Location() utils.Point {
	return s.Loc
}

func (s *DefWire) String() string {
	return fmt.Sprintf("wire %s : %s", s.Name, s.Type)
}

// DefRegister declares a clocked register.
type DefRegister struct {
	Loc  utils.Point
	Name string
	Type Type
}

// Location implements the utils.Locator interface.
func (s *DefRegister) Location() utils.Point {
	return s.Loc
}

func (s *DefRegister) String() string {
	return fmt.Sprintf("reg %s : %s", s.Name, s.Type)
}

// DefMemory declares a memory with named read and write ports.
type DefMemory struct {
	Loc     utils.Point
	Name    string
	Type    Type
	Depth   int64
	Readers []string
	Writers []string
}

// Location implements the utils.Locator interface.
func (s *DefMemory) Location() utils.Point {
	return s.Loc
}

func (s *DefMemory) String() string {
	return fmt.Sprintf("mem %s : %s[%d] (read %s) (write %s)",
		s.Name, s.Type, s.Depth,
		strings.Join(s.Readers, ", "), strings.Join(s.Writers, ", "))
}

// Ports returns the memory port names, readers first, in declaration
// order.
func (s *DefMemory) Ports() []string {
	result := make([]string, 0, len(s.Readers)+len(s.Writers))
	result = append(result, s.Readers...)
	result = append(result, s.Writers...)
	return result
}

// DefNode declares a named pass-through value.
type DefNode struct {
	Loc   utils.Point
	Name  string
	Value Expr
}

// Location implements the utils.Locator interface.
func (s *DefNode) Location() utils.Point {
	return s.Loc
}

func (s *DefNode) String() string {
	return fmt.Sprintf("node %s = %s", s.Name, s.Value)
}

// DefInstance instantiates a sub-module.
type DefInstance struct {
	Loc    utils.Point
	Name   string
	Module string
}

// Location implements the utils.Locator interface.
func (s *DefInstance) Location() utils.Point {
	return s.Loc
}

func (s *DefInstance) String() string {
	return fmt.Sprintf("inst %s of %s", s.Name, s.Module)
}

// Connect is a point-to-point connection driving the sink expression
// from the value expression.
type Connect struct {
	Loc   utils.Point
	Sink  Expr
	Value Expr
}

// Location implements the utils.Locator interface.
func (s *Connect) Location() utils.Point {
	return s.Loc
}

func (s *Connect) String() string {
	return fmt.Sprintf("%s <= %s", s.Sink, s.Value)
}
