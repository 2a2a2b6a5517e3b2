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
	_ Expr = &Ref{}
	_ Expr = &SubField{}
	_ Expr = &SubIndex{}
	_ Expr = &Mux{}
	_ Expr = &ValidIf{}
	_ Expr = &Prim{}
	_ Expr = &Literal{}
)

// Expr is an expression in a module body.
type Expr interface {
	String() string
	Location() utils.Point
}

// Ref is a reference to a named circuit element.
type Ref struct {
	Loc  utils.Point
	Name string
}

// Location implements the utils.Locator interface.
func (e *Ref) Location() utils.Point {
	return e.Loc
}

func (e *Ref) String() string {
	return e.Name
}

// SubField accesses a named sub-element, for example a memory port.
type SubField struct {
	Loc  utils.Point
	Expr Expr
	Name string
}

// Location implements the utils.Locator interface.
func (e *SubField) Location() utils.Point {
	return e.Loc
}

func (e *SubField) String() string {
	return fmt.Sprintf("%s.%s", e.Expr, e.Name)
}

// SubIndex accesses a constant vector element.
type SubIndex struct {
	Loc   utils.Point
	Expr  Expr
	Index int64
}

// Location implements the utils.Locator interface.
func (e *SubIndex) Location() utils.Point {
	return e.Loc
}

func (e *SubIndex) String() string {
	return fmt.Sprintf("%s[%d]", e.Expr, e.Index)
}

// Mux is a two-way conditional selection.
type Mux struct {
	Loc   utils.Point
	Cond  Expr
	True  Expr
	False Expr
}

// Location implements the utils.Locator interface.
func (e *Mux) Location() utils.Point {
	return e.Loc
}

func (e *Mux) String() string {
	return fmt.Sprintf("mux(%s, %s, %s)", e.Cond, e.True, e.False)
}

// ValidIf gates a value with a validity condition.
type ValidIf struct {
	Loc   utils.Point
	Cond  Expr
	Value Expr
}

// Location implements the utils.Locator interface.
func (e *ValidIf) Location() utils.Point {
	return e.Loc
}

func (e *ValidIf) String() string {
	return fmt.Sprintf("validif(%s, %s)", e.Cond, e.Value)
}

// Prim applies a primitive operator to argument expressions and
// literal integer parameters.
type Prim struct {
	Loc    utils.Point
	Op     PrimOp
	Args   []Expr
	Params []int64
}

// Location implements the utils.Locator interface.
func (e *Prim) Location() utils.Point {
	return e.Loc
}

func (e *Prim) String() string {
	var parts []string
	for _, arg := range e.Args {
		parts = append(parts, arg.String())
	}
	for _, param := range e.Params {
		parts = append(parts, fmt.Sprintf("%d", param))
	}
	return fmt.Sprintf("%s(%s)", e.Op, strings.Join(parts, ", "))
}

// Literal is a constant value.
type Literal struct {
	Loc   utils.Point
	Type  Type
	Value int64
}

// Location implements the utils.Locator interface.
func (e *Literal) Location() utils.Point {
	return e.Loc
}

func (e *Literal) String() string {
	return fmt.Sprintf("%s(%d)", e.Type, e.Value)
}
