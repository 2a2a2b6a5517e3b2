//
// Copyright (c) 2025-2026 Markku Rossi
//
// All rights reserved.
//

package ir

import (
	"fmt"
)

// PrimOp specifies a primitive operator.
type PrimOp byte

// Primitive operators.
const (
	OpAdd PrimOp = iota
	OpSub
	OpMul
	OpDiv
	OpRem
	OpLt
	OpLeq
	OpGt
	OpGeq
	OpEq
	OpNeq
	OpPad
	OpAsUInt
	OpAsSInt
	OpShl
	OpShr
	OpDshl
	OpDshr
	OpCvt
	OpNeg
	OpNot
	OpAnd
	OpOr
	OpXor
	OpAndr
	OpOrr
	OpXorr
	OpCat
	OpBits
	OpHead
	OpTail
	OpUnknown
)

// Shape specifies the node shape a primitive operator expands to.
type Shape byte

// Operator node shapes.
const (
	ShapeBinary Shape = iota
	ShapeUnary
	ShapeOneParam
	ShapeTwoParam
	ShapeUnknown
)

type primOpInfo struct {
	name  string
	label string
	shape Shape
}

var primOps = map[PrimOp]primOpInfo{
	OpAdd:    {"add", "add", ShapeBinary},
	OpSub:    {"sub", "sub", ShapeBinary},
	OpMul:    {"mul", "mul", ShapeBinary},
	OpDiv:    {"div", "div", ShapeBinary},
	OpRem:    {"rem", "rem", ShapeBinary},
	OpLt:     {"lt", "lt", ShapeBinary},
	OpLeq:    {"leq", "lte", ShapeBinary},
	OpGt:     {"gt", "gt", ShapeBinary},
	OpGeq:    {"geq", "gte", ShapeBinary},
	OpEq:     {"eq", "eq", ShapeBinary},
	OpNeq:    {"neq", "neq", ShapeBinary},
	OpPad:    {"pad", "pad", ShapeOneParam},
	OpAsUInt: {"asUInt", "asUInt", ShapeUnary},
	OpAsSInt: {"asSInt", "asSInt", ShapeUnary},
	OpShl:    {"shl", "shl", ShapeOneParam},
	OpShr:    {"shr", "shr", ShapeOneParam},
	OpDshl:   {"dshl", "dshl", ShapeBinary},
	OpDshr:   {"dshr", "dshr", ShapeBinary},
	OpCvt:    {"cvt", "cvt", ShapeUnary},
	OpNeg:    {"neg", "neg", ShapeUnary},
	OpNot:    {"not", "not", ShapeUnary},
	OpAnd:    {"and", "and", ShapeBinary},
	OpOr:     {"or", "or", ShapeBinary},
	OpXor:    {"xor", "xor", ShapeBinary},
	OpAndr:   {"andr", "andr", ShapeUnary},
	OpOrr:    {"orr", "orr", ShapeUnary},
	OpXorr:   {"xorr", "xorr", ShapeUnary},
	OpCat:    {"cat", "cat", ShapeBinary},
	OpBits:   {"bits", "bits", ShapeTwoParam},
	OpHead:   {"head", "head", ShapeOneParam},
	OpTail:   {"tail", "tail", ShapeOneParam},
}

var primOpNames map[string]PrimOp

func init() {
	primOpNames = make(map[string]PrimOp)
	for op, info := range primOps {
		primOpNames[info.name] = op
	}
}

// ParsePrimOp maps an operator name to its primitive operator. It
// returns false for names outside the fixed operator set.
func ParsePrimOp(name string) (PrimOp, bool) {
	op, ok := primOpNames[name]
	return op, ok
}

func (op PrimOp) String() string {
	info, ok := primOps[op]
	if ok {
		return info.name
	}
	return fmt.Sprintf("{PrimOp %d}", op)
}

// Label returns the short symbolic label rendered into the operator's
// graph node.
func (op PrimOp) Label() string {
	info, ok := primOps[op]
	if ok {
		return info.label
	}
	return "?"
}

// Shape returns the node shape the operator expands to.
func (op PrimOp) Shape() Shape {
	info, ok := primOps[op]
	if ok {
		return info.shape
	}
	return ShapeUnknown
}
