//
// Copyright (c) 2025-2026 Markku Rossi
//
// All rights reserved.
//

// Package viz implements the recursive circuit-to-graph translation:
// it walks one module's statements and expressions, creates graph
// nodes, resolves references through the name resolution table, and
// recurses into sub-module instantiations with a derived scope.
package viz

import (
	"fmt"
	"os"
	"strings"

	"github.com/markkurossi/rtlgraph/graph"
	"github.com/markkurossi/rtlgraph/ir"
	"github.com/markkurossi/rtlgraph/utils"
)

// Translator converts an elaborated circuit into a visualization
// graph. A translator is built fresh per invocation; the name
// resolution table lives in the translator and is discarded with it.
type Translator struct {
	params     *utils.Params
	logger     *utils.Logger
	circ       *ir.Circuit
	directives []Directive
	bindings   Bindings
}

// NewTranslator creates a new translator for the argument circuit
// and scoping directives.
func NewTranslator(circ *ir.Circuit, directives []Directive,
	params *utils.Params, logger *utils.Logger) *Translator {
	return &Translator{
		params:     params,
		logger:     logger,
		circ:       circ,
		directives: directives,
		bindings:   NewBindings(),
	}
}

// Translate translates the named top module into a graph. The only
// hard failure is a top module missing from the circuit; everything
// else degrades to placeholder labels.
func (t *Translator) Translate(top string) (*graph.Module, error) {
	if len(top) == 0 {
		top = t.circ.Name
	}
	module := t.circ.Module(top)
	if module == nil {
		return nil, fmt.Errorf("module %s not found", top)
	}
	root := graph.NewModule(top, top)
	err := t.processModule(module, root, "", RootScope(t.directives, top))
	if err != nil {
		return nil, err
	}
	return root, nil
}

func (t *Translator) processModule(m *ir.Module, container *graph.Module,
	prefix string, scope Scope) error {

	if scope.DoPorts() {
		for _, p := range m.Ports {
			node := graph.NewPort(p.Name, absName(prefix, p.Name))
			t.bindings.Declare(qualified(prefix, p.Name), node)
			container.AddChild(node)
		}
	}
	if m.Body == nil {
		return nil
	}
	t.reserveNames(m.Body, container)
	return t.processStmt(m.Body, container, prefix, scope)
}

// reserveNames records the declared names of a module body in the
// container so synthetic node names cannot collide with them,
// regardless of declaration order.
func (t *Translator) reserveNames(stmt ir.Stmt, container *graph.Module) {
	switch s := stmt.(type) {
	case *ir.Block:
		for _, sub := range s.Stmts {
			t.reserveNames(sub, container)
		}
	case *ir.DefWire:
		container.Reserve(s.Name)
	case *ir.DefRegister:
		container.Reserve(s.Name)
	case *ir.DefMemory:
		container.Reserve(s.Name)
	case *ir.DefNode:
		container.Reserve(s.Name)
	case *ir.DefInstance:
		container.Reserve(s.Name)
	}
}

func (t *Translator) processStmt(stmt ir.Stmt, container *graph.Module,
	prefix string, scope Scope) error {

	switch s := stmt.(type) {
	case *ir.Block:
		for _, sub := range s.Stmts {
			if err := t.processStmt(sub, container, prefix, scope); err != nil {
				return err
			}
		}

	case *ir.Connect:
		if scope.DoComponents() {
			return t.connect(s, container, prefix)
		}

	case *ir.DefInstance:
		// Sub-instances are processed regardless of scope; the
		// derived scope gates the instantiated module's own ports
		// and internals.
		sub := t.circ.Module(s.Module)
		if sub == nil {
			t.logger.Warningf(s.Loc, "instance %s of unknown module %s",
				s.Name, s.Module)
			return nil
		}
		child := graph.NewModule(s.Name, absName(prefix, s.Name))
		container.AddChild(child)
		return t.processModule(sub, child, qualified(prefix, s.Name),
			ChildScope(t.directives, s.Module, scope))

	case *ir.DefNode:
		if scope.DoComponents() {
			node := graph.NewWire(s.Name, absName(prefix, s.Name))
			t.bindings.Declare(qualified(prefix, s.Name), node)
			container.AddChild(node)
			t.wire(container, node.RHS(),
				t.processExpr(s.Value, container, prefix))
		}

	case *ir.DefWire:
		if scope.DoComponents() {
			node := graph.NewWire(s.Name, absName(prefix, s.Name))
			t.bindings.Declare(qualified(prefix, s.Name), node)
			container.AddChild(node)
		}

	case *ir.DefRegister:
		if scope.DoComponents() {
			node := graph.NewRegister(s.Name, absName(prefix, s.Name))
			t.bindings.Declare(qualified(prefix, s.Name), node)
			container.AddChild(node)
		}

	case *ir.DefMemory:
		// Memories are processed regardless of scope.
		node := graph.NewMemory(s.Name, absName(prefix, s.Name), s.Ports())
		t.bindings.Declare(qualified(prefix, s.Name), node)
		for _, p := range s.Ports() {
			t.bindings.Declare(qualified(prefix, s.Name+"."+p),
				graph.NewMemoryPort(node, p))
		}
		container.AddChild(node)

	default:
		// Unknown statement kinds are ignored.
	}
	return nil
}

// connect lowers one connection statement into a single edge. The
// sink reference is special-cased for register write terminals and
// memory ports.
func (t *Translator) connect(c *ir.Connect, container *graph.Module,
	prefix string) error {

	sink, err := t.sinkRef(c.Sink, prefix)
	if err != nil {
		return err
	}
	t.wire(container, sink, t.processExpr(c.Value, container, prefix))
	return nil
}

func (t *Translator) sinkRef(e ir.Expr, prefix string) (string, error) {
	path, ok := refPath(e)
	if !ok {
		if t.params.Strict {
			return "", t.logger.Errorf(e.Location(),
				"invalid connection target %s", e)
		}
		t.logger.Warningf(e.Location(), "invalid connection target %s", e)
		return "?", nil
	}
	node, found := t.bindings.Node(qualified(prefix, path))
	if !found {
		return sanitize(absName(prefix, path)), nil
	}
	if reg, isReg := node.(*graph.Register); isReg {
		return reg.Sink(), nil
	}
	return node.RHS(), nil
}

// processExpr lowers an expression into zero or more graph nodes and
// returns the reference of the node producing its value. Unknown
// expression kinds degrade to an empty reference.
func (t *Translator) processExpr(e ir.Expr, container *graph.Module,
	prefix string) string {

	switch expr := e.(type) {
	case *ir.Ref, *ir.SubField, *ir.SubIndex:
		path, ok := refPath(expr)
		if !ok {
			t.logger.Warningf(expr.Location(), "unresolvable reference %s",
				expr)
			return ""
		}
		return t.bindings.Resolve(qualified(prefix, path),
			sanitize(absName(prefix, path)))

	case *ir.Mux:
		name := container.Sequence("mux")
		node := graph.NewMux(name, absName(prefix, name))
		container.AddChild(node)
		t.wire(container, node.Select(),
			t.processExpr(expr.Cond, container, prefix))
		t.wire(container, node.In1(),
			t.processExpr(expr.True, container, prefix))
		t.wire(container, node.In2(),
			t.processExpr(expr.False, container, prefix))
		return node.RHS()

	case *ir.ValidIf:
		name := container.Sequence("valid")
		node := graph.NewValidIf(name, absName(prefix, name))
		container.AddChild(node)
		t.wire(container, node.Select(),
			t.processExpr(expr.Cond, container, prefix))
		t.wire(container, node.In1(),
			t.processExpr(expr.Value, container, prefix))
		return node.RHS()

	case *ir.Prim:
		return t.processPrim(expr, container, prefix)

	case *ir.Literal:
		name := container.Sequence("lit")
		node := graph.NewLiteral(name, absName(prefix, name), expr.String())
		container.AddChild(node)
		return node.RHS()

	default:
		t.logger.Warningf(e.Location(), "unsupported expression %s", e)
		return ""
	}
}

// processPrim expands a primitive operator application into one of
// the four operator node shapes. Operators outside the fixed set
// lower to an inert placeholder.
func (t *Translator) processPrim(expr *ir.Prim, container *graph.Module,
	prefix string) string {

	label := expr.Op.Label()

	switch expr.Op.Shape() {
	case ir.ShapeBinary:
		name := container.Sequence(label)
		node := graph.NewBinaryOp(name, absName(prefix, name), label)
		container.AddChild(node)
		t.wire(container, node.In1(), t.argRef(expr, 0, container, prefix))
		t.wire(container, node.In2(), t.argRef(expr, 1, container, prefix))
		return node.RHS()

	case ir.ShapeUnary:
		name := container.Sequence(label)
		node := graph.NewUnaryOp(name, absName(prefix, name), label)
		container.AddChild(node)
		t.wire(container, node.In1(), t.argRef(expr, 0, container, prefix))
		return node.RHS()

	case ir.ShapeOneParam:
		name := container.Sequence(label)
		node := graph.NewOneParamOp(name, absName(prefix, name), label,
			param(expr, 0))
		container.AddChild(node)
		t.wire(container, node.In1(), t.argRef(expr, 0, container, prefix))
		return node.RHS()

	case ir.ShapeTwoParam:
		name := container.Sequence(label)
		node := graph.NewTwoParamOp(name, absName(prefix, name), label,
			param(expr, 0), param(expr, 1))
		container.AddChild(node)
		t.wire(container, node.In1(), t.argRef(expr, 0, container, prefix))
		return node.RHS()

	default:
		t.logger.Warningf(expr.Loc, "unsupported operator %s", expr.Op)
		name := container.Sequence("op")
		node := graph.NewPlaceholder(name, absName(prefix, name))
		container.AddChild(node)
		return node.RHS()
	}
}

func (t *Translator) argRef(expr *ir.Prim, idx int, container *graph.Module,
	prefix string) string {

	if idx >= len(expr.Args) {
		t.logger.Warningf(expr.Loc, "operator %s missing argument %d",
			expr.Op, idx)
		return ""
	}
	return t.processExpr(expr.Args[idx], container, prefix)
}

func param(expr *ir.Prim, idx int) int64 {
	if idx >= len(expr.Params) {
		return 0
	}
	return expr.Params[idx]
}

// wire emits one edge. Empty endpoints, produced by expression kinds
// already diagnosed at their origin, emit nothing.
func (t *Translator) wire(container *graph.Module, sink, source string) {
	if len(sink) == 0 || len(source) == 0 {
		return
	}
	container.Connect(sink, source)
}

// refPath returns the dotted access path of a reference-like
// expression.
func refPath(e ir.Expr) (string, bool) {
	switch expr := e.(type) {
	case *ir.Ref:
		return expr.Name, true
	case *ir.SubField:
		base, ok := refPath(expr.Expr)
		if !ok {
			return "", false
		}
		return base + "." + expr.Name, true
	case *ir.SubIndex:
		base, ok := refPath(expr.Expr)
		if !ok {
			return "", false
		}
		return fmt.Sprintf("%s[%d]", base, expr.Index), true
	default:
		return "", false
	}
}

func qualified(prefix, name string) string {
	if len(prefix) == 0 {
		return name
	}
	return prefix + "." + name
}

func absName(prefix, name string) string {
	return strings.ReplaceAll(qualified(prefix, name), ".", "_")
}

var sanitizer = strings.NewReplacer(".", "_", "[", "_", "]", "")

// sanitize makes a synthesized fallback reference usable as a dot
// node identifier.
func sanitize(ref string) string {
	return sanitizer.Replace(ref)
}

// Visualize translates the named top module and writes the dot
// document to params.DotOut. In verbose mode a statistics report is
// printed to standard output.
func Visualize(circ *ir.Circuit, top string, directives []Directive,
	params *utils.Params, logger *utils.Logger) error {

	t := NewTranslator(circ, directives, params, logger)
	root, err := t.Translate(top)
	if err != nil {
		return err
	}
	root.Dot(params.DotOut)

	if params.Verbose {
		Collect(root).Print(os.Stdout)
	}
	return nil
}
