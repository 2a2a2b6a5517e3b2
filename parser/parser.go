//
// Copyright (c) 2025-2026 Markku Rossi
//
// All rights reserved.
//

package parser

import (
	"fmt"
	"io"
	"os"

	"github.com/markkurossi/rtlgraph/ir"
	"github.com/markkurossi/rtlgraph/utils"
)

// Parser implements the circuit format parser.
type Parser struct {
	logger *utils.Logger
	lexer  *Lexer
}

// NewParser creates a new parser reading from the argument
// io.Reader.
func NewParser(source string, logger *utils.Logger, in io.Reader) *Parser {
	return &Parser{
		logger: logger,
		lexer:  NewLexer(source, in),
	}
}

// ParseFile parses the named circuit file.
func ParseFile(path string, logger *utils.Logger) (*ir.Circuit, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return NewParser(path, logger, f).Parse()
}

// Parse parses a circuit.
func (p *Parser) Parse() (*ir.Circuit, error) {
	line, err := p.lexer.Next()
	if err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("empty input")
		}
		return nil, err
	}
	c := newCursor(line)
	if _, err := c.keyword("circuit"); err != nil {
		return nil, err
	}
	name, err := c.identifier()
	if err != nil {
		return nil, err
	}
	if _, err := c.expect(TColon); err != nil {
		return nil, err
	}
	circ := &ir.Circuit{
		Name: name,
	}

	for {
		line, err := p.lexer.Next()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, err
		}
		module, err := p.parseModule(line)
		if err != nil {
			return nil, err
		}
		circ.Modules = append(circ.Modules, module)
	}
	return circ, nil
}

func (p *Parser) parseModule(line *Line) (*ir.Module, error) {
	c := newCursor(line)
	kw, err := c.identifier()
	if err != nil {
		return nil, err
	}
	var ext bool
	switch kw {
	case "module":
	case "extmodule":
		ext = true
	default:
		return nil, p.errf(line.Loc, "unexpected '%s', expected module", kw)
	}
	name, err := c.identifier()
	if err != nil {
		return nil, err
	}
	if _, err := c.expect(TColon); err != nil {
		return nil, err
	}

	module := &ir.Module{
		Loc:  line.Loc,
		Name: name,
		Ext:  ext,
	}
	body := &ir.Block{}

	for {
		bodyLine, err := p.lexer.Next()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, err
		}
		if bodyLine.Indent <= line.Indent {
			p.lexer.Unget(bodyLine)
			break
		}
		if err := p.parseBodyLine(module, body, bodyLine); err != nil {
			return nil, err
		}
	}
	if !ext {
		body.Loc = module.Loc
		module.Body = body
	}
	return module, nil
}

// parseBodyLine parses one statement or port declaration. Lines with
// an unknown leading keyword are skipped with a diagnostic so that
// partially supported inputs still translate.
func (p *Parser) parseBodyLine(module *ir.Module, body *ir.Block,
	line *Line) error {

	c := newCursor(line)
	t := c.peek()
	if t == nil || t.Type != TIdentifier {
		return p.parseConnect(body, line)
	}

	switch t.StrVal {
	case "input", "output":
		c.next()
		port, err := p.parsePort(c, t.StrVal == "input")
		if err != nil {
			return err
		}
		module.Ports = append(module.Ports, port)
		return c.end()

	case "wire":
		c.next()
		name, typ, err := p.parseNameType(c)
		if err != nil {
			return err
		}
		body.Add(&ir.DefWire{
			Loc:  line.Loc,
			Name: name,
			Type: typ,
		})
		return c.end()

	case "reg":
		c.next()
		name, typ, err := p.parseNameType(c)
		if err != nil {
			return err
		}
		body.Add(&ir.DefRegister{
			Loc:  line.Loc,
			Name: name,
			Type: typ,
		})
		return c.end()

	case "mem":
		c.next()
		mem, err := p.parseMemory(c, line.Loc)
		if err != nil {
			return err
		}
		body.Add(mem)
		return c.end()

	case "node":
		c.next()
		name, err := c.identifier()
		if err != nil {
			return err
		}
		if _, err := c.expect(TAssign); err != nil {
			return err
		}
		value, err := p.parseExpr(c)
		if err != nil {
			return err
		}
		body.Add(&ir.DefNode{
			Loc:   line.Loc,
			Name:  name,
			Value: value,
		})
		return c.end()

	case "inst":
		c.next()
		name, err := c.identifier()
		if err != nil {
			return err
		}
		if _, err := c.keyword("of"); err != nil {
			return err
		}
		moduleName, err := c.identifier()
		if err != nil {
			return err
		}
		body.Add(&ir.DefInstance{
			Loc:    line.Loc,
			Name:   name,
			Module: moduleName,
		})
		return c.end()

	default:
		return p.parseConnect(body, line)
	}
}

func (p *Parser) parseConnect(body *ir.Block, line *Line) error {
	c := newCursor(line)
	sink, err := p.parseExpr(c)
	if err != nil {
		p.logger.Warningf(line.Loc, "skipping statement: %s", err)
		return nil
	}
	if _, err := c.expect(TConnect); err != nil {
		p.logger.Warningf(line.Loc, "skipping statement: %s", err)
		return nil
	}
	value, err := p.parseExpr(c)
	if err != nil {
		return err
	}
	body.Add(&ir.Connect{
		Loc:   line.Loc,
		Sink:  sink,
		Value: value,
	})
	return c.end()
}

func (p *Parser) parsePort(c *cursor, input bool) (*ir.Port, error) {
	loc := c.loc()
	name, typ, err := p.parseNameType(c)
	if err != nil {
		return nil, err
	}
	dir := ir.Output
	if input {
		dir = ir.Input
	}
	return &ir.Port{
		Loc:  loc,
		Name: name,
		Dir:  dir,
		Type: typ,
	}, nil
}

func (p *Parser) parseNameType(c *cursor) (string, ir.Type, error) {
	name, err := c.identifier()
	if err != nil {
		return "", ir.Type{}, err
	}
	if _, err := c.expect(TColon); err != nil {
		return "", ir.Type{}, err
	}
	typ, err := p.parseType(c)
	if err != nil {
		return "", ir.Type{}, err
	}
	return name, typ, nil
}

func (p *Parser) parseType(c *cursor) (ir.Type, error) {
	loc := c.loc()
	name, err := c.identifier()
	if err != nil {
		return ir.Type{}, err
	}
	var kind ir.TypeKind
	switch name {
	case "UInt":
		kind = ir.KindUInt
	case "SInt":
		kind = ir.KindSInt
	case "Clock":
		return ir.Type{Kind: ir.KindClock}, nil
	default:
		p.logger.Warningf(loc, "unknown type %s", name)
		return ir.Type{}, nil
	}
	result := ir.Type{
		Kind: kind,
	}
	t := c.peek()
	if t != nil && t.Type == TLt {
		c.next()
		width, err := c.number()
		if err != nil {
			return ir.Type{}, err
		}
		if _, err := c.expect(TGt); err != nil {
			return ir.Type{}, err
		}
		result.Width = int32(width)
	}
	return result, nil
}

func (p *Parser) parseMemory(c *cursor, loc utils.Point) (
	*ir.DefMemory, error) {

	name, typ, err := p.parseNameType(c)
	if err != nil {
		return nil, err
	}
	if _, err := c.expect(TLBracket); err != nil {
		return nil, err
	}
	depth, err := c.number()
	if err != nil {
		return nil, err
	}
	if _, err := c.expect(TRBracket); err != nil {
		return nil, err
	}
	mem := &ir.DefMemory{
		Loc:   loc,
		Name:  name,
		Type:  typ,
		Depth: depth,
	}
	for {
		t := c.peek()
		if t == nil || t.Type != TLParen {
			break
		}
		c.next()
		kw, err := c.identifier()
		if err != nil {
			return nil, err
		}
		portName, err := c.identifier()
		if err != nil {
			return nil, err
		}
		if _, err := c.expect(TRParen); err != nil {
			return nil, err
		}
		switch kw {
		case "read":
			mem.Readers = append(mem.Readers, portName)
		case "write":
			mem.Writers = append(mem.Writers, portName)
		default:
			p.logger.Warningf(loc, "unknown memory port kind %s", kw)
		}
	}
	return mem, nil
}

// parseExpr parses an expression: a reference with optional
// sub-field and sub-index suffixes, a literal, a mux, a validif, or
// a primitive operator application.
func (p *Parser) parseExpr(c *cursor) (ir.Expr, error) {
	loc := c.loc()
	name, err := c.identifier()
	if err != nil {
		return nil, err
	}

	var expr ir.Expr

	t := c.peek()
	switch {
	case t != nil && t.Type == TLt && (name == "UInt" || name == "SInt"):
		expr, err = p.parseLiteral(c, loc, name)
		if err != nil {
			return nil, err
		}

	case t != nil && t.Type == TLParen && name == "mux":
		c.next()
		args, err := p.parseArgs(c, 3)
		if err != nil {
			return nil, err
		}
		expr = &ir.Mux{
			Loc:   loc,
			Cond:  args[0],
			True:  args[1],
			False: args[2],
		}

	case t != nil && t.Type == TLParen && name == "validif":
		c.next()
		args, err := p.parseArgs(c, 2)
		if err != nil {
			return nil, err
		}
		expr = &ir.ValidIf{
			Loc:   loc,
			Cond:  args[0],
			Value: args[1],
		}

	case t != nil && t.Type == TLParen:
		expr, err = p.parsePrim(c, loc, name)
		if err != nil {
			return nil, err
		}

	default:
		expr = &ir.Ref{
			Loc:  loc,
			Name: name,
		}
	}

	return p.parseSuffixes(c, expr)
}

func (p *Parser) parseSuffixes(c *cursor, expr ir.Expr) (ir.Expr, error) {
	for {
		t := c.peek()
		if t == nil {
			return expr, nil
		}
		switch t.Type {
		case TDot:
			c.next()
			name, err := c.identifier()
			if err != nil {
				return nil, err
			}
			expr = &ir.SubField{
				Loc:  t.From,
				Expr: expr,
				Name: name,
			}

		case TLBracket:
			c.next()
			idx, err := c.number()
			if err != nil {
				return nil, err
			}
			if _, err := c.expect(TRBracket); err != nil {
				return nil, err
			}
			expr = &ir.SubIndex{
				Loc:   t.From,
				Expr:  expr,
				Index: idx,
			}

		default:
			return expr, nil
		}
	}
}

func (p *Parser) parseLiteral(c *cursor, loc utils.Point, name string) (
	ir.Expr, error) {

	kind := ir.KindUInt
	if name == "SInt" {
		kind = ir.KindSInt
	}
	if _, err := c.expect(TLt); err != nil {
		return nil, err
	}
	width, err := c.number()
	if err != nil {
		return nil, err
	}
	if _, err := c.expect(TGt); err != nil {
		return nil, err
	}
	if _, err := c.expect(TLParen); err != nil {
		return nil, err
	}
	value, err := c.number()
	if err != nil {
		return nil, err
	}
	if _, err := c.expect(TRParen); err != nil {
		return nil, err
	}
	return &ir.Literal{
		Loc: loc,
		Type: ir.Type{
			Kind:  kind,
			Width: int32(width),
		},
		Value: value,
	}, nil
}

// parsePrim parses a primitive operator application. Operator names
// outside the fixed set parse as the unknown operator; the
// translator lowers them to an inert placeholder.
func (p *Parser) parsePrim(c *cursor, loc utils.Point, name string) (
	ir.Expr, error) {

	op, known := ir.ParsePrimOp(name)
	if !known {
		p.logger.Warningf(loc, "unknown operator %s", name)
		op = ir.OpUnknown
	}
	if _, err := c.expect(TLParen); err != nil {
		return nil, err
	}
	prim := &ir.Prim{
		Loc: loc,
		Op:  op,
	}
	for {
		t := c.peek()
		if t == nil {
			return nil, p.errf(loc, "unterminated operator %s", name)
		}
		if t.Type == TRParen {
			c.next()
			return prim, nil
		}
		if len(prim.Args) > 0 || len(prim.Params) > 0 {
			if _, err := c.expect(TComma); err != nil {
				return nil, err
			}
			t = c.peek()
			if t == nil {
				return nil, p.errf(loc, "unterminated operator %s", name)
			}
		}
		if t.Type == TNumber {
			c.next()
			prim.Params = append(prim.Params, t.IntVal)
		} else {
			arg, err := p.parseExpr(c)
			if err != nil {
				return nil, err
			}
			prim.Args = append(prim.Args, arg)
		}
	}
}

func (p *Parser) parseArgs(c *cursor, count int) ([]ir.Expr, error) {
	var args []ir.Expr
	for i := 0; i < count; i++ {
		if i > 0 {
			if _, err := c.expect(TComma); err != nil {
				return nil, err
			}
		}
		arg, err := p.parseExpr(c)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}
	if _, err := c.expect(TRParen); err != nil {
		return nil, err
	}
	return args, nil
}

func (p *Parser) errf(loc utils.Point, format string,
	a ...interface{}) error {
	return fmt.Errorf("%s: %s", loc, fmt.Sprintf(format, a...))
}

// cursor iterates the tokens of one line.
type cursor struct {
	line *Line
	pos  int
}

func newCursor(line *Line) *cursor {
	return &cursor{
		line: line,
	}
}

func (c *cursor) loc() utils.Point {
	t := c.peek()
	if t != nil {
		return t.From
	}
	return c.line.Loc
}

func (c *cursor) peek() *Token {
	if c.pos >= len(c.line.Tokens) {
		return nil
	}
	return c.line.Tokens[c.pos]
}

func (c *cursor) next() *Token {
	t := c.peek()
	if t != nil {
		c.pos++
	}
	return t
}

func (c *cursor) expect(tt TokenType) (*Token, error) {
	t := c.next()
	if t == nil {
		return nil, fmt.Errorf("%s: unexpected end of line, expected %s",
			c.line.Loc, tt)
	}
	if t.Type != tt {
		return nil, fmt.Errorf("%s: unexpected '%s', expected %s",
			t.From, t, tt)
	}
	return t, nil
}

func (c *cursor) identifier() (string, error) {
	t, err := c.expect(TIdentifier)
	if err != nil {
		return "", err
	}
	return t.StrVal, nil
}

func (c *cursor) keyword(name string) (*Token, error) {
	t, err := c.expect(TIdentifier)
	if err != nil {
		return nil, err
	}
	if t.StrVal != name {
		return nil, fmt.Errorf("%s: unexpected '%s', expected %s",
			t.From, t, name)
	}
	return t, nil
}

func (c *cursor) number() (int64, error) {
	t, err := c.expect(TNumber)
	if err != nil {
		return 0, err
	}
	return t.IntVal, nil
}

func (c *cursor) end() error {
	t := c.peek()
	if t != nil {
		return fmt.Errorf("%s: trailing input '%s'", t.From, t)
	}
	return nil
}
