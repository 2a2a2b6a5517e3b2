//
// Copyright (c) 2025-2026 Markku Rossi
//
// All rights reserved.
//

// Package parser implements the front end for the textual circuit
// format: an indentation-oriented module description with typed
// ports, wires, registers, memories, nodes, sub-instances, and
// connections.
package parser

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"unicode"

	"github.com/markkurossi/rtlgraph/utils"
)

// TokenType specifies input token types.
type TokenType int

// Input token types.
const (
	TIdentifier TokenType = iota
	TNumber
	TColon
	TComma
	TDot
	TAssign
	TConnect
	TLParen
	TRParen
	TLBracket
	TRBracket
	TLt
	TGt
)

var tokenTypes = map[TokenType]string{
	TIdentifier: "identifier",
	TNumber:     "number",
	TColon:      ":",
	TComma:      ",",
	TDot:        ".",
	TAssign:     "=",
	TConnect:    "<=",
	TLParen:     "(",
	TRParen:     ")",
	TLBracket:   "[",
	TRBracket:   "]",
	TLt:         "<",
	TGt:         ">",
}

func (t TokenType) String() string {
	name, ok := tokenTypes[t]
	if ok {
		return name
	}
	return fmt.Sprintf("{TokenType %d}", t)
}

// Token specifies an input token.
type Token struct {
	Type   TokenType
	StrVal string
	IntVal int64
	From   utils.Point
}

func (t *Token) String() string {
	switch t.Type {
	case TIdentifier:
		return t.StrVal
	case TNumber:
		return strconv.FormatInt(t.IntVal, 10)
	default:
		return t.Type.String()
	}
}

// Line is one logical input line: its indentation depth and tokens.
type Line struct {
	Indent int
	Loc    utils.Point
	Tokens []*Token
}

// Lexer implements the circuit format lexical analyzer.
type Lexer struct {
	source string
	in     *bufio.Reader
	line   int
	ungot  *Line
}

// NewLexer creates a new lexer reading from the argument io.Reader.
func NewLexer(source string, in io.Reader) *Lexer {
	return &Lexer{
		source: source,
		in:     bufio.NewReader(in),
	}
}

// Next returns the next non-empty input line. It returns io.EOF when
// the input is exhausted.
func (l *Lexer) Next() (*Line, error) {
	if l.ungot != nil {
		line := l.ungot
		l.ungot = nil
		return line, nil
	}
	for {
		runes, err := l.readLine()
		if err != nil {
			return nil, err
		}
		l.line++

		line, err := l.tokenize(runes)
		if err != nil {
			return nil, err
		}
		if line != nil {
			return line, nil
		}
	}
}

// Unget pushes the line back to the lexer.
func (l *Lexer) Unget(line *Line) {
	l.ungot = line
}

func (l *Lexer) readLine() ([]rune, error) {
	var runes []rune
	for {
		r, _, err := l.in.ReadRune()
		if err != nil {
			if err == io.EOF && len(runes) > 0 {
				return runes, nil
			}
			return nil, err
		}
		if r == '\n' {
			return runes, nil
		}
		runes = append(runes, r)
	}
}

func (l *Lexer) point(col int) utils.Point {
	return utils.Point{
		Source: l.source,
		Line:   l.line,
		Col:    col,
	}
}

func (l *Lexer) errf(col int, format string, a ...interface{}) error {
	return fmt.Errorf("%s: %s", l.point(col), fmt.Sprintf(format, a...))
}

// tokenize splits one raw line into tokens. It returns nil for blank
// and comment-only lines.
func (l *Lexer) tokenize(runes []rune) (*Line, error) {
	var indent int
	for indent < len(runes) && (runes[indent] == ' ' || runes[indent] == '\t') {
		indent++
	}

	line := &Line{
		Indent: indent,
		Loc:    l.point(indent),
	}

	i := indent
	for i < len(runes) {
		r := runes[i]
		if r == ' ' || r == '\t' {
			i++
			continue
		}
		if r == ';' {
			break
		}
		start := i
		switch {
		case unicode.IsLetter(r) || r == '_':
			for i < len(runes) && isNameRune(runes[i]) {
				i++
			}
			line.Tokens = append(line.Tokens, &Token{
				Type:   TIdentifier,
				StrVal: string(runes[start:i]),
				From:   l.point(start),
			})

		case unicode.IsDigit(r),
			r == '-' && i+1 < len(runes) && unicode.IsDigit(runes[i+1]):
			i++
			for i < len(runes) && unicode.IsDigit(runes[i]) {
				i++
			}
			val, err := strconv.ParseInt(string(runes[start:i]), 10, 64)
			if err != nil {
				return nil, l.errf(start, "malformed number: %s", err)
			}
			line.Tokens = append(line.Tokens, &Token{
				Type:   TNumber,
				IntVal: val,
				From:   l.point(start),
			})

		default:
			var tt TokenType
			switch r {
			case ':':
				tt = TColon
			case ',':
				tt = TComma
			case '.':
				tt = TDot
			case '=':
				tt = TAssign
			case '(':
				tt = TLParen
			case ')':
				tt = TRParen
			case '[':
				tt = TLBracket
			case ']':
				tt = TRBracket
			case '<':
				if i+1 < len(runes) && runes[i+1] == '=' {
					tt = TConnect
					i++
				} else {
					tt = TLt
				}
			case '>':
				tt = TGt
			default:
				return nil, l.errf(i, "unexpected character '%c'", r)
			}
			i++
			line.Tokens = append(line.Tokens, &Token{
				Type: tt,
				From: l.point(start),
			})
		}
	}

	if len(line.Tokens) == 0 {
		return nil, nil
	}
	return line, nil
}

func isNameRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '$'
}
