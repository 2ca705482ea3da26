// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package query parses boolean keyword expressions into an explicit
// expression tree evaluated against document content.
//
// Grammar, loosest-binding first:
//
//	expr    := or
//	or      := and (OR and)*
//	and     := unary (AND unary)*
//	unary   := NOT unary | primary
//	primary := '(' expr ')' | term
//
// Terms are bare words or quoted phrases; operator keywords are matched
// case-insensitively. A term is true for a document iff it occurs as a
// case-insensitive substring of the content. Malformed input fails at
// parse time, before any document is examined.
package query

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// ErrEmptyQuery is returned when the expression contains no terms.
var ErrEmptyQuery = errors.New("empty query expression")

// Expr is a node of the parsed query expression tree.
type Expr interface {
	// Eval reports whether content satisfies the expression.
	Eval(content string) bool

	// String renders the expression with explicit grouping.
	String() string
}

// Term matches a single keyword or quoted phrase by case-insensitive
// substring containment.
type Term struct {
	Word string
}

func (t Term) Eval(content string) bool {
	return strings.Contains(strings.ToLower(content), strings.ToLower(t.Word))
}

func (t Term) String() string { return fmt.Sprintf("%q", t.Word) }

// Not negates its operand.
type Not struct {
	X Expr
}

func (n Not) Eval(content string) bool { return !n.X.Eval(content) }

func (n Not) String() string { return "NOT " + n.X.String() }

// And is true iff both operands are true.
type And struct {
	L, R Expr
}

func (a And) Eval(content string) bool { return a.L.Eval(content) && a.R.Eval(content) }

func (a And) String() string { return "(" + a.L.String() + " AND " + a.R.String() + ")" }

// Or is true iff either operand is true.
type Or struct {
	L, R Expr
}

func (o Or) Eval(content string) bool { return o.L.Eval(content) || o.R.Eval(content) }

func (o Or) String() string { return "(" + o.L.String() + " OR " + o.R.String() + ")" }

// Parse validates and compiles a boolean query expression.
func Parse(input string) (Expr, error) {
	toks, err := lex(input)
	if err != nil {
		return nil, err
	}
	if len(toks) == 0 {
		return nil, ErrEmptyQuery
	}

	p := &parser{toks: toks}
	expr, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	if !p.done() {
		return nil, fmt.Errorf("unexpected %q after expression", p.peek().text)
	}
	return expr, nil
}

type tokenKind int

const (
	tokTerm tokenKind = iota
	tokAnd
	tokOr
	tokNot
	tokLParen
	tokRParen
)

type token struct {
	kind tokenKind
	text string
}

func lex(input string) ([]token, error) {
	var toks []token
	runes := []rune(input)
	i := 0
	for i < len(runes) {
		r := runes[i]
		switch {
		case unicode.IsSpace(r):
			i++
		case r == '(':
			toks = append(toks, token{kind: tokLParen, text: "("})
			i++
		case r == ')':
			toks = append(toks, token{kind: tokRParen, text: ")"})
			i++
		case r == '"':
			j := i + 1
			for j < len(runes) && runes[j] != '"' {
				j++
			}
			if j >= len(runes) {
				return nil, fmt.Errorf("unterminated quote at offset %d", i)
			}
			phrase := string(runes[i+1 : j])
			if strings.TrimSpace(phrase) == "" {
				return nil, fmt.Errorf("empty quoted term at offset %d", i)
			}
			toks = append(toks, token{kind: tokTerm, text: phrase})
			i = j + 1
		default:
			j := i
			for j < len(runes) && !unicode.IsSpace(runes[j]) && runes[j] != '(' && runes[j] != ')' && runes[j] != '"' {
				j++
			}
			word := string(runes[i:j])
			toks = append(toks, classify(word))
			i = j
		}
	}
	return toks, nil
}

// classify turns a bare word into an operator token or a term.
func classify(word string) token {
	switch strings.ToUpper(word) {
	case "AND":
		return token{kind: tokAnd, text: word}
	case "OR":
		return token{kind: tokOr, text: word}
	case "NOT":
		return token{kind: tokNot, text: word}
	}
	return token{kind: tokTerm, text: word}
}

type parser struct {
	toks []token
	pos  int
}

func (p *parser) done() bool { return p.pos >= len(p.toks) }

func (p *parser) peek() token { return p.toks[p.pos] }

func (p *parser) next() token {
	t := p.toks[p.pos]
	p.pos++
	return t
}

func (p *parser) parseOr() (Expr, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for !p.done() && p.peek().kind == tokOr {
		p.next()
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		left = Or{L: left, R: right}
	}
	return left, nil
}

func (p *parser) parseAnd() (Expr, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for !p.done() && p.peek().kind == tokAnd {
		p.next()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = And{L: left, R: right}
	}
	return left, nil
}

func (p *parser) parseUnary() (Expr, error) {
	if !p.done() && p.peek().kind == tokNot {
		p.next()
		x, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return Not{X: x}, nil
	}
	return p.parsePrimary()
}

func (p *parser) parsePrimary() (Expr, error) {
	if p.done() {
		return nil, errors.New("unexpected end of expression")
	}

	switch t := p.next(); t.kind {
	case tokLParen:
		expr, err := p.parseOr()
		if err != nil {
			return nil, err
		}
		if p.done() || p.peek().kind != tokRParen {
			return nil, errors.New("unbalanced parentheses: missing ')'")
		}
		p.next()
		return expr, nil
	case tokRParen:
		return nil, errors.New("unbalanced parentheses: unexpected ')'")
	case tokTerm:
		return Term{Word: t.text}, nil
	default:
		return nil, fmt.Errorf("operator %q needs an operand", t.text)
	}
}
