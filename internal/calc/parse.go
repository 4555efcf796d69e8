package calc

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// The parser accepts the calculator's own syntax: numbers as FormatNumber
// prints them (exponents, Infinity, NaN), + - * / with the usual
// precedence, ^ or ** as right-associative power binding tighter than
// unary minus, parentheses and function calls. It renders a fully
// parenthesized expression that govaluate evaluates without relying on
// its own precedence rules.

type tokenKind int

const (
	tokenEOF tokenKind = iota
	tokenNumber
	tokenIdent
	tokenOperator
	tokenLParen
	tokenRParen
	tokenComma
)

type token struct {
	kind  tokenKind
	text  string
	value float64
}

type lexer struct {
	input string
	pos   int
}

func (l *lexer) next() (token, error) {
	for l.pos < len(l.input) && strings.IndexByte(" \t", l.input[l.pos]) >= 0 {
		l.pos++
	}
	if l.pos >= len(l.input) {
		return token{kind: tokenEOF}, nil
	}

	start := l.pos
	c := l.input[l.pos]
	switch {
	case isDigit(c) || c == '.':
		return l.number()
	case isLetter(c):
		for l.pos < len(l.input) && (isLetter(l.input[l.pos]) || isDigit(l.input[l.pos])) {
			l.pos++
		}
		return token{kind: tokenIdent, text: l.input[start:l.pos]}, nil
	case strings.HasPrefix(l.input[l.pos:], "**"):
		l.pos += 2
		return token{kind: tokenOperator, text: "^"}, nil
	case strings.IndexByte("+-*/^", c) >= 0:
		l.pos++
		return token{kind: tokenOperator, text: string(c)}, nil
	case c == '(':
		l.pos++
		return token{kind: tokenLParen, text: "("}, nil
	case c == ')':
		l.pos++
		return token{kind: tokenRParen, text: ")"}, nil
	case c == ',':
		l.pos++
		return token{kind: tokenComma, text: ","}, nil
	}
	return token{}, fmt.Errorf("unexpected character %q at %d", c, start)
}

// number reads digits with an optional fraction and an optional exponent.
// An 'e' not followed by digits is left for the next token.
func (l *lexer) number() (token, error) {
	start := l.pos
	digits := 0
	for l.pos < len(l.input) && isDigit(l.input[l.pos]) {
		l.pos++
		digits++
	}
	if l.pos < len(l.input) && l.input[l.pos] == '.' {
		l.pos++
		for l.pos < len(l.input) && isDigit(l.input[l.pos]) {
			l.pos++
			digits++
		}
	}
	if digits == 0 {
		return token{}, fmt.Errorf("malformed number at %d", start)
	}
	if l.pos < len(l.input) && (l.input[l.pos] == 'e' || l.input[l.pos] == 'E') {
		j := l.pos + 1
		if j < len(l.input) && (l.input[j] == '+' || l.input[j] == '-') {
			j++
		}
		if j < len(l.input) && isDigit(l.input[j]) {
			for j < len(l.input) && isDigit(l.input[j]) {
				j++
			}
			l.pos = j
		}
	}

	text := l.input[start:l.pos]
	v, err := strconv.ParseFloat(text, 64)
	if err != nil && !isRangeErr(err) {
		return token{}, fmt.Errorf("malformed number %q: %w", text, err)
	}
	return token{kind: tokenNumber, text: text, value: v}, nil
}

func isLetter(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c == '_'
}

// node is one term of a parsed expression. String renders it in govaluate
// syntax.
type node interface {
	String() string
}

type numberNode float64

func (n numberNode) String() string {
	v := float64(n)
	switch {
	case math.IsNaN(v):
		return nanParam
	case math.IsInf(v, 1):
		return infinityParam
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

type negNode struct{ x node }

func (n negNode) String() string { return "(-" + n.x.String() + ")" }

type binaryNode struct {
	op   string
	l, r node
}

func (n binaryNode) String() string {
	op := n.op
	if op == "^" {
		op = "**"
	}
	return "(" + n.l.String() + " " + op + " " + n.r.String() + ")"
}

type callNode struct {
	name string
	args []node
}

func (n callNode) String() string {
	args := make([]string, len(n.args))
	for i, a := range n.args {
		args[i] = a.String()
	}
	return n.name + "(" + strings.Join(args, ", ") + ")"
}

// Names bound as evaluation parameters so the evaluator reads back what
// FormatNumber writes.
const (
	infinityParam = "Infinity"
	nanParam      = "NaN"
)

type parser struct {
	lex       lexer
	tok       token
	functions map[string]bool
}

// parseExpression parses expr, allowing calls to the named functions only.
func parseExpression(expr string, functions map[string]bool) (node, error) {
	p := &parser{lex: lexer{input: expr}, functions: functions}
	if err := p.advance(); err != nil {
		return nil, err
	}
	n, err := p.sum()
	if err != nil {
		return nil, err
	}
	if p.tok.kind != tokenEOF {
		return nil, fmt.Errorf("unexpected %q", p.tok.text)
	}
	return n, nil
}

func (p *parser) advance() error {
	tok, err := p.lex.next()
	if err != nil {
		return err
	}
	p.tok = tok
	return nil
}

func (p *parser) isOperator(ops string) bool {
	return p.tok.kind == tokenOperator && strings.Contains(ops, p.tok.text)
}

// sum := product (('+' | '-') product)*
func (p *parser) sum() (node, error) {
	l, err := p.product()
	if err != nil {
		return nil, err
	}
	for p.isOperator("+-") {
		op := p.tok.text
		if err := p.advance(); err != nil {
			return nil, err
		}
		r, err := p.product()
		if err != nil {
			return nil, err
		}
		l = binaryNode{op: op, l: l, r: r}
	}
	return l, nil
}

// product := unary (('*' | '/') unary)*
func (p *parser) product() (node, error) {
	l, err := p.unary()
	if err != nil {
		return nil, err
	}
	for p.isOperator("*/") {
		op := p.tok.text
		if err := p.advance(); err != nil {
			return nil, err
		}
		r, err := p.unary()
		if err != nil {
			return nil, err
		}
		l = binaryNode{op: op, l: l, r: r}
	}
	return l, nil
}

// unary := ('-' | '+') unary | power
func (p *parser) unary() (node, error) {
	if p.isOperator("+-") {
		op := p.tok.text
		if err := p.advance(); err != nil {
			return nil, err
		}
		x, err := p.unary()
		if err != nil {
			return nil, err
		}
		if op == "-" {
			return negNode{x: x}, nil
		}
		return x, nil
	}
	return p.power()
}

// power := primary ('^' unary)?
//
// The exponent recurses through unary, so 2^3^2 is 2^(3^2) and 2^-1 is
// allowed, while -2^2 is -(2^2).
func (p *parser) power() (node, error) {
	base, err := p.primary()
	if err != nil {
		return nil, err
	}
	if !p.isOperator("^") {
		return base, nil
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	exp, err := p.unary()
	if err != nil {
		return nil, err
	}
	return binaryNode{op: "^", l: base, r: exp}, nil
}

// primary := number | Infinity | NaN | name '(' args ')' | '(' sum ')'
func (p *parser) primary() (node, error) {
	switch p.tok.kind {
	case tokenNumber:
		v := p.tok.value
		return numberNode(v), p.advance()

	case tokenIdent:
		name := p.tok.text
		switch name {
		case infinityParam:
			return numberNode(math.Inf(1)), p.advance()
		case nanParam:
			return numberNode(math.NaN()), p.advance()
		}
		if !p.functions[name] {
			return nil, fmt.Errorf("unknown name %q", name)
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		if p.tok.kind != tokenLParen {
			return nil, fmt.Errorf("%s: expected (", name)
		}
		args, err := p.arguments()
		if err != nil {
			return nil, err
		}
		return callNode{name: name, args: args}, nil

	case tokenLParen:
		if err := p.advance(); err != nil {
			return nil, err
		}
		n, err := p.sum()
		if err != nil {
			return nil, err
		}
		if p.tok.kind != tokenRParen {
			return nil, fmt.Errorf("missing )")
		}
		return n, p.advance()

	case tokenEOF:
		return nil, fmt.Errorf("unexpected end of expression")
	}
	return nil, fmt.Errorf("unexpected %q", p.tok.text)
}

// arguments reads a parenthesized, comma-separated argument list. The
// current token is the opening parenthesis.
func (p *parser) arguments() ([]node, error) {
	if err := p.advance(); err != nil {
		return nil, err
	}
	var args []node
	if p.tok.kind == tokenRParen {
		return args, p.advance()
	}
	for {
		arg, err := p.sum()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		switch p.tok.kind {
		case tokenComma:
			if err := p.advance(); err != nil {
				return nil, err
			}
		case tokenRParen:
			return args, p.advance()
		default:
			return nil, fmt.Errorf("missing ) after arguments")
		}
	}
}
