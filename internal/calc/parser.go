package calc

import (
	"fmt"
	"math"
	"strconv"
)

// Parse builds an expression tree from input.
//
//	expr    = term { ("+" | "-") term }
//	term    = unary { ("*" | "/") unary }
//	unary   = ("+" | "-") unary | primary
//	primary = number | "(" expr ")"
func Parse(input string) (Node, error) {
	tokens, err := tokenize(input)
	if err != nil {
		return nil, err
	}
	p := &parser{tokens: tokens}
	node, err := p.expr()
	if err != nil {
		return nil, err
	}
	if tok := p.peek(); tok.kind != tokenEOF {
		return nil, &SyntaxError{Pos: tok.pos, Msg: fmt.Sprintf("unexpected %s", tok.kind)}
	}
	return node, nil
}

// Evaluate parses and evaluates input.
func Evaluate(input string) (float64, error) {
	node, err := Parse(input)
	if err != nil {
		return 0, err
	}
	return node.Eval()
}

// maxDepth bounds nesting of parentheses and unary signs.
const maxDepth = 256

type parser struct {
	tokens []token
	pos    int
	depth  int
}

func (p *parser) peek() token {
	return p.tokens[p.pos]
}

func (p *parser) next() token {
	tok := p.tokens[p.pos]
	if tok.kind != tokenEOF {
		p.pos++
	}
	return tok
}

func (p *parser) expr() (Node, error) {
	left, err := p.term()
	if err != nil {
		return nil, err
	}
	for {
		kind := p.peek().kind
		if kind != tokenPlus && kind != tokenMinus {
			return left, nil
		}
		op := p.next()
		right, err := p.term()
		if err != nil {
			return nil, err
		}
		left = Binary{Op: op.text[0], Left: left, Right: right}
	}
}

func (p *parser) term() (Node, error) {
	left, err := p.unary()
	if err != nil {
		return nil, err
	}
	for {
		kind := p.peek().kind
		if kind != tokenStar && kind != tokenSlash {
			return left, nil
		}
		p.next()
		op := byte('*')
		if kind == tokenSlash {
			op = '/'
		}
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		left = Binary{Op: op, Left: left, Right: right}
	}
}

func (p *parser) unary() (Node, error) {
	tok := p.peek()
	if tok.kind != tokenPlus && tok.kind != tokenMinus {
		return p.primary()
	}
	if err := p.enter(tok); err != nil {
		return nil, err
	}
	defer p.leave()

	p.next()
	operand, err := p.unary()
	if err != nil {
		return nil, err
	}
	return Unary{Op: tok.text[0], Operand: operand}, nil
}

func (p *parser) primary() (Node, error) {
	tok := p.next()
	switch tok.kind {
	case tokenNumber:
		value, err := strconv.ParseFloat(tok.text, 64)
		if err != nil || math.IsInf(value, 0) {
			return nil, &SyntaxError{Pos: tok.pos, Msg: "malformed number " + strconv.Quote(tok.text)}
		}
		return Number{Value: value}, nil
	case tokenLParen:
		if err := p.enter(tok); err != nil {
			return nil, err
		}
		defer p.leave()

		node, err := p.expr()
		if err != nil {
			return nil, err
		}
		if closing := p.next(); closing.kind != tokenRParen {
			return nil, &SyntaxError{Pos: closing.pos, Msg: fmt.Sprintf("expected ')', got %s", closing.kind)}
		}
		return node, nil
	}
	return nil, &SyntaxError{Pos: tok.pos, Msg: fmt.Sprintf("unexpected %s", tok.kind)}
}

func (p *parser) enter(tok token) error {
	p.depth++
	if p.depth > maxDepth {
		return &SyntaxError{Pos: tok.pos, Msg: "expression nested too deeply"}
	}
	return nil
}

func (p *parser) leave() {
	p.depth--
}
