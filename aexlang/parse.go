package aexlang

import (
	"fmt"
	"io"

	"github.com/aexlang/aex/nat"
)

// Parse reads a single expression from src. The grammar is
//
//	expr   = term { ("+" | "-") term }
//	term   = factor { "*" factor }
//	factor = number | "(" expr ")"
//
// with "#" starting a comment that runs to the end of the line.
// Operators are left-associative and "*" binds tighter than "+" and
// "-".
func Parse(name string, src io.Reader) (Expr, error) {
	content, err := io.ReadAll(src)
	if err != nil {
		return nil, err
	}
	return ParseString(name, string(content))
}

// ParseString parses a single expression from a string.
func ParseString(name string, content string) (Expr, error) {
	p := &parser{
		tokenizer: NewTokenizer(NewSource(name, content)),
	}
	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	tok, err := p.tokenizer.Current()
	if err != nil {
		return nil, err
	}
	if tok.Kind != TokenEOF {
		return nil, WithPos(fmt.Errorf("unexpected %q after expression", tok.Text), tok.Pos)
	}
	return expr, nil
}

type parser struct {
	tokenizer *Tokenizer
}

func (p *parser) parseExpr() (Expr, error) {
	expr, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for {
		tok, err := p.tokenizer.Current()
		if err != nil {
			return nil, err
		}
		if tok.Kind != TokenSymbol || (tok.Text != "+" && tok.Text != "-") {
			return expr, nil
		}
		p.tokenizer.Consume()
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		if tok.Text == "+" {
			expr = Plus{A: expr, B: right}
		} else {
			expr = Minus{A: expr, B: right}
		}
	}
}

func (p *parser) parseTerm() (Expr, error) {
	expr, err := p.parseFactor()
	if err != nil {
		return nil, err
	}
	for {
		tok, err := p.tokenizer.Current()
		if err != nil {
			return nil, err
		}
		if tok.Kind != TokenSymbol || tok.Text != "*" {
			return expr, nil
		}
		p.tokenizer.Consume()
		right, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		expr = Mult{A: expr, B: right}
	}
}

func (p *parser) parseFactor() (Expr, error) {
	tok, err := p.tokenizer.Current()
	if err != nil {
		return nil, err
	}

	switch {

	case tok.Kind == TokenNumber:
		p.tokenizer.Consume()
		n, err := nat.Parse(tok.Text)
		if err != nil {
			return nil, WithPos(err, tok.Pos)
		}
		return Const{N: n}, nil

	case tok.Kind == TokenSymbol && tok.Text == "(":
		p.tokenizer.Consume()
		expr, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		closing, err := p.tokenizer.Current()
		if err != nil {
			return nil, err
		}
		if closing.Kind != TokenSymbol || closing.Text != ")" {
			return nil, WithPos(fmt.Errorf("expected ')'"), closing.Pos)
		}
		p.tokenizer.Consume()
		return expr, nil

	case tok.Kind == TokenEOF:
		return nil, WithPos(fmt.Errorf("unexpected end of input"), tok.Pos)

	}

	return nil, WithPos(fmt.Errorf("expected a number or '(', got %q", tok.Text), tok.Pos)
}
