// Package aexpy reads arithmetic expressions written in Starlark
// syntax and feeds them to the evaluator or the compiler.
package aexpy

import (
	"fmt"
	"io"
	"math/big"

	"github.com/aexlang/aex/aexcompile"
	"github.com/aexlang/aex/aexlang"
	"github.com/aexlang/aex/aexvm"
	"github.com/aexlang/aex/nat"
	"go.starlark.net/syntax"
)

var fileOptions = &syntax.FileOptions{}

// Parse reads a single expression from source.
func Parse(name string, source io.Reader) (aexlang.Expr, error) {
	parsed, err := fileOptions.ParseExpr(name, source, 0)
	if err != nil {
		return nil, err
	}
	return translateExpr(parsed)
}

// ParseString parses a single expression from a string.
func ParseString(name string, source string) (aexlang.Expr, error) {
	parsed, err := fileOptions.ParseExpr(name, source, 0)
	if err != nil {
		return nil, err
	}
	return translateExpr(parsed)
}

// Compile parses source and compiles it into a machine program.
func Compile(name string, source io.Reader) (aexvm.Program, error) {
	expr, err := Parse(name, source)
	if err != nil {
		return nil, err
	}
	return aexcompile.Compile(expr), nil
}

func translateExpr(expr syntax.Expr) (aexlang.Expr, error) {
	switch expr := expr.(type) {

	case *syntax.Literal:
		return translateLiteral(expr)

	case *syntax.BinaryExpr:
		x, err := translateExpr(expr.X)
		if err != nil {
			return nil, err
		}
		y, err := translateExpr(expr.Y)
		if err != nil {
			return nil, err
		}
		switch expr.Op {
		case syntax.PLUS:
			return aexlang.Plus{A: x, B: y}, nil
		case syntax.MINUS:
			return aexlang.Minus{A: x, B: y}, nil
		case syntax.STAR:
			return aexlang.Mult{A: x, B: y}, nil
		}
		return nil, fmt.Errorf("unsupported binary op: %v", expr.Op)

	case *syntax.ParenExpr:
		return translateExpr(expr.X)

	case *syntax.UnaryExpr:
		// a leading plus is harmless, anything else has no meaning
		// over naturals
		if expr.Op == syntax.PLUS {
			return translateExpr(expr.X)
		}
		return nil, fmt.Errorf("unsupported unary op: %v", expr.Op)

	}
	return nil, fmt.Errorf("unsupported expression: %T", expr)
}

func translateLiteral(lit *syntax.Literal) (aexlang.Expr, error) {
	switch value := lit.Value.(type) {

	case int64:
		if value < 0 {
			return nil, fmt.Errorf("negative literal: %d", value)
		}
		return aexlang.Const{N: nat.New(uint64(value))}, nil

	case *big.Int:
		n, err := nat.FromBig(value)
		if err != nil {
			return nil, err
		}
		return aexlang.Const{N: n}, nil

	}
	return nil, fmt.Errorf("unsupported literal: %s", lit.Raw)
}
