// Package aexgo reads arithmetic expressions written in Go syntax
// and feeds them to the evaluator or the compiler.
package aexgo

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"math/big"

	"github.com/aexlang/aex/aexcompile"
	"github.com/aexlang/aex/aexlang"
	"github.com/aexlang/aex/aexvm"
	"github.com/aexlang/aex/nat"
)

// Parse reads a single expression written as a Go expression.
func Parse(source string) (aexlang.Expr, error) {
	goExpr, err := parser.ParseExpr(source)
	if err != nil {
		return nil, err
	}
	return translateExpr(goExpr)
}

// Compile parses source and compiles it into a machine program.
func Compile(source string) (aexvm.Program, error) {
	expr, err := Parse(source)
	if err != nil {
		return nil, err
	}
	return aexcompile.Compile(expr), nil
}

func translateExpr(expr ast.Expr) (aexlang.Expr, error) {
	switch expr := expr.(type) {

	case *ast.BasicLit:
		return translateBasicLit(expr)

	case *ast.BinaryExpr:
		x, err := translateExpr(expr.X)
		if err != nil {
			return nil, err
		}
		y, err := translateExpr(expr.Y)
		if err != nil {
			return nil, err
		}
		switch expr.Op {
		case token.ADD:
			return aexlang.Plus{A: x, B: y}, nil
		case token.SUB:
			return aexlang.Minus{A: x, B: y}, nil
		case token.MUL:
			return aexlang.Mult{A: x, B: y}, nil
		}
		return nil, fmt.Errorf("unsupported binary op: %v", expr.Op)

	case *ast.ParenExpr:
		return translateExpr(expr.X)

	case *ast.UnaryExpr:
		if expr.Op == token.ADD {
			return translateExpr(expr.X)
		}
		return nil, fmt.Errorf("unsupported unary op: %v", expr.Op)

	}
	return nil, fmt.Errorf("unsupported expression: %T", expr)
}

func translateBasicLit(lit *ast.BasicLit) (aexlang.Expr, error) {
	if lit.Kind != token.INT {
		return nil, fmt.Errorf("unsupported literal: %s", lit.Value)
	}
	// Go integer literals may use underscores and non-decimal bases
	i, ok := new(big.Int).SetString(lit.Value, 0)
	if !ok {
		return nil, fmt.Errorf("invalid literal: %s", lit.Value)
	}
	n, err := nat.FromBig(i)
	if err != nil {
		return nil, err
	}
	return aexlang.Const{N: n}, nil
}
