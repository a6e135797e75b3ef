// Package aexlang defines arithmetic expression trees, their
// evaluator, and a concrete syntax for reading and printing them.
package aexlang

import (
	"github.com/aexlang/aex/nat"
)

// Expr is an arithmetic expression over natural numbers. It is a
// closed sum: the only variants are Const, Plus, Minus and Mult.
// Expressions are immutable values with no shared state; the same
// tree may be evaluated and compiled concurrently.
type Expr interface {
	isExpr()
}

// Const is a literal natural number.
type Const struct {
	N nat.Nat
}

// Plus is the sum of two sub-expressions.
type Plus struct {
	A, B Expr
}

// Minus is the truncating difference of two sub-expressions: when B
// evaluates to at least A, the value is zero.
type Minus struct {
	A, B Expr
}

// Mult is the product of two sub-expressions.
type Mult struct {
	A, B Expr
}

func (Const) isExpr() {}
func (Plus) isExpr()  {}
func (Minus) isExpr() {}
func (Mult) isExpr()  {}
