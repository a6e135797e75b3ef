// Package aexcompile translates expression trees into stack machine
// programs.
package aexcompile

import (
	"fmt"

	"github.com/aexlang/aex/aexlang"
	"github.com/aexlang/aex/aexvm"
)

// Compile translates e by structural recursion: a constant becomes a
// push, a binary node becomes the code for its left operand, the code
// for its right operand, then the matching arithmetic instruction.
// Run on any stack, the program leaves exactly the value of e on top;
// code for a subtree never touches entries below the ones it pushed
// itself.
func Compile(e aexlang.Expr) aexvm.Program {
	c := &compiler{}
	c.compileExpr(e)
	return c.code
}

type compiler struct {
	code aexvm.Program
}

func (c *compiler) emit(inst aexvm.Inst) {
	c.code = append(c.code, inst)
}

func (c *compiler) compileExpr(expr aexlang.Expr) {
	switch expr := expr.(type) {

	case aexlang.Const:
		c.emit(aexvm.Push{N: expr.N})

	case aexlang.Plus:
		c.compileExpr(expr.A)
		c.compileExpr(expr.B)
		c.emit(aexvm.Add{})

	case aexlang.Minus:
		c.compileExpr(expr.A)
		c.compileExpr(expr.B)
		c.emit(aexvm.Sub{})

	case aexlang.Mult:
		c.compileExpr(expr.A)
		c.compileExpr(expr.B)
		c.emit(aexvm.Mul{})

	default:
		panic(fmt.Sprintf("unknown expression: %T", expr))
	}
}
