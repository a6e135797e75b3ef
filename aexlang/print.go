package aexlang

import (
	"fmt"
	"strings"
)

// Format renders e in concrete syntax with minimal parentheses. The
// output parses back to a structurally equal tree.
func Format(e Expr) string {
	var sb strings.Builder
	writeExpr(&sb, e, 0)
	return sb.String()
}

const (
	precAdd = 1
	precMul = 2
)

func writeExpr(sb *strings.Builder, e Expr, prec int) {
	switch e := e.(type) {

	case Const:
		sb.WriteString(e.N.String())

	case Plus:
		writeBinary(sb, e.A, "+", e.B, precAdd, prec)

	case Minus:
		writeBinary(sb, e.A, "-", e.B, precAdd, prec)

	case Mult:
		writeBinary(sb, e.A, "*", e.B, precMul, prec)

	default:
		panic(fmt.Sprintf("unknown expression: %T", e))
	}
}

func writeBinary(sb *strings.Builder, a Expr, op string, b Expr, prec int, outer int) {
	if prec < outer {
		sb.WriteString("(")
	}
	writeExpr(sb, a, prec)
	sb.WriteString(" ")
	sb.WriteString(op)
	sb.WriteString(" ")
	// operators are left-associative, so a right operand at the same
	// level needs parentheses to survive a round trip
	writeExpr(sb, b, prec+1)
	if prec < outer {
		sb.WriteString(")")
	}
}

func (e Const) String() string { return Format(e) }
func (e Plus) String() string  { return Format(e) }
func (e Minus) String() string { return Format(e) }
func (e Mult) String() string  { return Format(e) }
