package aexlang

import (
	"fmt"

	"github.com/aexlang/aex/nat"
)

// Evaluate computes the value of e by structural recursion. It is
// total over well-formed expressions: addition and multiplication are
// the unbounded natural operations, subtraction truncates at zero.
func Evaluate(e Expr) nat.Nat {
	switch e := e.(type) {

	case Const:
		return e.N

	case Plus:
		return Evaluate(e.A).Add(Evaluate(e.B))

	case Minus:
		return Evaluate(e.A).Sub(Evaluate(e.B))

	case Mult:
		return Evaluate(e.A).Mul(Evaluate(e.B))

	}
	panic(fmt.Sprintf("unknown expression: %T", e))
}
