// Package aexvm implements a stack machine for compiled arithmetic
// expressions: the instruction set, programs, and the interpreter.
package aexvm

import (
	"fmt"

	"github.com/aexlang/aex/nat"
)

// Inst is a single machine instruction. It is a closed sum: the only
// variants are Push, Add, Sub and Mul. Instructions are immutable
// values.
type Inst interface {
	fmt.Stringer
	isInst()
}

// Push puts a literal natural number on top of the stack.
type Push struct {
	N nat.Nat
}

// Add pops the top two entries and pushes their sum.
type Add struct{}

// Sub pops the top two entries and pushes the truncating difference
// of the lower entry minus the upper one.
type Sub struct{}

// Mul pops the top two entries and pushes their product.
type Mul struct{}

func (Push) isInst() {}
func (Add) isInst()  {}
func (Sub) isInst()  {}
func (Mul) isInst()  {}

func (i Push) String() string {
	return "push " + i.N.String()
}

func (Add) String() string {
	return "add"
}

func (Sub) String() string {
	return "sub"
}

func (Mul) String() string {
	return "mul"
}
