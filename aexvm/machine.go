package aexvm

import (
	"errors"
	"fmt"
	"slices"

	"github.com/aexlang/aex/nat"
)

// ErrStackUnderflow is reported by RunStrict when an arithmetic
// instruction finds fewer than two operands on the stack.
var ErrStackUnderflow = errors.New("stack underflow")

// Machine executes one program against one stack. The zero value is
// a halted machine with an empty program.
type Machine struct {
	Program Program
	IP      int
	Stack   Stack

	// Stuck is set when an arithmetic instruction found fewer than
	// two operands. A stuck machine halts with its stack as it
	// stands; it never consumes further instructions.
	Stuck bool
}

// NewMachine returns a machine ready to execute p from s. The stack
// is copied, so the caller's slice is never written to.
func NewMachine(p Program, s Stack) *Machine {
	return &Machine{
		Program: p,
		Stack:   slices.Clone(s),
	}
}

// Run executes p against s and returns the final stack.
//
// The transition rules: an empty program returns the stack unchanged;
// Push puts its literal on top; Add, Sub and Mul pop the top entry a1
// and the one beneath it a2 and push a2+a1, a2-a1 (truncating) or
// a2*a1, recombining the operands in their original left-to-right
// order. An arithmetic instruction with fewer than two operands halts
// the machine silently with the stack as it stands. Only malformed,
// hand-authored programs can reach that state; use RunStrict to
// surface it as an error instead.
func Run(p Program, s Stack) Stack {
	m := NewMachine(p, s)
	m.Run()
	return m.Stack
}

// RunStrict executes p against s, reporting stack underflow as an
// error. The returned stack is the machine's state at the halt, in
// both the error and non-error case.
func RunStrict(p Program, s Stack) (Stack, error) {
	m := NewMachine(p, s)
	m.Run()
	if m.Stuck {
		return m.Stack, fmt.Errorf("%w at instruction %d: %s", ErrStackUnderflow, m.IP, p[m.IP])
	}
	return m.Stack, nil
}

// Run steps the machine until it halts.
func (m *Machine) Run() {
	for m.Step() {
	}
}

// Step executes a single instruction. It reports false once the
// machine has halted, either by running off the end of the program or
// by going stuck.
func (m *Machine) Step() bool {
	if m.Stuck || m.IP < 0 || m.IP >= len(m.Program) {
		return false
	}
	inst := m.Program[m.IP]

	switch inst := inst.(type) {

	case Push:
		m.IP++
		m.push(inst.N)
		return true

	case Add:
		a1, a2, ok := m.pop2()
		if !ok {
			return false
		}
		m.IP++
		m.push(a2.Add(a1))
		return true

	case Sub:
		a1, a2, ok := m.pop2()
		if !ok {
			return false
		}
		m.IP++
		m.push(a2.Sub(a1))
		return true

	case Mul:
		a1, a2, ok := m.pop2()
		if !ok {
			return false
		}
		m.IP++
		m.push(a2.Mul(a1))
		return true

	}
	panic(fmt.Sprintf("unknown instruction: %T", inst))
}

func (m *Machine) push(n nat.Nat) {
	m.Stack = append(m.Stack, n)
}

// pop2 pops the top two entries: a1 was on top, a2 beneath it. With
// fewer than two entries the machine goes stuck and nothing is
// popped.
func (m *Machine) pop2() (a1, a2 nat.Nat, ok bool) {
	if len(m.Stack) < 2 {
		m.Stuck = true
		return a1, a2, false
	}
	a1 = m.Stack[len(m.Stack)-1]
	a2 = m.Stack[len(m.Stack)-2]
	m.Stack = m.Stack[:len(m.Stack)-2]
	return a1, a2, true
}
