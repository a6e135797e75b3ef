package aexvm

import (
	"strings"

	"github.com/aexlang/aex/nat"
)

// Stack is the machine's working state: a LIFO sequence of natural
// numbers where the top is the last element. A Stack is owned by a
// single machine invocation and never shared.
type Stack []nat.Nat

// Top returns the most recently pushed entry.
func (s Stack) Top() (nat.Nat, bool) {
	if len(s) == 0 {
		return nat.Nat{}, false
	}
	return s[len(s)-1], true
}

// Equal reports whether two stacks hold the same numbers in the same
// order.
func (s Stack) Equal(other Stack) bool {
	if len(s) != len(other) {
		return false
	}
	for i, n := range s {
		if !n.Equal(other[i]) {
			return false
		}
	}
	return true
}

// String renders the stack bottom to top, the top entry last.
func (s Stack) String() string {
	elems := make([]string, len(s))
	for i, n := range s {
		elems[i] = n.String()
	}
	return "[" + strings.Join(elems, " ") + "]"
}
