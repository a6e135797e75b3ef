// Package nat implements arbitrary-precision natural numbers with
// truncating subtraction.
package nat

import (
	"fmt"
	"math/big"
)

// Nat is a non-negative integer of arbitrary size. The zero value is
// zero and ready to use. Nat values are immutable; arithmetic returns
// new values and never mutates the operands.
type Nat struct {
	i *big.Int
}

var bigZero = new(big.Int)

// New returns the natural number n.
func New(n uint64) Nat {
	if n == 0 {
		return Nat{}
	}
	return Nat{i: new(big.Int).SetUint64(n)}
}

// FromBig returns the natural number equal to i, copying it. It
// returns an error if i is negative.
func FromBig(i *big.Int) (Nat, error) {
	if i.Sign() < 0 {
		return Nat{}, fmt.Errorf("not a natural number: %s", i)
	}
	return Nat{i: new(big.Int).Set(i)}, nil
}

// Parse converts a base-10 string to a natural number.
func Parse(s string) (Nat, error) {
	i, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return Nat{}, fmt.Errorf("not a natural number: %q", s)
	}
	if i.Sign() < 0 {
		return Nat{}, fmt.Errorf("not a natural number: %q", s)
	}
	return Nat{i: i}, nil
}

// MustParse is Parse that panics on invalid input.
func MustParse(s string) Nat {
	n, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return n
}

func (n Nat) big() *big.Int {
	if n.i == nil {
		return bigZero
	}
	return n.i
}

// Add returns n + m.
func (n Nat) Add(m Nat) Nat {
	return Nat{i: new(big.Int).Add(n.big(), m.big())}
}

// Sub returns n - m, truncated at zero: when m >= n the result is
// zero, never a negative value.
func (n Nat) Sub(m Nat) Nat {
	if n.big().Cmp(m.big()) <= 0 {
		return Nat{}
	}
	return Nat{i: new(big.Int).Sub(n.big(), m.big())}
}

// Mul returns n * m.
func (n Nat) Mul(m Nat) Nat {
	return Nat{i: new(big.Int).Mul(n.big(), m.big())}
}

// Cmp compares n and m, returning -1, 0 or 1.
func (n Nat) Cmp(m Nat) int {
	return n.big().Cmp(m.big())
}

// Equal reports whether n and m are the same number.
func (n Nat) Equal(m Nat) bool {
	return n.Cmp(m) == 0
}

// IsZero reports whether n is zero.
func (n Nat) IsZero() bool {
	return n.big().Sign() == 0
}

// Uint64 returns n as a uint64 when it fits.
func (n Nat) Uint64() (uint64, bool) {
	if !n.big().IsUint64() {
		return 0, false
	}
	return n.big().Uint64(), true
}

// Big returns a copy of n as a big.Int. Mutating the copy does not
// affect n.
func (n Nat) Big() *big.Int {
	return new(big.Int).Set(n.big())
}

func (n Nat) String() string {
	return n.big().String()
}

// GobEncode implements gob.GobEncoder.
func (n Nat) GobEncode() ([]byte, error) {
	return n.big().GobEncode()
}

// GobDecode implements gob.GobDecoder.
func (n *Nat) GobDecode(data []byte) error {
	i := new(big.Int)
	if err := i.GobDecode(data); err != nil {
		return err
	}
	if i.Sign() < 0 {
		return fmt.Errorf("not a natural number: %s", i)
	}
	n.i = i
	return nil
}
