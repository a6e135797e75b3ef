package aexvm

import (
	"testing"

	"github.com/aexlang/aex/nat"
)

func BenchmarkMachine(b *testing.B) {
	one := nat.New(1)
	prog := make(Program, 0, b.N*2+1)
	prog = append(prog, Push{N: one})
	for range b.N {
		prog = append(prog, Push{N: one}, Add{})
	}

	b.ResetTimer()
	m := NewMachine(prog, nil)
	m.Run()

	got, ok := m.Stack.Top()
	if !ok || !got.Equal(nat.New(uint64(b.N)+1)) {
		b.Fatalf("got %s", got)
	}
}
