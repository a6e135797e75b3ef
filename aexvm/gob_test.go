package aexvm

import (
	"bytes"
	"testing"

	"github.com/aexlang/aex/nat"
)

func TestSnapshotRestore(t *testing.T) {
	prog := Program{
		push(40), push(3), Sub{},
		push(1), Add{},
	}
	want := Run(prog, nil)

	m := NewMachine(prog, nil)
	if !m.Step() || !m.Step() {
		t.Fatal("expected steps")
	}

	buf := new(bytes.Buffer)
	if err := m.Snapshot(buf); err != nil {
		t.Fatal(err)
	}

	restored, err := RestoreMachine(buf)
	if err != nil {
		t.Fatal(err)
	}
	if restored.IP != m.IP {
		t.Fatalf("IP %d, want %d", restored.IP, m.IP)
	}
	if !restored.Stack.Equal(m.Stack) {
		t.Fatalf("stack %s, want %s", restored.Stack, m.Stack)
	}

	restored.Run()
	if !restored.Stack.Equal(want) {
		t.Fatalf("got %s, want %s", restored.Stack, want)
	}
}

func TestSnapshotStuck(t *testing.T) {
	m := NewMachine(Program{Mul{}}, nil)
	m.Run()
	if !m.Stuck {
		t.Fatal("machine should be stuck")
	}

	buf := new(bytes.Buffer)
	if err := m.Snapshot(buf); err != nil {
		t.Fatal(err)
	}
	restored, err := RestoreMachine(buf)
	if err != nil {
		t.Fatal(err)
	}
	if !restored.Stuck {
		t.Fatal("stuck flag lost")
	}
	if restored.Step() {
		t.Fatal("restored stuck machine must not step")
	}
}

func TestSnapshotBigLiterals(t *testing.T) {
	huge := nat.MustParse("340282366920938463463374607431768211456")
	m := NewMachine(Program{Push{N: huge}, Push{N: huge}, Mul{}}, nil)

	buf := new(bytes.Buffer)
	if err := m.Snapshot(buf); err != nil {
		t.Fatal(err)
	}
	restored, err := RestoreMachine(buf)
	if err != nil {
		t.Fatal(err)
	}

	restored.Run()
	top, ok := restored.Stack.Top()
	if !ok {
		t.Fatal("empty stack")
	}
	if !top.Equal(huge.Mul(huge)) {
		t.Fatalf("got %s", top)
	}
}
