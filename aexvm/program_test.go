package aexvm

import (
	"testing"
)

func TestProgramString(t *testing.T) {
	prog := Program{push(21), push(21), Add{}, Sub{}, Mul{}}
	want := "push 21\npush 21\nadd\nsub\nmul\n"
	if got := prog.String(); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}

	var empty Program
	if got := empty.String(); got != "" {
		t.Fatalf("got %q", got)
	}
}

func TestConcat(t *testing.T) {
	a := Program{push(1)}
	b := Program{push(2), Add{}}

	got := Concat(a, b)
	want := Program{push(1), push(2), Add{}}
	if len(got) != len(want) {
		t.Fatalf("got %d instructions", len(got))
	}
	if !Run(got, nil).Equal(stack(3)) {
		t.Fatalf("got %s", Run(got, nil))
	}

	// splicing must not share backing arrays with the inputs
	got[0] = push(9)
	if !Run(a, nil).Equal(stack(1)) {
		t.Fatal("concat aliased its input")
	}

	if len(Concat()) != 0 {
		t.Fatal()
	}
	if len(Concat(nil, Program{}, nil)) != 0 {
		t.Fatal()
	}
}
