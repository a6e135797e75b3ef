package debugs

import (
	"testing"

	"github.com/aexlang/aex/aexlang"
	"github.com/aexlang/aex/aexvm"
	"github.com/aexlang/aex/nat"
	"go.starlark.net/starlark"
)

func TestToStarlarkValue(t *testing.T) {
	expr := aexlang.Minus{
		A: aexlang.Const{N: nat.New(40)},
		B: aexlang.Const{N: nat.New(3)},
	}
	huge := nat.MustParse("340282366920938463463374607431768211456")

	cases := []struct {
		name  string
		input any
		want  starlark.Value
	}{
		{"nil", nil, starlark.None},
		{"nat", nat.New(42), starlark.MakeInt(42)},
		{"nat wider than a word", huge, starlark.MakeBigInt(huge.Big())},
		{"stack", aexvm.Stack{nat.New(1), nat.New(2)}, starlark.NewList([]starlark.Value{
			starlark.MakeInt(1),
			starlark.MakeInt(2),
		})},
		{"empty stack", aexvm.Stack{}, starlark.NewList(nil)},
		{"expr", expr, starlark.String("40 - 3")},
		{"inst", aexvm.Push{N: nat.New(7)}, starlark.String("push 7")},
		{"program", aexvm.Program{
			aexvm.Push{N: nat.New(21)},
			aexvm.Push{N: nat.New(21)},
			aexvm.Add{},
		}, starlark.NewList([]starlark.Value{
			starlark.String("push 21"),
			starlark.String("push 21"),
			starlark.String("add"),
		})},
		{"bool", true, starlark.True},
		{"string", "hello", starlark.String("hello")},
		{"int", 42, starlark.MakeInt(42)},
		{"uint64", uint64(42), starlark.MakeUint64(42)},
		{"float64", 3.14, starlark.Float(3.14)},
		{"bytes", []byte("abc"), starlark.Bytes("abc")},
		{"[]any", []any{1, "a", true}, starlark.NewList([]starlark.Value{
			starlark.MakeInt(1),
			starlark.String("a"),
			starlark.True,
		})},
		{"map[string]any", map[string]any{"n": 1}, func() starlark.Value {
			d := starlark.NewDict(1)
			d.SetKey(starlark.String("n"), starlark.MakeInt(1))
			return d
		}()},
		{"[]nat", []nat.Nat{nat.New(3)}, starlark.NewList([]starlark.Value{
			starlark.MakeInt(3),
		})},
		{"nil pointer", (*aexvm.Machine)(nil), starlark.None},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := toStarlarkValue(c.input)
			equal, err := starlark.Equal(got, c.want)
			if err != nil {
				t.Fatalf("comparison failed: %v", err)
			}
			if !equal {
				t.Errorf("toStarlarkValue(%#v) = %v, want %v", c.input, got, c.want)
			}
		})
	}
}

func TestToStarlarkValueMachine(t *testing.T) {
	// a machine struct comes out as a dict of its fields
	m := aexvm.NewMachine(aexvm.Program{
		aexvm.Push{N: nat.New(1)},
	}, aexvm.Stack{nat.New(9)})

	value := toStarlarkValue(m)
	d, ok := value.(*starlark.Dict)
	if !ok {
		t.Fatalf("got %T", value)
	}
	stack, found, err := d.Get(starlark.String("Stack"))
	if err != nil || !found {
		t.Fatalf("no Stack field: %v", err)
	}
	equal, err := starlark.Equal(stack, starlark.NewList([]starlark.Value{
		starlark.MakeInt(9),
	}))
	if err != nil || !equal {
		t.Fatalf("got %v", stack)
	}
}

func TestToStarlarkValueFunc(t *testing.T) {
	value := toStarlarkValue(func(s string) string { return s })
	if _, ok := value.(starlark.Callable); !ok {
		t.Fatalf("got %T", value)
	}
}

func TestToStarlarkValuePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("no panic on unsupported type")
		}
	}()
	toStarlarkValue(make(chan bool))
}
