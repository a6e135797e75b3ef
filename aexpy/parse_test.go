package aexpy

import (
	"strings"
	"testing"

	"github.com/aexlang/aex/aexlang"
	"github.com/aexlang/aex/aexvm"
	"github.com/aexlang/aex/nat"
)

func TestParse(t *testing.T) {
	cases := []struct {
		Input string
		Want  string
	}{
		{"42", "42"},
		{"1 + 2 * 3", "1 + 2 * 3"},
		{"(1 + 2) * 3", "(1 + 2) * 3"},
		{"40 - 3 - 1", "40 - 3 - 1"},
		{"40 - (3 - 1)", "40 - (3 - 1)"},
		{"+5", "5"},
		{
			"340282366920938463463374607431768211456 * 2",
			"340282366920938463463374607431768211456 * 2",
		},
	}

	for _, c := range cases {
		t.Run(c.Input, func(t *testing.T) {
			expr, err := ParseString("test", c.Input)
			if err != nil {
				t.Fatal(err)
			}
			if got := aexlang.Format(expr); got != c.Want {
				t.Fatalf("got %q, want %q", got, c.Want)
			}
		})
	}
}

func TestParseMatchesNativeSyntax(t *testing.T) {
	sources := []string{
		"0",
		"40 - 3 + 1",
		"2 + 2 * 2",
		"(2 + 2) * 2",
		"40 - (3 - 1)",
		"1 * 2 * 3 - 4",
	}
	for _, src := range sources {
		t.Run(src, func(t *testing.T) {
			fromStarlark, err := ParseString("test", src)
			if err != nil {
				t.Fatal(err)
			}
			fromNative, err := aexlang.ParseString("test", src)
			if err != nil {
				t.Fatal(err)
			}
			a := aexlang.Evaluate(fromStarlark)
			b := aexlang.Evaluate(fromNative)
			if !a.Equal(b) {
				t.Fatalf("starlark %s, native %s", a, b)
			}
			if aexlang.Format(fromStarlark) != aexlang.Format(fromNative) {
				t.Fatalf("starlark %q, native %q",
					aexlang.Format(fromStarlark), aexlang.Format(fromNative))
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		Input   string
		Message string
	}{
		{"x", "unsupported expression"},
		{"1 / 2", "unsupported binary op"},
		{"1 // 2", "unsupported binary op"},
		{"-5", "unsupported unary op"},
		{"f(1)", "unsupported expression"},
		{"1.5", "unsupported literal"},
		{`"str"`, "unsupported literal"},
		{"[1, 2]", "unsupported expression"},
		{"1 if 2 else 3", "unsupported expression"},
	}

	for _, c := range cases {
		t.Run(c.Input, func(t *testing.T) {
			_, err := ParseString("test", c.Input)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), c.Message) {
				t.Fatalf("got %q, want %q", err.Error(), c.Message)
			}
		})
	}
}

func TestParseSyntaxError(t *testing.T) {
	_, err := ParseString("calc", "1 +")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "calc") {
		t.Fatalf("got %q", err.Error())
	}
}

func TestCompile(t *testing.T) {
	prog, err := Compile("test", strings.NewReader("21 + 21"))
	if err != nil {
		t.Fatal(err)
	}
	got := aexvm.Run(prog, nil)
	if !got.Equal(aexvm.Stack{nat.New(42)}) {
		t.Fatalf("got %s", got)
	}
}
