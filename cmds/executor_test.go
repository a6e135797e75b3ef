package cmds

import (
	"errors"
	"strings"
	"testing"
)

func TestExecutor(t *testing.T) {
	executor := NewExecutor()

	var a int
	executor.Define("+a", Func(func() {
		a = 42
	}))
	executor.Define("a", Func(func(i int) {
		a = i
	}))

	if err := executor.Execute([]string{
		"+a",
	}); err != nil {
		t.Fatal(err)
	}
	if a != 42 {
		t.Fatal()
	}

	if err := executor.Execute([]string{
		"a", "1",
	}); err != nil {
		t.Fatal(err)
	}
	if a != 1 {
		t.Fatal()
	}

	err := executor.Execute([]string{
		"foo",
	})
	if !strings.Contains(err.Error(), "unknown command: foo") {
		t.Fatalf("got %v", err)
	}

}

func TestCommandError(t *testing.T) {
	executor := NewExecutor()

	errBoom := errors.New("boom")
	executor.Define("ok", Func(func() error {
		return nil
	}))
	executor.Define("bad", Func(func() error {
		return errBoom
	}))

	if err := executor.Execute([]string{"ok"}); err != nil {
		t.Fatal(err)
	}

	err := executor.Execute([]string{"bad"})
	if !errors.Is(err, errBoom) {
		t.Fatalf("got %v", err)
	}
	if !strings.Contains(err.Error(), "command bad") {
		t.Fatalf("got %v", err)
	}
}

func TestBadArgument(t *testing.T) {
	executor := NewExecutor()

	executor.Define("n", Func(func(i int) {}))

	err := executor.Execute([]string{"n"})
	if err == nil || !strings.Contains(err.Error(), "expecting argument") {
		t.Fatalf("got %v", err)
	}

	err = executor.Execute([]string{"n", "forty-two"})
	if err == nil || !strings.Contains(err.Error(), "convert forty-two to int") {
		t.Fatalf("got %v", err)
	}
}

func TestSubCommands(t *testing.T) {
	executor := NewExecutor()
	var bar, baz int
	executor.Define("foo", Sub(map[string]*Command{
		"bar": Func(func() {
			bar = 1
		}),
		"baz": Func(func(i int) {
			baz = i
		}),
	}))

	if err := executor.Execute([]string{
		"foo",
		"bar",
		"baz", "42",
	}); err != nil {
		t.Fatal(err)
	}

	if bar != 1 {
		t.Fatal()
	}
	if baz != 42 {
		t.Fatal()
	}

	// sub commands are not in scope before the parent runs
	err := executor.Execute([]string{"bar"})
	if err == nil || !strings.Contains(err.Error(), "unknown command: bar") {
		t.Fatalf("got %v", err)
	}
}

func TestDuplicatedSubCommand(t *testing.T) {
	executor := NewExecutor()
	executor.Define("foo", Sub(map[string]*Command{
		"a": nil,
	}))
	executor.Define("bar", Sub(map[string]*Command{
		"a": nil,
	}))
	err := executor.Execute([]string{"foo", "bar"})
	if !strings.Contains(err.Error(), "duplicated sub command: bar a") {
		t.Fatalf("got %v", err)
	}
}

func TestOptionalArgument(t *testing.T) {
	executor := NewExecutor()
	var n int
	var s string
	executor.Define("foo", Func(func(arg *int, arg2 *string) {
		n = *arg
		s = *arg2
	}))

	err := executor.Execute([]string{"foo", "42", "foo"})
	if err != nil {
		t.Fatal(err)
	}
	if n != 42 {
		t.Fatal()
	}
	if s != "foo" {
		t.Fatal()
	}

	err = executor.Execute([]string{"foo", "99"})
	if err != nil {
		t.Fatal(err)
	}
	if n != 99 {
		t.Fatal()
	}
	if s != "" {
		t.Fatal()
	}

	err = executor.Execute([]string{"foo"})
	if err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Fatal()
	}
	if s != "" {
		t.Fatal()
	}

}

func TestDuplicatedDefine(t *testing.T) {
	executor := NewExecutor()
	executor.Define("x", Func(func() {}))
	func() {
		defer func() {
			p := recover()
			if p == nil {
				t.Fatal("should panic")
			}
			if !strings.Contains(p.(error).Error(), "duplicated command x") {
				t.Fatalf("got %v", p)
			}
		}()
		executor.Define("x", Func(func() {}))
	}()
}

func TestAliases(t *testing.T) {
	executor := NewExecutor()
	var hits int
	executor.Define("verbose", Func(func() {
		hits++
	}).Alias("-v", "--verbose"))

	if err := executor.Execute([]string{"verbose", "-v", "--verbose"}); err != nil {
		t.Fatal(err)
	}
	if hits != 3 {
		t.Fatalf("got %d", hits)
	}
}

func TestBadFunc(t *testing.T) {
	for _, fn := range []any{
		42,
		func() (int, error) { return 0, nil },
		func() int { return 0 },
	} {
		func() {
			defer func() {
				if recover() == nil {
					t.Fatal("should panic")
				}
			}()
			Func(fn)
		}()
	}
}
