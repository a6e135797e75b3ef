package main

import (
	"context"
	"strings"

	"github.com/aexlang/aex/aexcompile"
	"github.com/aexlang/aex/aexfuzz"
	"github.com/aexlang/aex/aexlang"
	"github.com/aexlang/aex/aexvm"
)

// replGlobals binds the pipeline stages as functions taking source
// text, so the session can poke at any stage: parse("1 + 2"),
// evaluate("7 * 6"), compile("40 - 2"), run("2 * 3 + 1"),
// fuzz(10000). Results come back as printed forms.
func replGlobals() map[string]any {
	return map[string]any{

		"parse": func(src string) string {
			expr, err := aexlang.ParseString("repl", src)
			if err != nil {
				return "error: " + err.Error()
			}
			return aexlang.Format(expr)
		},

		"evaluate": func(src string) string {
			expr, err := aexlang.ParseString("repl", src)
			if err != nil {
				return "error: " + err.Error()
			}
			return aexlang.Evaluate(expr).String()
		},

		"compile": func(src string) string {
			expr, err := aexlang.ParseString("repl", src)
			if err != nil {
				return "error: " + err.Error()
			}
			return strings.TrimSuffix(aexcompile.Compile(expr).String(), "\n")
		},

		"run": func(src string) string {
			expr, err := aexlang.ParseString("repl", src)
			if err != nil {
				return "error: " + err.Error()
			}
			return aexvm.Run(aexcompile.Compile(expr), nil).String()
		},

		"fuzz": func(trials int) string {
			runner := aexfuzz.Runner{
				Trials: trials,
			}
			if err := runner.Run(context.Background()); err != nil {
				return err.Error()
			}
			return "ok"
		},
	}
}
