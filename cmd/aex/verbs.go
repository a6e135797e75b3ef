package main

import (
	"github.com/aexlang/aex/cmds"
	"github.com/aexlang/aex/vars"
)

// action is the verb selected from argv, with its arguments if any.
// The zero verb behaves like run.
type action struct {
	verb   string
	path   string
	target string
}

var act action

func defineVerb(name string, desc string) {
	cmds.Define(name, cmds.Func(func(path *string) {
		act.verb = name
		act.path = vars.DerefOrZero(path)
	}).Desc(desc))
}

func init() {
	defineVerb("eval", "evaluate an expression and print its value")
	defineVerb("run", "compile an expression, run the program, print the result")
	defineVerb("compile", "print the compiled program without running it")
	defineVerb("check", "compare the compiled pipeline against direct evaluation")

	cmds.Define("fuzz", cmds.Func(func() {
		act.verb = "fuzz"
	}).Desc("search random expressions for pipeline disagreements"))

	cmds.Define("repl", cmds.Func(func() {
		act.verb = "repl"
	}).Desc("start an interactive session"))

	cmds.Define("park", cmds.Func(func(target string, path *string) {
		act.verb = "park"
		act.target = target
		act.path = vars.DerefOrZero(path)
	}).Desc("compile an expression and save the unstarted machine to a file"))

	cmds.Define("resume", cmds.Func(func(target string) {
		act.verb = "resume"
		act.target = target
	}).Desc("load a parked machine, run it, print the result"))
}
