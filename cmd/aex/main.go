package main

import (
	"context"
	"fmt"
	"os"

	"github.com/aexlang/aex/aexcompile"
	"github.com/aexlang/aex/aexconfigs"
	"github.com/aexlang/aex/aexfuzz"
	"github.com/aexlang/aex/aexlang"
	"github.com/aexlang/aex/aexvm"
	"github.com/aexlang/aex/cmds"
	"github.com/aexlang/aex/debugs"
	"github.com/aexlang/aex/logs"
	"github.com/aexlang/aex/modes"
	"github.com/reusee/dscope"
)

func main() {
	if err := cmds.Execute(os.Args[1:]); err != nil {
		die(err)
	}

	scope := dscope.New(
		new(Module),
		modes.ForProduction(),
	)

	scope.Call(func(
		logger logs.Logger,
		newSpan logs.NewSpan,
		trials aexconfigs.FuzzTrials,
		depth aexconfigs.FuzzDepth,
		jobs aexconfigs.Jobs,
		seed aexconfigs.FuzzSeed,
		trace aexconfigs.TraceSteps,
		taps aexconfigs.Taps,
		tap debugs.Tap,
	) {
		ctx, _ := newSpan(context.Background(), "")

		switch act.verb {

		case "eval":
			expr, err := readExpr(act.path)
			if err != nil {
				die(err)
			}
			pt("%s\n", aexlang.Evaluate(expr))

		case "", "run":
			expr, err := readExpr(act.path)
			if err != nil {
				die(err)
			}
			if taps.Enabled("parsed") {
				tap(ctx, "parsed", map[string]any{
					"expr": expr,
				})
			}
			program := aexcompile.Compile(expr)
			if taps.Enabled("compiled") {
				tap(ctx, "compiled", map[string]any{
					"expr":    expr,
					"program": program,
				})
			}
			machine := aexvm.NewMachine(program, nil)
			runMachine(ctx, logger, machine, bool(trace))
			if taps.Enabled("ran") {
				tap(ctx, "ran", map[string]any{
					"program": program,
					"stack":   machine.Stack,
				})
			}
			printResult(machine)

		case "compile":
			expr, err := readExpr(act.path)
			if err != nil {
				die(err)
			}
			pt("%s", aexcompile.Compile(expr))

		case "check":
			expr, err := readExpr(act.path)
			if err != nil {
				die(err)
			}
			if err := aexfuzz.Check(expr); err != nil {
				die(err)
			}
			pt("ok\n")

		case "fuzz":
			runner := aexfuzz.Runner{
				Trials: int(trials),
				Depth:  int(depth),
				Jobs:   int(jobs),
				Seed:   uint64(seed),
			}
			logger.InfoContext(ctx, "fuzz",
				"trials", runner.Trials,
				"depth", runner.Depth,
				"jobs", runner.Jobs,
				"seed", runner.Seed,
			)
			if err := runner.Run(ctx); err != nil {
				die(err)
			}
			pt("ok\n")

		case "repl":
			tap(ctx, "repl", replGlobals())

		case "park":
			expr, err := readExpr(act.path)
			if err != nil {
				die(err)
			}
			program := aexcompile.Compile(expr)
			machine := aexvm.NewMachine(program, nil)
			f, err := os.Create(act.target)
			if err != nil {
				die(err)
			}
			ce(machine.Snapshot(f))
			ce(f.Close())
			logger.InfoContext(ctx, "parked",
				"target", act.target,
				"instructions", len(program),
			)

		case "resume":
			f, err := os.Open(act.target)
			if err != nil {
				die(err)
			}
			machine, err := aexvm.RestoreMachine(f)
			ce(f.Close())
			if err != nil {
				die(err)
			}
			runMachine(ctx, logger, machine, bool(trace))
			printResult(machine)

		}
	})
}

// runMachine steps m until it halts, logging each instruction when
// tracing.
func runMachine(ctx context.Context, logger logs.Logger, m *aexvm.Machine, trace bool) {
	if !trace {
		m.Run()
		return
	}
	for {
		ip := m.IP
		if !m.Step() {
			return
		}
		logger.InfoContext(ctx, "step",
			"ip", ip,
			"inst", m.Program[ip].String(),
			"stack", m.Stack.String(),
		)
	}
}

func printResult(m *aexvm.Machine) {
	if m.Stuck {
		die(fmt.Errorf("machine got stuck at instruction %d: %s", m.IP, m.Program[m.IP]))
	}
	top, ok := m.Stack.Top()
	if !ok {
		die(fmt.Errorf("program left an empty stack"))
	}
	pt("%s\n", top)
}
