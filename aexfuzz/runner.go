// Package aexfuzz searches for disagreements between the evaluator
// and the compiled machine path.
package aexfuzz

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sync"

	"github.com/aexlang/aex/aexcompile"
	"github.com/aexlang/aex/aexlang"
	"github.com/aexlang/aex/aexvm"
	"github.com/aexlang/aex/nat"
	"github.com/aexlang/aex/syncs"
)

// Counterexample is an expression on which the two pipelines
// disagree. The pipeline is believed never to produce one; finding
// one means a bug in the compiler or the machine.
type Counterexample struct {
	Expr aexlang.Expr
	Want nat.Nat
	Got  aexvm.Stack
}

func (c *Counterexample) Error() string {
	return fmt.Sprintf("pipelines disagree on %s: evaluated %s, machine left %s",
		aexlang.Format(c.Expr), c.Want, c.Got)
}

// Check verifies the compiled path against the evaluator for a single
// expression.
func Check(expr aexlang.Expr) error {
	want := aexlang.Evaluate(expr)
	got := aexvm.Run(aexcompile.Compile(expr), nil)
	if len(got) == 1 && got[0].Equal(want) {
		return nil
	}
	return &Counterexample{
		Expr: expr,
		Want: want,
		Got:  got,
	}
}

// Runner generates random expression trees and checks each one with
// Check, spreading trials over concurrent workers. The pipelines are
// pure, so trials need no coordination beyond the semaphore bounding
// them.
type Runner struct {
	Trials int
	Depth  int
	Jobs   int
	Seed   uint64
}

const (
	defaultTrials = 1000
	defaultDepth  = 8
)

// Run performs the configured number of trials and returns the first
// counterexample found, if any. Trial i derives its expression from
// (Seed, i) alone, so a reported counterexample is reproducible
// regardless of scheduling.
func (r *Runner) Run(ctx context.Context) error {
	trials := r.Trials
	if trials <= 0 {
		trials = defaultTrials
	}
	depth := r.Depth
	if depth <= 0 {
		depth = defaultDepth
	}
	jobs := r.Jobs
	if jobs <= 0 {
		jobs = 1
	}

	sem := syncs.NewSemaphore(jobs)
	stop := make(chan struct{})

	var (
		wg       sync.WaitGroup
		stopOnce sync.Once
		mu       sync.Mutex
		firstErr error
	)

loop:
	for i := range trials {
		select {
		case <-ctx.Done():
			break loop
		case <-stop:
			break loop
		default:
		}

		sem.Acquire()
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer sem.Release()

			rnd := rand.New(rand.NewPCG(r.Seed, uint64(i)))
			expr := aexlang.RandomExpr(rnd, 1+rnd.IntN(depth))
			if err := Check(expr); err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				mu.Unlock()
				stopOnce.Do(func() {
					close(stop)
				})
			}
		}()
	}

	wg.Wait()
	if firstErr != nil {
		return firstErr
	}
	return ctx.Err()
}
