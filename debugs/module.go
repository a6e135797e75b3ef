// Package debugs opens interactive Starlark sessions over the
// pipeline. A Tap placed at an interesting point, after parsing,
// after compiling, after a machine run, exposes that point's values
// as Starlark globals for inspection.
package debugs

import (
	"github.com/aexlang/aex/logs"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}
