package aexconfigs

import (
	"github.com/aexlang/aex/cmds"
	"github.com/aexlang/aex/configs"
)

// TraceSteps makes the machine log every instruction it executes.
type TraceSteps bool

var traceFlag = cmds.Switch("-trace")

func (Module) TraceSteps(
	loader configs.Loader,
) TraceSteps {
	if *traceFlag {
		return true
	}
	return TraceSteps(configs.First[bool](loader, "trace"))
}
