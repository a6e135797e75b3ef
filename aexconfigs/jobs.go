package aexconfigs

import (
	"runtime"

	"github.com/aexlang/aex/cmds"
	"github.com/aexlang/aex/configs"
	"github.com/aexlang/aex/vars"
)

type Jobs int

var jobsFlag = cmds.Var[int]("-jobs")

func (Module) Jobs(
	loader configs.Loader,
) Jobs {
	return Jobs(vars.FirstNonZero(
		*jobsFlag,
		configs.First[int](loader, "jobs"),
		runtime.NumCPU(),
	))
}
