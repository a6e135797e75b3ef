package aexconfigs

import (
	"github.com/aexlang/aex/cmds"
	"github.com/aexlang/aex/configs"
	"github.com/aexlang/aex/vars"
)

type FuzzTrials int

var fuzzTrialsFlag = cmds.Var[int]("-trials")

func (Module) FuzzTrials(
	loader configs.Loader,
) FuzzTrials {
	return FuzzTrials(vars.FirstNonZero(
		*fuzzTrialsFlag,
		configs.First[int](loader, "fuzz_trials"),
		1000,
	))
}

type FuzzDepth int

var fuzzDepthFlag = cmds.Var[int]("-depth")

func (Module) FuzzDepth(
	loader configs.Loader,
) FuzzDepth {
	return FuzzDepth(vars.FirstNonZero(
		*fuzzDepthFlag,
		configs.First[int](loader, "fuzz_depth"),
		8,
	))
}

type FuzzSeed uint64

var fuzzSeedFlag = cmds.Var[uint64]("-seed")

func (Module) FuzzSeed() FuzzSeed {
	return FuzzSeed(*fuzzSeedFlag)
}
