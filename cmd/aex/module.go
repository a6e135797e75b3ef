package main

import (
	"github.com/aexlang/aex/aexconfigs"
	"github.com/aexlang/aex/debugs"
	"github.com/aexlang/aex/logs"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Logs    logs.Module
	Configs aexconfigs.Module
	Debugs  debugs.Module
}
