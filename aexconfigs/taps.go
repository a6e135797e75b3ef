package aexconfigs

import (
	"slices"

	"github.com/aexlang/aex/cmds"
	"github.com/aexlang/aex/configs"
)

// Taps names the pipeline points where a debug session opens:
// "parsed", "compiled", "ran". The repl command opens one
// unconditionally.
type Taps []string

var tapFlag = cmds.Collect[string]("-tap")

func (Module) Taps(
	loader configs.Loader,
) Taps {
	taps := configs.First[[]string](loader, "taps")
	taps = append(taps, *tapFlag...)
	return taps
}

func (t Taps) Enabled(name string) bool {
	return slices.Contains(t, name)
}
