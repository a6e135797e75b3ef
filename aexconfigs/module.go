// Package aexconfigs wires configuration for the aex tools: an
// aex.cue file found near the working directory, the user config dir
// or /etc, validated against the embedded schema, with command line
// flags taking precedence over file values.
package aexconfigs

import (
	"github.com/aexlang/aex/logs"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}
