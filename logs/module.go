// Package logs provides the process wide logger. Records fan out to
// the terminal and, when available, the systemd journal. A span id
// carried through contexts ties together the records of one pipeline
// run.
package logs

import (
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
}
