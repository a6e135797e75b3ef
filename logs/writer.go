package logs

import (
	"io"
	"os"
)

// Writer is where terminal log records go. Tests fork the scope with
// a buffer here.
type Writer io.Writer

func (Module) Writer() Writer {
	return os.Stderr
}
