package aexlang

import (
	"fmt"
	"strings"
)

// PosError decorates an error with a source position. Its message
// includes the offending line and a caret under the column.
type PosError struct {
	Err error
	Pos Pos
}

func (p PosError) Error() string {
	if p.Pos.Source == nil {
		return p.Err.Error()
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s at %s:%d:%d\n", p.Err.Error(), p.Pos.Source.Name, p.Pos.Line, p.Pos.Column)

	idx := p.Pos.Line - 1
	if idx >= 0 && idx < len(p.Pos.Source.Lines) {
		line := p.Pos.Source.Lines[idx]
		sb.WriteString(line)
		sb.WriteString("\n")
		col := p.Pos.Column - 1
		for i, r := range []rune(line) {
			if i >= col {
				break
			}
			// keep tabs so the caret lines up under tabbed lines
			if r == '\t' {
				sb.WriteString("\t")
			} else {
				sb.WriteString(" ")
			}
		}
		sb.WriteString("^\n")
	}

	return sb.String()
}

func (p PosError) Unwrap() error {
	return p.Err
}

func WithPos(err error, pos Pos) error {
	if err == nil {
		return nil
	}
	if _, ok := err.(PosError); ok {
		return err
	}
	return PosError{
		Err: err,
		Pos: pos,
	}
}
