package aexvm

import "strings"

// Program is an ordered, finite sequence of instructions, executed
// front to back. Programs have no behavior of their own; the machine
// defines what they do.
type Program []Inst

// Concat splices programs into one, in order.
func Concat(ps ...Program) Program {
	var n int
	for _, p := range ps {
		n += len(p)
	}
	ret := make(Program, 0, n)
	for _, p := range ps {
		ret = append(ret, p...)
	}
	return ret
}

// String renders the program as a listing, one instruction per line.
func (p Program) String() string {
	var sb strings.Builder
	for _, inst := range p {
		sb.WriteString(inst.String())
		sb.WriteString("\n")
	}
	return sb.String()
}
