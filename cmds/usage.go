package cmds

import (
	"fmt"
	"io"
	"os"
	"reflect"
	"slices"
	"strings"
)

// PrintUsage writes the command listing to stdout.
func (p *Executor) PrintUsage() {
	p.FprintUsage(os.Stdout)
}

func (p *Executor) FprintUsage(w io.Writer) {
	fmt.Fprintln(w, "commands:")
	writeCommands(w, p.commands, 1)
}

// writeCommands lists commands sorted by name, aliases folded into
// one line, sub commands indented below their parent.
func writeCommands(w io.Writer, commands map[string]*Command, indent int) {
	byCommand := make(map[*Command][]string)
	for name, command := range commands {
		byCommand[command] = append(byCommand[command], name)
	}

	type entry struct {
		names   []string
		command *Command
	}
	var entries []entry
	for command, names := range byCommand {
		slices.Sort(names)
		entries = append(entries, entry{names, command})
	}
	slices.SortFunc(entries, func(a, b entry) int {
		return strings.Compare(a.names[0], b.names[0])
	})

	for _, e := range entries {
		line := strings.Repeat("  ", indent) +
			strings.Join(e.names, " | ") +
			argsSignature(e.command)
		if e.command != nil && e.command.Description != "" {
			line += "\n" + strings.Repeat("  ", indent+1) + e.command.Description
		}
		fmt.Fprintln(w, line)
		if e.command != nil && len(e.command.Subs) > 0 {
			writeCommands(w, e.command.Subs, indent+1)
		}
	}
}

func argsSignature(command *Command) string {
	if command == nil || !command.Func.IsValid() {
		return ""
	}
	t := command.Func.Type()
	var b strings.Builder
	for i := range t.NumIn() {
		in := t.In(i)
		if in.Kind() == reflect.Pointer {
			fmt.Fprintf(&b, " [%s]", in.Elem())
		} else {
			fmt.Fprintf(&b, " <%s>", in)
		}
	}
	return b.String()
}
