// Package cmds is a small command line framework: commands are plain
// Go functions, arguments are parsed from argv by reflection, and
// several commands may run in one invocation.
package cmds

import (
	"fmt"
	"reflect"
)

type Command struct {
	Func        reflect.Value
	Subs        map[string]*Command
	Description string
	Aliases     []string
}

// Desc sets the description shown in the usage listing.
func (c *Command) Desc(desc string) *Command {
	c.Description = desc
	return c
}

// Alias registers additional names for the command.
func (c *Command) Alias(names ...string) *Command {
	c.Aliases = append(c.Aliases, names...)
	return c
}

// Func wraps a function as a command. The function may take any
// number of parameters parseable from argv (pointer parameters are
// optional) and may return nothing or a single error.
func Func(fn any) *Command {
	fnValue := reflect.ValueOf(fn)

	if fnValue.Kind() != reflect.Func {
		panic(fmt.Errorf("must be function, got %T", fn))
	}

	numRets := fnValue.Type().NumOut()
	if numRets >= 2 {
		panic(fmt.Errorf("must return 0 or 1 value"))
	}
	if numRets == 1 && fnValue.Type().Out(0) != errorType {
		panic(fmt.Errorf("must return error"))
	}

	return &Command{
		Func: fnValue,
	}
}

// Sub groups commands under a common prefix: executing the parent
// brings its sub commands into scope for the rest of the argv.
func Sub(subs map[string]*Command) *Command {
	return &Command{
		Subs: subs,
	}
}
