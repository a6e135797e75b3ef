package cmds

// GlobalExecutor serves the package level Define and Execute. Flag
// style variables register their commands here from init functions,
// main passes os.Args through before doing anything else.
var GlobalExecutor = NewExecutor()

func Define(name string, command *Command) {
	GlobalExecutor.Define(name, command)
}

func Execute(args []string) error {
	return GlobalExecutor.Execute(args)
}

func MustExecute(args []string) {
	GlobalExecutor.MustExecute(args)
}
