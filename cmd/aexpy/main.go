package main

import (
	"fmt"
	"os"

	"github.com/aexlang/aex/aexcompile"
	"github.com/aexlang/aex/aexpy"
	"github.com/aexlang/aex/aexvm"
)

func main() {

	var input = os.Stdin
	var name string
	if len(os.Args) > 1 {
		f, err := os.Open(os.Args[1])
		if err != nil {
			os.Stderr.WriteString(err.Error())
			os.Stderr.WriteString("\n")
			os.Exit(-1)
		}
		defer f.Close()
		input = f
		name = os.Args[1]
	}

	expr, err := aexpy.Parse(name, input)
	if err != nil {
		os.Stderr.WriteString(err.Error())
		os.Stderr.WriteString("\n")
		os.Exit(-1)
	}

	stack := aexvm.Run(aexcompile.Compile(expr), nil)
	top, ok := stack.Top()
	if !ok {
		os.Stderr.WriteString("program left an empty stack\n")
		os.Exit(-1)
	}
	fmt.Println(top)

}
