package main

import (
	"fmt"
	"io"
	"os"

	"github.com/aexlang/aex/aexcompile"
	"github.com/aexlang/aex/aexgo"
	"github.com/aexlang/aex/aexvm"
)

func main() {

	var input io.Reader = os.Stdin
	if len(os.Args) > 1 {
		f, err := os.Open(os.Args[1])
		if err != nil {
			os.Stderr.WriteString(err.Error())
			os.Stderr.WriteString("\n")
			os.Exit(-1)
		}
		defer f.Close()
		input = f
	}

	content, err := io.ReadAll(input)
	if err != nil {
		os.Stderr.WriteString(err.Error())
		os.Stderr.WriteString("\n")
		os.Exit(-1)
	}

	expr, err := aexgo.Parse(string(content))
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
