package main

import (
	"io"
	"os"

	"github.com/aexlang/aex/aexgo"
	"github.com/aexlang/aex/aexlang"
	"github.com/aexlang/aex/aexpy"
	"github.com/aexlang/aex/cmds"
)

var (
	exprFlag = cmds.Var[string]("-e")
	useGo    = cmds.Switch("-go")
	usePy    = cmds.Switch("-py")
)

// readSource returns the expression text and a name for error
// positions: the -e argument, the content of path, or stdin, in that
// order of preference.
func readSource(path string) (name string, src string, err error) {
	if *exprFlag != "" {
		return "arg", *exprFlag, nil
	}
	if path != "" {
		content, err := os.ReadFile(path)
		if err != nil {
			return "", "", err
		}
		return path, string(content), nil
	}
	content, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", "", err
	}
	return "stdin", string(content), nil
}

// parseExpr reads one expression through the selected front end: Go
// syntax with -go, Starlark syntax with -py, the native syntax
// otherwise.
func parseExpr(name string, src string) (aexlang.Expr, error) {
	switch {
	case *useGo:
		return aexgo.Parse(src)
	case *usePy:
		return aexpy.ParseString(name, src)
	}
	return aexlang.ParseString(name, src)
}

func readExpr(path string) (aexlang.Expr, error) {
	name, src, err := readSource(path)
	if err != nil {
		return nil, err
	}
	return parseExpr(name, src)
}
