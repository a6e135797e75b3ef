package main

import (
	"fmt"
	"os"

	"github.com/reusee/e5"
)

var (
	pt   = fmt.Printf
	wrap = e5.Wrap.With(e5.WrapStacktrace)
)

func ce(err error) {
	if err != nil {
		panic(wrap(err))
	}
}

func die(err error) {
	os.Stderr.WriteString(err.Error())
	os.Stderr.WriteString("\n")
	os.Exit(-1)
}
