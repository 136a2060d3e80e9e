// Package main provides the spiderweb CLI, a small driver for the web package:
// `demo` prints a web built from arguments, `run` reads line commands from stdin.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
