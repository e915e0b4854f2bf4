package main

import (
	"fmt"
	"os"
)

// Set by linker via -ldflags.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "markz: %v\n", err)
		os.Exit(1)
	}
}
