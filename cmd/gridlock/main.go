// Package main is the entry point for the gridlock binary.
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/gridlock/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "gridlock:", err)
		os.Exit(1)
	}
}
