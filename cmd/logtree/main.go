// Package main is the entry point for the logtree CLI.
package main

import (
	"os"

	"github.com/philipp01105/logtree/cmd/logtree/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
