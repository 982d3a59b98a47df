package main

import (
	"os"

	"github.com/rpcwire/rpcwire/internal/cli/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
