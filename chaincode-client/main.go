package main

import (
	"os"

	"github.com/odrodrig/composer-to-fabric/chaincode-client/commands"
)

func main() {
	// Errors are printed by the root command with color formatting.
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
