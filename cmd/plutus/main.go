package main

import (
	"os"

	"github.com/peter-kozarec/plutus/cmd/plutus/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
