package main

import (
	"os"

	"sfutils/cmd/sfutils/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
