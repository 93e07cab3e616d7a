package main

import (
	"os"

	"github.com/rocketscienceinc/tictactoe-matchmaker/cmd/commands"
)

// main - is the entry point of the application.
func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
