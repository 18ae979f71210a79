package main

import (
	"os"

	"github.com/thenoetrevino/planner/cmd"
	"github.com/thenoetrevino/planner/internal/cli"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(cli.HandleError(os.Stderr, err))
	}
}
