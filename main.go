package main

import (
	"fmt"
	"os"

	"github.com/thenoetrevino/todos/cmd"
	"github.com/thenoetrevino/todos/internal/cli"
)

func main() {
	if err := cmd.Execute(); err != nil {
		if !cli.IsReported(err) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(cli.ExitCodeFor(err))
	}
}
