package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/thenoetrevino/devyntra/cmd"
	"github.com/thenoetrevino/devyntra/internal/cli"
)

func main() {
	err := cmd.Execute()

	// Subcommands report their own failures; anything else is printed here
	var exitErr *cli.ExitError
	if err != nil && !errors.As(err, &exitErr) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	os.Exit(cli.ExitCode(err))
}
