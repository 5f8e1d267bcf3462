package main

import (
	"errors"
	"os"

	"github.com/arthur-debert/toss/internal/cli"
	"github.com/arthur-debert/toss/pkg/ui"
)

func main() {
	rootCmd := cli.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		// ErrFailed means the problems were already printed
		if !errors.Is(err, cli.ErrFailed) {
			ui.NewConsole(os.Stdout, os.Stderr, false).Problem(err)
		}
		os.Exit(1)
	}
}
