package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/toss/internal/cli"
	"github.com/arthur-debert/toss/internal/version"
)

func main() {
	rootCmd := cli.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "TOSS",
		Section: "1",
		Source:  "toss " + version.Version,
		Manual:  "toss manual",
	}

	// Without an argument the page goes to stdout, otherwise one page per
	// command is written into the given directory.
	var err error
	if len(os.Args) > 1 {
		err = doc.GenManTree(rootCmd, header, os.Args[1])
	} else {
		err = doc.GenMan(rootCmd, header, os.Stdout)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
