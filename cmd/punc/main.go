// Command punc rewrites JavaScript programs using only the characters
// ()[]{}/+!-=\
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/roach88/punc/internal/cli"
)

func main() {
	err := cli.NewRootCommand().Execute()
	if err == nil {
		return
	}
	// Command errors were already reported through the output formatter.
	var exitErr *cli.ExitError
	if !errors.As(err, &exitErr) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	os.Exit(cli.GetExitCode(err))
}
