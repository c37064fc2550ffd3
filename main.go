// Command arcosphere is a CLI wrapper around the library, for human
// explorations.
//
// There are three subcommands:
//
//	arcosphere solve [options] SOURCE TARGET
//	arcosphere verify PATH
//	arcosphere plan PATH
//
// where PATH is SOURCE -> TARGET [xCOUNT] [+ CATALYSTS] => RECIPE ((| or //) RECIPE)*.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/matthieu-m/arcosphere/solver"
)

// Exit codes, also documented in the command help.
const (
	exitOK = iota
	exitNoSolution
	exitTruncated
	exitBadInput
)

// errInput tags malformed user input, so that it maps to its own exit
// code rather than the generic failure one.
var errInput = errors.New("invalid input")

func inputError(err error) error {
	return fmt.Errorf("%w: %v", errInput, err)
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(exitCode(err))
	}
}

func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, errInput):
		return exitBadInput
	case errors.Is(err, solver.ErrTruncated):
		return exitTruncated
	default:
		return exitNoSolution
	}
}
