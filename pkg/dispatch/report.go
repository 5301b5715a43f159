package dispatch

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// UsageHint is printed when no subcommand was given.
const UsageHint = "Subcommand required. See --help for help."

// Reporter is where the missing-subcommand path writes its hint and how it
// ends the process.
type Reporter struct {
	Out  io.Writer
	Exit func(code int)
}

// StdReporter writes to standard output and calls os.Exit.
func StdReporter() Reporter {
	return Reporter{Out: os.Stdout, Exit: os.Exit}
}

var (
	reporterMu sync.Mutex
	reporter   = StdReporter()
)

// SetReporter replaces the package reporter and returns a function that
// restores the previous one. Nil fields fall back to StdReporter.
func SetReporter(r Reporter) (restore func()) {
	if r.Out == nil {
		r.Out = os.Stdout
	}
	if r.Exit == nil {
		r.Exit = os.Exit
	}

	reporterMu.Lock()
	prev := reporter
	reporter = r
	reporterMu.Unlock()

	return func() {
		reporterMu.Lock()
		reporter = prev
		reporterMu.Unlock()
	}
}

func currentReporter() Reporter {
	reporterMu.Lock()
	defer reporterMu.Unlock()
	return reporter
}

// SubcommandRequired reports that the user gave no subcommand: it prints
// UsageHint and exits with status 1. It only returns if the reporter's exit
// function returns, and then always returns ErrSubcommandRequired.
func SubcommandRequired() error {
	r := currentReporter()
	fmt.Fprintln(r.Out, UsageHint)
	r.Exit(1)
	return ErrSubcommandRequired
}
