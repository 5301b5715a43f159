package dispatch

import (
	"errors"
	"fmt"
)

// ErrSubcommandRequired is returned by SubcommandRequired when the
// configured exit function returns instead of terminating the process.
var ErrSubcommandRequired = errors.New("subcommand required")

// InvariantKind identifies which assumption about the command definition was
// broken.
type InvariantKind int

const (
	// UnhandledSubcommand means the table has no entry for a subcommand the
	// command definition produced.
	UnhandledSubcommand InvariantKind = iota + 1
	// MissingMatches means the matches of the selected subcommand were absent.
	MissingMatches
	// MissingArgument means a bound argument had no value.
	MissingArgument
)

func (k InvariantKind) String() string {
	switch k {
	case UnhandledSubcommand:
		return "unhandled subcommand"
	case MissingMatches:
		return "missing matches"
	case MissingArgument:
		return "missing argument"
	default:
		return fmt.Sprintf("InvariantKind(%d)", int(k))
	}
}

// InvariantError is the panic value used when a dispatch table and the
// command definition disagree. These are programming errors and are never
// returned as ordinary errors.
type InvariantError struct {
	Kind       InvariantKind
	Subcommand string
	Argument   string
}

func (e *InvariantError) Error() string {
	switch e.Kind {
	case UnhandledSubcommand:
		return fmt.Sprintf("Internal error: Command not covered: %s", e.Subcommand)
	case MissingMatches:
		return fmt.Sprintf("internal error: no matches for selected subcommand %s", e.Subcommand)
	case MissingArgument:
		return fmt.Sprintf("internal error: argument %s of subcommand %s not present", e.Argument, e.Subcommand)
	default:
		return "internal error: " + e.Kind.String()
	}
}
