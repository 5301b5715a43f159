// Package dispatch routes a parsed command line to the handler registered for
// the subcommand it selected, binding named arguments along the way.
//
// The same steps are available in two forms. Table performs them at run time
// from a list of entries. Code written by the subdispatch generator performs
// them with plain switch statements and calls the helpers in this package
// (MustSubcommand, MustValue, Unhandled, SubcommandRequired) so both forms
// fail the same way.
package dispatch

// Matches is the result of parsing process arguments against a command
// definition. It reports which subcommand was chosen and the values bound to
// the declared arguments of the command it describes.
type Matches interface {
	// SubcommandName returns the name of the selected subcommand, if any.
	SubcommandName() (string, bool)
	// SubcommandMatches returns the matches of the named subcommand. It
	// reports false unless name is the selected subcommand.
	SubcommandMatches(name string) (Matches, bool)
	// ValueOf returns the value of a declared argument or flag.
	ValueOf(name string) (string, bool)
}
