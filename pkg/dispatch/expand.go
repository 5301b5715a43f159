package dispatch

// MustSubcommand returns the matches of the selected subcommand name. The
// parser guarantees them once SubcommandName has reported name, so absence
// panics with an *InvariantError.
func MustSubcommand(m Matches, name string) Matches {
	sub, ok := m.SubcommandMatches(name)
	if !ok || sub == nil {
		panic(&InvariantError{Kind: MissingMatches, Subcommand: name})
	}
	return sub
}

// MustValue returns the value of arg on the matches of subcommand. Bindings
// are only declared for arguments whose presence the command definition
// guarantees, so absence panics with an *InvariantError.
func MustValue(m Matches, subcommand, arg string) string {
	v, ok := m.ValueOf(arg)
	if !ok {
		panic(&InvariantError{Kind: MissingArgument, Subcommand: subcommand, Argument: arg})
	}
	return v
}

// Unhandled returns the panic value for a subcommand the table does not
// cover. Generated code uses it as panic(dispatch.Unhandled(name)).
func Unhandled(name string) *InvariantError {
	return &InvariantError{Kind: UnhandledSubcommand, Subcommand: name}
}
