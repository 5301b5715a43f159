package matches

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/subdispatch/subdispatch/pkg/dispatch"
)

// Verify checks that t covers exactly the subcommands of cmd, recursively
// for nested tables, and that every binding names an argument whose
// presence cmd guarantees. Run it at startup or from a test so that a
// mismatch is found before it can panic during dispatch.
func Verify(t *dispatch.Table, cmd *cobra.Command) error {
	return verify(t, cmd, cmd.Name())
}

func verify(t *dispatch.Table, cmd *cobra.Command, path string) error {
	subs := make(map[string]*cobra.Command)
	for _, c := range Subcommands(cmd) {
		subs[c.Name()] = c
		if _, ok := t.Lookup(c.Name()); !ok {
			return fmt.Errorf("%s: subcommand %q has no dispatch entry", path, c.Name())
		}
	}

	for _, name := range t.Names() {
		c, ok := subs[name]
		if !ok {
			return fmt.Errorf("%s: dispatch entry %q names no subcommand", path, name)
		}
		e, _ := t.Lookup(name)
		for _, b := range e.Bindings {
			if !Guaranteed(c, b.Arg) {
				return fmt.Errorf("%s %s: argument %q is not guaranteed to be present", path, name, b.Arg)
			}
		}
		if e.Table != nil {
			if err := verify(e.Table, c, path+" "+name); err != nil {
				return err
			}
		}
	}
	return nil
}

// Subcommands returns the subcommands of cmd a dispatch table has to cover,
// leaving out the help and completion commands cobra adds on its own.
func Subcommands(cmd *cobra.Command) []*cobra.Command {
	var out []*cobra.Command
	for _, c := range cmd.Commands() {
		if c.Name() == "help" || c.Name() == "completion" {
			continue
		}
		out = append(out, c)
	}
	return out
}
