package matches

import (
	"errors"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/subdispatch/subdispatch/pkg/dispatch"
)

// Capture executes root with args and returns the parsed command line as a
// chain of Sets, root first.
//
// Capture takes over the Run and RunE hooks of every command in the tree.
// Commands without declared positionals and without their own Args
// validator reject positionals, so an unknown subcommand is an error at
// every depth.
// If cobra handles the invocation itself (help output, for example) no
// command runs and Capture returns pflag.ErrHelp. Parse errors from cobra
// are returned unchanged.
func Capture(root *cobra.Command, args []string) (*Set, error) {
	var (
		selected   *cobra.Command
		positional []string
	)
	hook := func(cmd *cobra.Command, args []string) error {
		selected, positional = cmd, args
		return nil
	}
	walk(root, func(c *cobra.Command) {
		c.Run = nil
		c.RunE = hook
		if c.Args == nil && !(c == root && c.HasSubCommands()) {
			if _, declared := c.Annotations[ArgsAnnotation]; !declared {
				// Undeclared positionals would be dropped by collect, and
				// below the root a mistyped subcommand would arrive as one.
				c.Args = cobra.NoArgs
			}
		}
	})

	if args == nil {
		// cobra falls back to os.Args for nil.
		args = []string{}
	}
	root.SetArgs(args)
	if _, err := root.ExecuteC(); err != nil {
		return nil, err
	}
	if selected == nil {
		return nil, pflag.ErrHelp
	}
	return collect(selected, positional), nil
}

// Run captures args against root and passes the result to fn. Invocations
// cobra answers itself return nil without calling fn.
func Run(root *cobra.Command, args []string, fn func(dispatch.Matches) error) error {
	m, err := Capture(root, args)
	if errors.Is(err, pflag.ErrHelp) {
		return nil
	}
	if err != nil {
		return err
	}
	return fn(m)
}

func walk(c *cobra.Command, fn func(*cobra.Command)) {
	fn(c)
	for _, sub := range c.Commands() {
		walk(sub, fn)
	}
}

// collect builds the Set chain from the root of selected's tree down to
// selected. Positionals belong to selected only.
func collect(selected *cobra.Command, positional []string) *Set {
	var chain []*cobra.Command
	for c := selected; c != nil; c = c.Parent() {
		chain = append(chain, c)
	}

	var root, parent *Set
	for i := len(chain) - 1; i >= 0; i-- {
		c := chain[i]
		s := New(c.Name())
		addFlags(s, c.LocalFlags())
		addFlags(s, c.InheritedFlags())
		if c == selected {
			names, _ := DeclaredArgs(c)
			for j, v := range positional {
				if j < len(names) {
					s.WithValue(names[j], v)
				}
			}
		}
		if parent == nil {
			root = s
		} else {
			parent.WithSubcommand(s)
		}
		parent = s
	}
	return root
}

func addFlags(s *Set, fs *pflag.FlagSet) {
	fs.VisitAll(func(f *pflag.Flag) {
		if f.Name == "help" {
			return
		}
		if f.Changed || f.DefValue != "" {
			s.WithValue(f.Name, f.Value.String())
		}
	})
}
