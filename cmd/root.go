package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/subdispatch/subdispatch/internal/ui"
	"github.com/subdispatch/subdispatch/pkg/dispatch"
	"github.com/subdispatch/subdispatch/pkg/log"
	"github.com/subdispatch/subdispatch/pkg/matches"
)

// command builds one subcommand of subdispatch together with the dispatch
// entry that runs it. Each file registers its command from init.
type command func() (*cobra.Command, dispatch.Entry)

var commands []command

func register(c command) {
	commands = append(commands, c)
}

// newRoot builds a fresh command tree and its dispatch table. The tree is
// rebuilt per invocation so that flag state never leaks between runs.
func newRoot() (*cobra.Command, *dispatch.Table, error) {
	root := &cobra.Command{
		Use:   "subdispatch",
		Short: "Generate exhaustive subcommand dispatchers for cobra programs",
		Long: `subdispatch reads a dispatch.yaml describing a command tree and a table of
dispatch arms, checks that the table covers every subcommand, and writes a Go
file that builds the cobra commands and routes each parsed invocation to a
handler.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().String("log-level", "warn", "Log level (debug, info, warn, error)")
	root.PersistentFlags().String("log-file", "", "Write logs to this file instead of stderr")
	root.SetOut(ui.Output)
	root.SetErr(ui.Output)

	var entries []dispatch.Entry
	for _, c := range commands {
		cmd, e := c()
		root.AddCommand(cmd)
		entries = append(entries, e)
	}
	table, err := dispatch.NewTable(entries...)
	if err != nil {
		return nil, nil, err
	}
	if err := matches.Verify(table, root); err != nil {
		return nil, nil, err
	}
	return root, table, nil
}

// Execute runs subdispatch with the process arguments and exits with its
// status. This is called by main.main().
func Execute() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	root, table, err := newRoot()
	if err != nil {
		// The command tree and its table are out of step.
		panic(err)
	}
	defer log.Close()

	err = matches.Run(root, args, func(m dispatch.Matches) error {
		level, _ := m.ValueOf("log-level")
		file, _ := m.ValueOf("log-file")
		if err := log.Init(file, level); err != nil {
			return err
		}
		if os.Getenv("NO_COLOR") != "" {
			ui.DisableColor()
		}
		log.Debug("dispatching", "args", args)
		return table.Dispatch(m)
	})
	switch {
	case err == nil:
		return 0
	case errors.Is(err, dispatch.ErrSubcommandRequired), errors.Is(err, errReported):
		return 1
	default:
		log.Error("command failed", "error", err)
		fmt.Fprintf(ui.Output, "Error: %v\n", err)
		return 1
	}
}

// errReported marks a failure whose details were already printed.
var errReported = errors.New("reported")
