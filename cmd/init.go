package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"

	"github.com/subdispatch/subdispatch/internal/config"
	"github.com/subdispatch/subdispatch/internal/generator"
	"github.com/subdispatch/subdispatch/internal/templates"
	"github.com/subdispatch/subdispatch/internal/ui"
	"github.com/subdispatch/subdispatch/pkg/dispatch"
	"github.com/subdispatch/subdispatch/pkg/log"
	"github.com/subdispatch/subdispatch/pkg/matches"
)

func init() {
	register(func() (*cobra.Command, dispatch.Entry) {
		initCmd := &cobra.Command{
			Use:   "init [dir]",
			Short: "Scaffold dispatch.yaml and main.go in a directory",
		}
		matches.DeclareArgs(initCmd, nil, []string{"DIR"})
		initCmd.Flags().StringP("name", "n", "", "Command name (defaults to the directory name)")

		return initCmd, dispatch.On("init", func(s dispatch.Scope) error {
			m := s.Matches()
			dir, ok := m.ValueOf("DIR")
			if !ok {
				dir = "."
			}
			name, _ := m.ValueOf("name")
			return runInit(dir, name)
		})
	})
}

// runInit scaffolds dispatch.yaml and main.go in dir. Existing files are
// never overwritten.
//
// Parameters:
//   - dir: The directory to create the files in. It is created if missing.
//   - name: The root command name. Empty means the base name of dir.
//
// Returns:
//   - error: An error if the name is invalid, a file exists, or writing fails.
func runInit(dir, name string) error {
	if name == "" {
		abs, err := filepath.Abs(dir)
		if err != nil {
			return err
		}
		name = filepath.Base(abs)
	}
	if !config.ValidCommandName(name) {
		return fmt.Errorf("%q is not a valid command name; pass --name", name)
	}

	scaffold, err := templates.Scaffold()
	if err != nil {
		return err
	}
	files := make([]string, 0, len(scaffold))
	for f := range scaffold {
		files = append(files, f)
	}
	sort.Strings(files)

	for _, f := range files {
		if _, err := os.Stat(filepath.Join(dir, f)); err == nil {
			return fmt.Errorf("%s already exists", filepath.Join(dir, f))
		}
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data := struct{ ProjectName string }{name}
	ui.PrintHeader(fmt.Sprintf("Initializing %s", name))
	for _, f := range files {
		path := filepath.Join(dir, f)
		if err := generator.ExecuteTemplate(scaffold[f], path, data); err != nil {
			return err
		}
		log.Info("created file", "path", path)
		ui.PrintSuccess("Created", path)
	}

	fmt.Fprintln(ui.Output, "\nNext steps:")
	if dir != "." {
		fmt.Fprintf(ui.Output, "  cd %s\n", dir)
	}
	fmt.Fprintln(ui.Output, "  subdispatch generate  # writes dispatch_gen.go")
	fmt.Fprintln(ui.Output, "  go run .")
	return nil
}
