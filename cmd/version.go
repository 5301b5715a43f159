package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/subdispatch/subdispatch/internal/ui"
	"github.com/subdispatch/subdispatch/internal/version"
	"github.com/subdispatch/subdispatch/pkg/dispatch"
)

func init() {
	register(func() (*cobra.Command, dispatch.Entry) {
		versionCmd := &cobra.Command{
			Use:   "version",
			Short: "Print the version number of subdispatch",
		}
		return versionCmd, dispatch.On("version", func(dispatch.Scope) error {
			fmt.Fprintf(ui.Output, "subdispatch %s\n", version.Version)
			return nil
		})
	})
}
