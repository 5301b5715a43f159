package cmd

import (
	"fmt"
	"strconv"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"github.com/subdispatch/subdispatch/internal/arm"
	"github.com/subdispatch/subdispatch/internal/config"
	"github.com/subdispatch/subdispatch/internal/generator"
	"github.com/subdispatch/subdispatch/internal/ui"
	"github.com/subdispatch/subdispatch/pkg/dispatch"
	"github.com/subdispatch/subdispatch/pkg/log"
)

func init() {
	register(func() (*cobra.Command, dispatch.Entry) {
		checkCmd := &cobra.Command{
			Use:   "check",
			Short: "Validate dispatch.yaml and report whether the generated file is current",
		}
		checkCmd.Flags().StringP("config", "c", defaultConfig, "Path to the dispatch configuration")
		checkCmd.Flags().StringP("output", "o", "", "Generated file to compare (overrides the configured output)")
		checkCmd.Flags().Bool("dump", false, "Dump the parsed configuration")

		return checkCmd, dispatch.On("check", func(s dispatch.Scope) error {
			dump, err := strconv.ParseBool(s.Value("dump"))
			if err != nil {
				return fmt.Errorf("invalid --dump value: %w", err)
			}
			output, _ := s.Matches().ValueOf("output")
			return runCheck(s.Value("config"), output, dump)
		}, dispatch.Bind("config", "config"), dispatch.Bind("dump", "dump"))
	})
}

// runCheck validates the configuration, prints its dispatch tree, and
// compares the generated file against a fresh render. Invalid or stale
// configurations are reported and fail.
func runCheck(configPath, output string, dump bool) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if dump {
		spew.Fdump(ui.Output, cfg)
	}

	ui.PrintHeader(fmt.Sprintf("Checking %s", configPath))
	if err := config.Validate(cfg); err != nil {
		log.Error("invalid configuration", "config", configPath, "error", err)
		ui.PrintError("Invalid", err.Error())
		return errReported
	}
	ui.PrintSuccess("Valid", cfg.Command.Name)
	printArms(cfg.Dispatch, 0)

	opts, err := options(configPath, output)
	if err != nil {
		return err
	}
	stale, err := generator.Stale(cfg, opts)
	if err != nil {
		return err
	}
	if stale {
		log.Warn("generated file is stale", "config", configPath, "output", cfg.Output)
		ui.PrintWarning("Stale", "run subdispatch generate")
		return errReported
	}
	ui.PrintSuccess("Up to date", cfg.Output)
	return nil
}

// printArms prints a validated table in canonical arm syntax.
func printArms(arms []config.Arm, depth int) {
	for _, a := range arms {
		parsed, err := arm.Parse(a.Arm)
		if err != nil {
			continue
		}
		if parsed.Handler == "" {
			parsed.Handler = a.Handler
		}
		ui.PrintTree(depth, parsed.String())
		printArms(a.Dispatch, depth+1)
	}
}
