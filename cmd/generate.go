package cmd

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/subdispatch/subdispatch/internal/config"
	"github.com/subdispatch/subdispatch/internal/generator"
	"github.com/subdispatch/subdispatch/internal/ui"
	"github.com/subdispatch/subdispatch/pkg/dispatch"
)

const defaultConfig = "dispatch.yaml"

func init() {
	register(func() (*cobra.Command, dispatch.Entry) {
		generateCmd := &cobra.Command{
			Use:   "generate",
			Short: "Generate the dispatcher from dispatch.yaml",
		}
		generateCmd.Flags().StringP("config", "c", defaultConfig, "Path to the dispatch configuration")
		generateCmd.Flags().StringP("output", "o", "", "Output file (overrides the configured output)")

		return generateCmd, dispatch.On("generate", func(s dispatch.Scope) error {
			output, _ := s.Matches().ValueOf("output")
			return runGenerate(s.Value("config"), output)
		}, dispatch.Bind("config", "config"))
	})
}

// options derives generator options for the configuration at configPath.
// A relative output override is taken relative to the working directory.
func options(configPath, output string) (generator.Options, error) {
	opts := generator.Options{
		Dir:    filepath.Dir(configPath),
		Source: filepath.Base(configPath),
	}
	if output != "" {
		abs, err := filepath.Abs(output)
		if err != nil {
			return opts, err
		}
		opts.Output = abs
	}
	return opts, nil
}

// runGenerate loads and validates the configuration and writes the
// dispatcher.
//
// Returns:
//   - error: An error if loading, validation, or generation fails.
func runGenerate(configPath, output string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	opts, err := options(configPath, output)
	if err != nil {
		return err
	}
	path, err := generator.Generate(cfg, opts)
	if err != nil {
		return err
	}
	ui.PrintSuccess("Generated", path)
	return nil
}
