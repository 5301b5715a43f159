package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"gopkg.in/yaml.v3"
)

// Config represents the top-level structure parsed from dispatch.yaml.
// It holds the command definition the generated cobra tree is built from
// and the dispatch table that routes its subcommands to handlers.
type Config struct {
	// Package is the package name of the generated file.
	Package string `yaml:"package"`
	// Output is the generated file path, relative to the dispatch.yaml directory.
	Output string `yaml:"output"`
	// Command is the root command definition.
	Command Command `yaml:"command"`
	// Dispatch is the top-level dispatch table.
	Dispatch []Arm `yaml:"dispatch"`
}

// Command defines one command of the tree.
type Command struct {
	// Name is the command name as typed on the command line.
	Name string `yaml:"name"`
	// Short is the one-line help text.
	Short string `yaml:"short"`
	// Long is the full help text.
	Long string `yaml:"long"`
	// Args are the positional arguments, required ones first.
	Args []Arg `yaml:"args"`
	// Flags are the command's own flags.
	Flags []Flag `yaml:"flags"`
	// Subcommands of this command.
	Subcommands []Command `yaml:"subcommands"`
}

// Arg is a named positional argument.
type Arg struct {
	// Name is the name bindings refer to.
	Name string `yaml:"name"`
	// Required arguments must be given on the command line.
	Required bool `yaml:"required"`
	// Description is shown in help output.
	Description string `yaml:"description"`
}

// Flag is a string flag.
type Flag struct {
	Name      string `yaml:"name"`
	Shorthand string `yaml:"shorthand"`
	Default   string `yaml:"default"`
	Usage     string `yaml:"usage"`
	Required  bool   `yaml:"required"`
}

// Arm is one dispatch-table entry. Arm holds the surface syntax
// `name(pattern, ARG as local, ...) [=> Handler]`; the handler may instead be
// given in Handler. Exactly one of a handler and a nested Dispatch is set.
type Arm struct {
	// Arm is the entry in surface syntax.
	Arm string `yaml:"arm"`
	// Handler is the Handlers method called for this entry.
	Handler string `yaml:"handler"`
	// Dispatch is a nested table over the subcommand's own subcommands.
	Dispatch []Arm `yaml:"dispatch"`
}

// FindSubcommand returns the direct subcommand called name.
func (c *Command) FindSubcommand(name string) *Command {
	for i := range c.Subcommands {
		if c.Subcommands[i].Name == name {
			return &c.Subcommands[i]
		}
	}
	return nil
}

// Load reads and parses the file at path, then applies defaults.
// It does not validate.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filepath.Base(path), err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
	}

	ApplyDefaults(&cfg)
	return &cfg, nil
}

// ApplyDefaults sets default values for configuration fields that are missing.
func ApplyDefaults(config *Config) {
	if config.Package == "" {
		config.Package = "main"
	}
	if config.Output == "" {
		config.Output = "dispatch_gen.go"
	}
}

var packageNameRegex = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)
