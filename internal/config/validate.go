package config

import (
	"fmt"
	"go/token"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/subdispatch/subdispatch/internal/arm"
)

var commandNameRegex = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_-]*$`)

// ValidCommandName reports whether name can be used as a command name.
func ValidCommandName(name string) bool {
	return commandNameRegex.MatchString(name) && name != "help" && name != "completion"
}

// Validate checks the configuration for errors. Beyond the shape of the
// command tree it checks that the dispatch table is complete: every
// subcommand at a dispatched level has exactly one entry, every entry names
// a real subcommand, and every binding refers to an argument whose presence
// the command definition guarantees.
//
// Parameters:
//   - config: The Config object to validate.
//
// Returns:
//   - error: The first problem found, or nil.
func Validate(config *Config) error {
	if !packageNameRegex.MatchString(config.Package) || token.IsKeyword(config.Package) {
		return fmt.Errorf("invalid package name: %q", config.Package)
	}
	if config.Output == "" || filepath.Ext(config.Output) != ".go" {
		return fmt.Errorf("output must be a .go file, got %q", config.Output)
	}
	if config.Command.Name == "" {
		return fmt.Errorf("command name cannot be empty")
	}
	if err := validateCommand(&config.Command, config.Command.Name); err != nil {
		return err
	}
	if len(config.Dispatch) == 0 {
		return fmt.Errorf("dispatch table cannot be empty")
	}
	if len(config.Command.Subcommands) == 0 {
		return fmt.Errorf("command %q has no subcommands to dispatch on", config.Command.Name)
	}

	v := &tableValidator{handlers: make(map[string]string)}
	return v.table(config.Dispatch, &config.Command, config.Command.Name, nil)
}

func validateCommand(cmd *Command, path string) error {
	if !commandNameRegex.MatchString(cmd.Name) {
		return fmt.Errorf("%s: invalid command name %q", path, cmd.Name)
	}

	names := make(map[string]bool)
	optionalSeen := false
	for _, a := range cmd.Args {
		if !commandNameRegex.MatchString(a.Name) || strings.Contains(a.Name, ",") {
			return fmt.Errorf("%s: invalid argument name %q", path, a.Name)
		}
		if names[a.Name] {
			return fmt.Errorf("%s: duplicate argument or flag %q", path, a.Name)
		}
		names[a.Name] = true
		if a.Required && optionalSeen {
			return fmt.Errorf("%s: required argument %q follows an optional one", path, a.Name)
		}
		if !a.Required {
			optionalSeen = true
		}
	}
	if len(cmd.Args) > 0 && len(cmd.Subcommands) > 0 {
		return fmt.Errorf("%s: a command with subcommands cannot take positional arguments", path)
	}

	shorthands := make(map[string]bool)
	for _, f := range cmd.Flags {
		if !commandNameRegex.MatchString(f.Name) || f.Name == "help" {
			return fmt.Errorf("%s: invalid flag name %q", path, f.Name)
		}
		if names[f.Name] {
			return fmt.Errorf("%s: duplicate argument or flag %q", path, f.Name)
		}
		names[f.Name] = true
		if f.Shorthand != "" {
			if len(f.Shorthand) != 1 || f.Shorthand == "h" {
				return fmt.Errorf("%s: flag %q: invalid shorthand %q", path, f.Name, f.Shorthand)
			}
			if shorthands[f.Shorthand] {
				return fmt.Errorf("%s: duplicate shorthand %q", path, f.Shorthand)
			}
			shorthands[f.Shorthand] = true
		}
	}

	subs := make(map[string]bool)
	for i := range cmd.Subcommands {
		sub := &cmd.Subcommands[i]
		if sub.Name == "help" || sub.Name == "completion" {
			return fmt.Errorf("%s: subcommand name %q is reserved", path, sub.Name)
		}
		if subs[sub.Name] {
			return fmt.Errorf("%s: duplicate subcommand %q", path, sub.Name)
		}
		subs[sub.Name] = true
		if err := validateCommand(sub, path+" "+sub.Name); err != nil {
			return err
		}
	}
	return nil
}

type tableValidator struct {
	// handlers maps handler names to the path that uses them.
	handlers map[string]string
}

// table validates one dispatch level against cmd. scope holds the Go names
// of locals bound by enclosing entries.
func (v *tableValidator) table(arms []Arm, cmd *Command, path string, scope []string) error {
	seen := make(map[string]bool)
	for i := range arms {
		a, err := arm.Parse(arms[i].Arm)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		if seen[a.Name] {
			return fmt.Errorf("%s: duplicate dispatch entry %q", path, a.Name)
		}
		seen[a.Name] = true

		sub := cmd.FindSubcommand(a.Name)
		if sub == nil {
			return fmt.Errorf("%s: dispatch entry %q names no subcommand", path, a.Name)
		}
		subPath := path + " " + a.Name

		for _, b := range a.Bindings {
			if !guaranteed(sub, b.Arg) {
				return fmt.Errorf("%s: argument %q is not guaranteed to be present (bind only required arguments or flags with defaults)", subPath, b.Arg)
			}
		}

		inner := append([]string(nil), scope...)
		for _, local := range a.Locals() {
			goName := arm.GoName(local)
			if arm.IsReserved(goName) {
				return fmt.Errorf("%s: local %q is reserved", subPath, local)
			}
			for _, s := range inner {
				if s == goName {
					return fmt.Errorf("%s: local %q is already in scope", subPath, local)
				}
			}
			inner = append(inner, goName)
		}

		handler := a.Handler
		if arms[i].Handler != "" {
			if handler != "" && handler != arms[i].Handler {
				return fmt.Errorf("%s: handler given twice (%q and %q)", subPath, handler, arms[i].Handler)
			}
			handler = arms[i].Handler
		}

		switch {
		case handler != "" && len(arms[i].Dispatch) > 0:
			return fmt.Errorf("%s: entry has both a handler and a nested dispatch table", subPath)
		case handler != "":
			if !token.IsIdentifier(handler) {
				return fmt.Errorf("%s: handler %q is not a Go identifier", subPath, handler)
			}
			if prev, dup := v.handlers[handler]; dup {
				return fmt.Errorf("%s: handler %q is already used by %s", subPath, handler, prev)
			}
			v.handlers[handler] = subPath
		case len(arms[i].Dispatch) > 0:
			if len(sub.Subcommands) == 0 {
				return fmt.Errorf("%s: nested dispatch table but the command has no subcommands", subPath)
			}
			if err := v.table(arms[i].Dispatch, sub, subPath, inner); err != nil {
				return err
			}
		default:
			return fmt.Errorf("%s: entry has neither a handler nor a nested dispatch table", subPath)
		}
	}

	for _, sub := range cmd.Subcommands {
		if !seen[sub.Name] {
			return fmt.Errorf("%s: subcommand %q has no dispatch entry", path, sub.Name)
		}
	}
	return nil
}

// guaranteed reports whether name always has a value once cmd is selected.
func guaranteed(cmd *Command, name string) bool {
	for _, a := range cmd.Args {
		if a.Name == name {
			return a.Required
		}
	}
	for _, f := range cmd.Flags {
		if f.Name == name {
			return f.Required || f.Default != ""
		}
	}
	return false
}
