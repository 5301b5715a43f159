package generator

import (
	"fmt"
	"strings"

	"github.com/subdispatch/subdispatch/internal/arm"
	"github.com/subdispatch/subdispatch/internal/config"
)

// fileModel is the data passed to dispatch.go.tmpl.
type fileModel struct {
	Package  string
	Version  string
	Source   string
	RootName string
	Commands []*commandModel
	Handlers []*handlerModel
	Table    *tableModel
}

// commandModel is one cobra.Command in NewCommand, in creation order.
type commandModel struct {
	Var        string
	Parent     string
	Path       string
	Use        string
	Short      string
	Long       string
	Required   []string
	Optional   []string
	Persistent bool
	Flags      []config.Flag
}

// handlerModel is one method of the Handlers interface.
type handlerModel struct {
	Method string
	Path   string
	Params []paramModel
}

type paramModel struct {
	Name string
	Type string
	// Expr is the expression passed for the parameter in Dispatch.
	Expr string
}

// tableModel is one switch over a matches variable.
type tableModel struct {
	Depth int
	Cases []*caseModel
}

type caseModel struct {
	Name     string
	SubVar   string
	NeedsVar bool
	Bindings []bindModel
	Call     *handlerModel
	Nested   *tableModel
}

type bindModel struct {
	Var string
	Arg string
}

// buildModel turns a validated config into template data.
func buildModel(cfg *config.Config, source, ver string) (*fileModel, error) {
	fm := &fileModel{
		Package:  cfg.Package,
		Version:  ver,
		Source:   source,
		RootName: cfg.Command.Name,
	}
	fm.addCommand(&cfg.Command, "", cfg.Command.Name)

	t, err := fm.buildTable(cfg.Dispatch, &cfg.Command, cfg.Command.Name, 0, nil)
	if err != nil {
		return nil, err
	}
	fm.Table = t
	return fm, nil
}

func (fm *fileModel) addCommand(cmd *config.Command, parent, path string) {
	cm := &commandModel{
		Var:        fmt.Sprintf("cmd%d", len(fm.Commands)),
		Parent:     parent,
		Path:       path,
		Use:        useLine(cmd),
		Short:      cmd.Short,
		Long:       longHelp(cmd),
		Persistent: len(cmd.Subcommands) > 0,
		Flags:      cmd.Flags,
	}
	for _, a := range cmd.Args {
		if a.Required {
			cm.Required = append(cm.Required, a.Name)
		} else {
			cm.Optional = append(cm.Optional, a.Name)
		}
	}
	fm.Commands = append(fm.Commands, cm)

	for i := range cmd.Subcommands {
		sub := &cmd.Subcommands[i]
		fm.addCommand(sub, cm.Var, path+" "+sub.Name)
	}
}

func useLine(cmd *config.Command) string {
	parts := []string{cmd.Name}
	for _, a := range cmd.Args {
		if a.Required {
			parts = append(parts, a.Name)
		} else {
			parts = append(parts, "["+a.Name+"]")
		}
	}
	return strings.Join(parts, " ")
}

// longHelp appends argument descriptions to the command's long help.
func longHelp(cmd *config.Command) string {
	var described []config.Arg
	for _, a := range cmd.Args {
		if a.Description != "" {
			described = append(described, a)
		}
	}
	if len(described) == 0 {
		return cmd.Long
	}

	var sb strings.Builder
	if cmd.Long != "" {
		sb.WriteString(cmd.Long)
		sb.WriteString("\n\n")
	}
	sb.WriteString("Arguments:")
	for _, a := range described {
		fmt.Fprintf(&sb, "\n  %s\t%s", a.Name, a.Description)
	}
	return sb.String()
}

// buildTable builds the switch for one dispatch level over m<depth>. scope
// holds the parameters bound by enclosing entries.
func (fm *fileModel) buildTable(arms []config.Arm, cmd *config.Command, path string, depth int, scope []paramModel) (*tableModel, error) {
	t := &tableModel{Depth: depth}
	subVar := fmt.Sprintf("m%d", depth+1)

	for i := range arms {
		a, err := arm.Parse(arms[i].Arm)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		c := &caseModel{Name: a.Name, SubVar: subVar}
		subPath := path + " " + a.Name

		inner := append([]paramModel(nil), scope...)
		if !a.Ignored() {
			inner = append(inner, paramModel{Name: arm.GoName(a.Pattern), Type: "dispatch.Matches", Expr: subVar})
		}
		for _, b := range a.Bindings {
			v := arm.GoName(b.Local)
			c.Bindings = append(c.Bindings, bindModel{Var: v, Arg: b.Arg})
			inner = append(inner, paramModel{Name: v, Type: "string", Expr: v})
		}

		handler := arms[i].Handler
		if handler == "" {
			handler = a.Handler
		}
		if handler != "" {
			h := &handlerModel{Method: handler, Path: subPath, Params: inner}
			fm.Handlers = append(fm.Handlers, h)
			c.Call = h
		} else {
			sub := cmd.FindSubcommand(a.Name)
			if sub == nil {
				return nil, fmt.Errorf("%s: dispatch entry %q names no subcommand", path, a.Name)
			}
			nested, err := fm.buildTable(arms[i].Dispatch, sub, subPath, depth+1, inner)
			if err != nil {
				return nil, err
			}
			c.Nested = nested
		}

		c.NeedsVar = c.Nested != nil || len(c.Bindings) > 0 || !a.Ignored()
		t.Cases = append(t.Cases, c)
	}
	return t, nil
}

// FlagLines returns the statements declaring the command's flags.
// Commands with subcommands declare persistent flags so they may also be
// given after a subcommand name.
func (c *commandModel) FlagLines() []string {
	set, mark := "Flags", "MarkFlagRequired"
	if c.Persistent {
		set, mark = "PersistentFlags", "MarkPersistentFlagRequired"
	}

	var lines []string
	for _, f := range c.Flags {
		if f.Shorthand != "" {
			lines = append(lines, fmt.Sprintf("%s.%s().StringP(%q, %q, %q, %q)", c.Var, set, f.Name, f.Shorthand, f.Default, f.Usage))
		} else {
			lines = append(lines, fmt.Sprintf("%s.%s().String(%q, %q, %q)", c.Var, set, f.Name, f.Default, f.Usage))
		}
		if f.Required {
			lines = append(lines, fmt.Sprintf("cobra.CheckErr(%s.%s(%q))", c.Var, mark, f.Name))
		}
	}
	return lines
}
