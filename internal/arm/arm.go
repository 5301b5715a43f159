// Package arm parses one dispatch-table entry written in the surface syntax
//
//	name(pattern, ARG as local, ...) => Handler
//
// and normalizes the shorthand forms: "name", "name()" and "name(_)" all
// mean no bindings with the subcommand matches ignored.
package arm

import (
	"fmt"
	"go/token"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Binding binds argument Arg to local name Local.
type Binding struct {
	Arg   string
	Local string
}

// Arm is a parsed entry.
type Arm struct {
	// Name is the subcommand name.
	Name string
	// Pattern names the subcommand matches; "_" when ignored.
	Pattern string
	// Bindings in declaration order.
	Bindings []Binding
	// Handler is the name after "=>", if any.
	Handler string
}

// Ignored reports whether the subcommand matches are not bound to a name.
func (a *Arm) Ignored() bool {
	return a.Pattern == "" || a.Pattern == "_"
}

// Locals returns the names a handler receives from this arm: the pattern,
// unless ignored, followed by the binding locals.
func (a *Arm) Locals() []string {
	var out []string
	if !a.Ignored() {
		out = append(out, a.Pattern)
	}
	for _, b := range a.Bindings {
		out = append(out, b.Local)
	}
	return out
}

// String renders a in canonical form.
func (a *Arm) String() string {
	var sb strings.Builder
	sb.WriteString(a.Name)
	sb.WriteString("(")
	if a.Ignored() {
		sb.WriteString("_")
	} else {
		sb.WriteString(a.Pattern)
	}
	for _, b := range a.Bindings {
		fmt.Fprintf(&sb, ", %s as %s", b.Arg, b.Local)
	}
	sb.WriteString(")")
	if a.Handler != "" {
		sb.WriteString(" => ")
		sb.WriteString(a.Handler)
	}
	return sb.String()
}

type armSyntax struct {
	Name    string        `parser:"@Ident"`
	Params  *paramsSyntax `parser:"( \"(\" @@? \")\" )?"`
	Handler string        `parser:"( \"=>\" @Ident )?"`
}

type paramsSyntax struct {
	Pattern  string           `parser:"@Ident"`
	Bindings []*bindingSyntax `parser:"( \",\" @@ )* \",\"?"`
}

type bindingSyntax struct {
	Arg   string `parser:"@Ident \"as\""`
	Local string `parser:"@Ident"`
}

var (
	armLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_-]*`},
		{Name: "Arrow", Pattern: `=>`},
		{Name: "Punct", Pattern: `[(),]`},
		{Name: "Whitespace", Pattern: `\s+`},
	})

	parser = participle.MustBuild[armSyntax](
		participle.Lexer(armLexer),
		participle.Elide("Whitespace"),
		participle.UseLookahead(2),
	)
)

// Parse parses and normalizes one entry.
func Parse(s string) (*Arm, error) {
	syn, err := parser.ParseString("", s)
	if err != nil {
		return nil, fmt.Errorf("invalid arm %q: %w", s, err)
	}

	a := &Arm{Name: syn.Name, Pattern: "_", Handler: syn.Handler}
	if syn.Params != nil {
		a.Pattern = syn.Params.Pattern
		for _, b := range syn.Params.Bindings {
			a.Bindings = append(a.Bindings, Binding{Arg: b.Arg, Local: b.Local})
		}
	}

	if !a.Ignored() {
		if err := checkLocal(a.Pattern); err != nil {
			return nil, fmt.Errorf("invalid arm %q: pattern %w", s, err)
		}
	}
	for _, b := range a.Bindings {
		if err := checkLocal(b.Local); err != nil {
			return nil, fmt.Errorf("invalid arm %q: local %w", s, err)
		}
	}
	if a.Handler != "" && !token.IsIdentifier(a.Handler) {
		return nil, fmt.Errorf("invalid arm %q: handler %q is not a Go identifier", s, a.Handler)
	}
	return a, nil
}

// checkLocal rejects names that cannot become Go identifiers in generated
// code.
func checkLocal(name string) error {
	if name == "_" {
		return fmt.Errorf("%q cannot be bound", name)
	}
	if !token.IsIdentifier(name) {
		return fmt.Errorf("%q is not a Go identifier", name)
	}
	if IsReserved(GoName(name)) {
		return fmt.Errorf("%q is reserved", name)
	}
	return nil
}
