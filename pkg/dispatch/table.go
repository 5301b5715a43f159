package dispatch

import (
	"errors"
	"fmt"
	"log/slog"
)

// Binding binds the value of argument Arg to the local name Local.
type Binding struct {
	Arg   string
	Local string
}

// Bind is shorthand for Binding{Arg: arg, Local: local}.
func Bind(arg, local string) Binding {
	return Binding{Arg: arg, Local: local}
}

// Handler runs for a selected subcommand.
type Handler func(s Scope) error

// Entry is one row of a dispatch table. Exactly one of Handler and Table is
// set; a Table entry dispatches again over the subcommand's own matches.
//
// Pattern names the subcommand matches for handlers further down the tree
// (see Scope.Handle). Empty or "_" leaves them unnamed.
type Entry struct {
	Name     string
	Pattern  string
	Bindings []Binding
	Handler  Handler
	Table    *Table
}

// On returns an entry running h for the subcommand name.
func On(name string, h Handler, bindings ...Binding) Entry {
	return Entry{Name: name, Handler: h, Bindings: bindings}
}

// Nest returns an entry dispatching over t for the subcommand name.
func Nest(name string, t *Table, bindings ...Binding) Entry {
	return Entry{Name: name, Table: t, Bindings: bindings}
}

// As returns a copy of e whose subcommand matches are bound to pattern.
func (e Entry) As(pattern string) Entry {
	e.Pattern = pattern
	return e
}

// Table maps subcommand names to entries. It is immutable once built and may
// be used from several goroutines.
type Table struct {
	entries []Entry
	index   map[string]int
}

// NewTable builds a table from entries.
func NewTable(entries ...Entry) (*Table, error) {
	t := &Table{
		entries: make([]Entry, 0, len(entries)),
		index:   make(map[string]int, len(entries)),
	}
	for _, e := range entries {
		if e.Name == "" {
			return nil, errors.New("dispatch: entry with empty name")
		}
		if _, dup := t.index[e.Name]; dup {
			return nil, fmt.Errorf("dispatch: duplicate entry %q", e.Name)
		}
		switch {
		case e.Handler == nil && e.Table == nil:
			return nil, fmt.Errorf("dispatch: entry %q has neither handler nor table", e.Name)
		case e.Handler != nil && e.Table != nil:
			return nil, fmt.Errorf("dispatch: entry %q has both handler and table", e.Name)
		}
		e.Bindings = append([]Binding(nil), e.Bindings...)
		t.index[e.Name] = len(t.entries)
		t.entries = append(t.entries, e)
	}
	if err := t.checkScope(nil); err != nil {
		return nil, err
	}
	return t, nil
}

// MustTable is like NewTable but panics on error.
func MustTable(entries ...Entry) *Table {
	t, err := NewTable(entries...)
	if err != nil {
		panic(err)
	}
	return t
}

// checkScope rejects locals and patterns that are already bound by an
// enclosing entry or twice by the same entry.
func (t *Table) checkScope(outer map[string]bool) error {
	for _, e := range t.entries {
		seen := make(map[string]bool, len(outer)+len(e.Bindings)+1)
		for k := range outer {
			seen[k] = true
		}
		names := make([]string, 0, len(e.Bindings)+1)
		if !isIgnored(e.Pattern) {
			names = append(names, e.Pattern)
		}
		for _, b := range e.Bindings {
			if b.Arg == "" || b.Local == "" {
				return fmt.Errorf("dispatch: entry %q has an incomplete binding", e.Name)
			}
			names = append(names, b.Local)
		}
		for _, n := range names {
			if seen[n] {
				return fmt.Errorf("dispatch: entry %q binds %q which is already in scope", e.Name, n)
			}
			seen[n] = true
		}
		if e.Table != nil {
			if err := e.Table.checkScope(seen); err != nil {
				return err
			}
		}
	}
	return nil
}

// Names returns the entry names in the order they were given.
func (t *Table) Names() []string {
	names := make([]string, len(t.entries))
	for i, e := range t.entries {
		names[i] = e.Name
	}
	return names
}

// Lookup returns the entry for name.
func (t *Table) Lookup(name string) (Entry, bool) {
	i, ok := t.index[name]
	if !ok {
		return Entry{}, false
	}
	return t.entries[i], true
}

// Dispatch runs the entry selected by m and returns its handler's error.
//
// With no subcommand selected it calls SubcommandRequired. A selected
// subcommand without an entry panics with an *InvariantError, as does a
// bound argument without a value.
func (t *Table) Dispatch(m Matches) error {
	return t.DispatchScope(NewScope(m))
}

// DispatchScope is Dispatch for a table nested under s. The locals already
// bound in s stay visible to the selected handler.
func (t *Table) DispatchScope(s Scope) error {
	name, ok := s.matches.SubcommandName()
	if !ok {
		slog.Debug("no subcommand selected", "path", s.String())
		return SubcommandRequired()
	}
	i, found := t.index[name]
	if !found {
		panic(Unhandled(name))
	}
	e := &t.entries[i]
	sub := MustSubcommand(s.matches, name)
	next := s.enter(e, sub)
	slog.Debug("dispatching", "path", next.String(), "locals", len(e.Bindings))

	if e.Table != nil {
		return e.Table.DispatchScope(next)
	}
	return e.Handler(next)
}
