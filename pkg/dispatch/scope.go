package dispatch

import (
	"strings"

	"github.com/benbjohnson/immutable"
)

// Scope is what a handler sees: the matches of the selected subcommand, the
// path of subcommands that led to it, and every local bound on the way.
//
// Scopes are values. Entering a nested table extends a copy, so a handler
// never observes bindings made for a sibling or a child.
type Scope struct {
	matches Matches
	path    []string
	locals  *immutable.SortedMap[string, string]
	handles *immutable.SortedMap[string, Matches]
}

// NewScope returns the scope of a top-level dispatch over m.
func NewScope(m Matches) Scope {
	return Scope{
		matches: m,
		locals:  immutable.NewSortedMap[string, string](nil),
		handles: immutable.NewSortedMap[string, Matches](nil),
	}
}

// Matches returns the matches of the innermost selected subcommand.
func (s Scope) Matches() Matches { return s.matches }

// Path returns the selected subcommand names, outermost first.
func (s Scope) Path() []string {
	return append([]string(nil), s.path...)
}

// Value returns the local bound to name, or "" when there is none.
func (s Scope) Value(name string) string {
	v, _ := s.Lookup(name)
	return v
}

// Lookup returns the local bound to name.
func (s Scope) Lookup(name string) (string, bool) {
	if s.locals == nil {
		return "", false
	}
	return s.locals.Get(name)
}

// Locals returns the names of all bound locals in sorted order.
func (s Scope) Locals() []string {
	if s.locals == nil {
		return nil
	}
	names := make([]string, 0, s.locals.Len())
	itr := s.locals.Iterator()
	for !itr.Done() {
		k, _, _ := itr.Next()
		names = append(names, k)
	}
	return names
}

// Handle returns the matches bound to a pattern name by an enclosing entry.
func (s Scope) Handle(pattern string) (Matches, bool) {
	if s.handles == nil {
		return nil, false
	}
	return s.handles.Get(pattern)
}

func (s Scope) String() string {
	return strings.Join(s.path, " ")
}

// enter extends s for entry e whose subcommand matches are sub.
func (s Scope) enter(e *Entry, sub Matches) Scope {
	next := Scope{
		matches: sub,
		path:    append(append(make([]string, 0, len(s.path)+1), s.path...), e.Name),
		locals:  s.locals,
		handles: s.handles,
	}
	if next.locals == nil {
		next.locals = immutable.NewSortedMap[string, string](nil)
	}
	if next.handles == nil {
		next.handles = immutable.NewSortedMap[string, Matches](nil)
	}
	for _, b := range e.Bindings {
		next.locals = next.locals.Set(b.Local, MustValue(sub, e.Name, b.Arg))
	}
	if !isIgnored(e.Pattern) {
		next.handles = next.handles.Set(e.Pattern, sub)
	}
	return next
}

func isIgnored(pattern string) bool {
	return pattern == "" || pattern == "_"
}
