// Package matches adapts cobra command trees to dispatch.Matches.
//
// cobra does the parsing. Capture runs a tree and records which command was
// selected together with its positional arguments and flags, producing a
// chain of Set values that a dispatch table or generated dispatcher can walk.
package matches

import (
	"sort"

	"github.com/subdispatch/subdispatch/pkg/dispatch"
)

// Set is one level of a parsed command line: the command's name, the values
// of its arguments, and the selected subcommand if there was one.
type Set struct {
	name   string
	values map[string]string
	sub    *Set
}

var _ dispatch.Matches = (*Set)(nil)

// New returns an empty Set for the command name.
func New(name string) *Set {
	return &Set{name: name, values: make(map[string]string)}
}

// WithValue sets an argument value and returns s.
func (s *Set) WithValue(name, value string) *Set {
	s.values[name] = value
	return s
}

// WithSubcommand marks sub as the selected subcommand and returns s.
func (s *Set) WithSubcommand(sub *Set) *Set {
	s.sub = sub
	return s
}

// Name returns the command name.
func (s *Set) Name() string { return s.name }

// Subcommand returns the selected subcommand's Set, or nil.
func (s *Set) Subcommand() *Set { return s.sub }

// SubcommandName implements dispatch.Matches.
func (s *Set) SubcommandName() (string, bool) {
	if s.sub == nil {
		return "", false
	}
	return s.sub.name, true
}

// SubcommandMatches implements dispatch.Matches.
func (s *Set) SubcommandMatches(name string) (dispatch.Matches, bool) {
	if s.sub == nil || s.sub.name != name {
		return nil, false
	}
	return s.sub, true
}

// ValueOf implements dispatch.Matches.
func (s *Set) ValueOf(name string) (string, bool) {
	v, ok := s.values[name]
	return v, ok
}

// Keys returns the names of all values in sorted order.
func (s *Set) Keys() []string {
	keys := make([]string, 0, len(s.values))
	for k := range s.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Path returns the command names from s down to the innermost selected
// subcommand.
func (s *Set) Path() []string {
	var path []string
	for cur := s; cur != nil; cur = cur.sub {
		path = append(path, cur.name)
	}
	return path
}
