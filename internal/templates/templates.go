// Package templates embeds the text/template sources used by the generator
// and the init command.
package templates

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
)

// Dispatcher is the template of the generated dispatch file. Every other
// template is a scaffold file written by init.
const Dispatcher = "dispatch.go.tmpl"

//go:embed *.tmpl
var templatesFS embed.FS

// Get returns the content of the specified template file.
func Get(name string) (string, error) {
	content, err := templatesFS.ReadFile(name)
	if err != nil {
		return "", fmt.Errorf("template %s not found: %w", name, err)
	}
	return string(content), nil
}

// Names lists the embedded templates.
func Names() ([]string, error) {
	return fs.Glob(templatesFS, "*.tmpl")
}

// Scaffold lists the templates init writes, keyed by the file name each
// one produces.
func Scaffold() (map[string]string, error) {
	names, err := Names()
	if err != nil {
		return nil, err
	}
	out := make(map[string]string, len(names))
	for _, n := range names {
		if n == Dispatcher {
			continue
		}
		out[strings.TrimSuffix(n, ".tmpl")] = n
	}
	return out, nil
}
