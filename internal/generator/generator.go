package generator

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"golang.org/x/tools/imports"

	"github.com/subdispatch/subdispatch/internal/config"
	"github.com/subdispatch/subdispatch/internal/templates"
	"github.com/subdispatch/subdispatch/internal/version"
)

// Options contains optional settings for the code generation process.
type Options struct {
	// Dir is the directory Output is resolved against, normally the
	// directory of dispatch.yaml.
	Dir string
	// Output overrides cfg.Output when set.
	Output string
	// Source is the config file name recorded in the generated header.
	Source string
	// Version overrides the tool version in the header. Tests pin it.
	Version string
}

func (o Options) outputPath(cfg *config.Config) string {
	out := cfg.Output
	if o.Output != "" {
		out = o.Output
	}
	if filepath.IsAbs(out) {
		return out
	}
	return filepath.Join(o.Dir, out)
}

func (o Options) version() string {
	if o.Version != "" {
		return o.Version
	}
	return version.Version
}

// Render validates cfg and returns the formatted Go source of the
// dispatcher. The same cfg and options always produce the same bytes.
func Render(cfg *config.Config, opts Options) ([]byte, error) {
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}

	source := opts.Source
	if source == "" {
		source = "dispatch.yaml"
	}
	model, err := buildModel(cfg, filepath.ToSlash(source), opts.version())
	if err != nil {
		return nil, err
	}

	raw, err := renderTemplate(templates.Dispatcher, model, nil)
	if err != nil {
		return nil, err
	}

	out, err := imports.Process(cfg.Output, raw, &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	})
	if err != nil {
		return nil, fmt.Errorf("generated code does not parse: %w", err)
	}
	return out, nil
}

// Generate renders the dispatcher and writes it to the output path.
//
// Returns:
//   - string: The path written.
//   - error: An error if validation, rendering, or writing fails.
func Generate(cfg *config.Config, opts Options) (string, error) {
	content, err := Render(cfg, opts)
	if err != nil {
		return "", err
	}

	path := opts.outputPath(cfg)
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", err
		}
	}
	if err := os.WriteFile(path, content, 0644); err != nil {
		return "", err
	}
	slog.Debug("wrote dispatcher", "path", path, "bytes", len(content))
	return path, nil
}

// Stale reports whether the file at the output path differs from what
// Render would produce now. A missing file is stale.
func Stale(cfg *config.Config, opts Options) (bool, error) {
	want, err := Render(cfg, opts)
	if err != nil {
		return false, err
	}
	got, err := os.ReadFile(opts.outputPath(cfg))
	if os.IsNotExist(err) {
		return true, nil
	}
	if err != nil {
		return false, err
	}
	return !bytes.Equal(want, got), nil
}
