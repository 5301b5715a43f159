package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestRunInit verifies that init scaffolds the expected files and refuses to
// run twice in the same directory.
func TestRunInit(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "my-tool")

	code, out := capture(t, "init", dir)
	if code != 0 {
		t.Fatalf("init exit code = %d, output:\n%s", code, out)
	}
	for _, f := range []string{"dispatch.yaml", "main.go"} {
		if _, err := os.Stat(filepath.Join(dir, f)); err != nil {
			t.Errorf("expected file %s not created: %v", f, err)
		}
		if !strings.Contains(out, filepath.Join(dir, f)) {
			t.Errorf("output does not list %s:\n%s", f, out)
		}
	}
	if _, err := os.Stat(filepath.Join(dir, "dispatch.go")); err == nil {
		t.Error("init wrote the dispatcher template as a scaffold file")
	}
	data, err := os.ReadFile(filepath.Join(dir, "dispatch.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "name: my-tool") {
		t.Errorf("dispatch.yaml does not name the command after the directory:\n%s", data)
	}

	code, out = capture(t, "init", dir)
	if code != 1 {
		t.Errorf("second init exit code = %d, want 1", code)
	}
	if !strings.Contains(out, "already exists") {
		t.Errorf("second init output = %q", out)
	}
}

func TestRunInit_Name(t *testing.T) {
	dir := t.TempDir()
	if code, out := capture(t, "init", dir, "--name", "greeter"); code != 0 {
		t.Fatalf("init exit code = %d, output:\n%s", code, out)
	}
	data, err := os.ReadFile(filepath.Join(dir, "dispatch.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "name: greeter") {
		t.Errorf("dispatch.yaml ignores --name:\n%s", data)
	}
}

func TestRunInit_InvalidName(t *testing.T) {
	tests := []string{"has space", "help", "9lives"}
	for _, name := range tests {
		t.Run(name, func(t *testing.T) {
			dir := t.TempDir()
			if err := runInit(dir, name); err == nil {
				t.Errorf("runInit(%q) succeeded, want error", name)
			}
			if _, err := os.Stat(filepath.Join(dir, "dispatch.yaml")); err == nil {
				t.Error("dispatch.yaml written despite invalid name")
			}
		})
	}
}
