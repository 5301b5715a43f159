package ui

import (
	"bytes"
	"testing"
)

func TestPrintLines(t *testing.T) {
	var buf bytes.Buffer
	prev := Output
	Output = &buf
	defer func() { Output = prev }()
	DisableColor()

	PrintSuccess("Generated", "dispatch_gen.go")
	PrintTree(1, "sub(_)")

	want := "  ✔ Generated       dispatch_gen.go\n    sub(_)\n"
	if got := buf.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}
