package dispatch_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/subdispatch/subdispatch/pkg/dispatch"
	"github.com/subdispatch/subdispatch/pkg/matches"
)

func TestMustValue(t *testing.T) {
	m := matches.New("run").WithValue("FILE", "a.txt")
	if got := dispatch.MustValue(m, "run", "FILE"); got != "a.txt" {
		t.Errorf("MustValue() = %q, want a.txt", got)
	}

	ie := expectInvariant(t, func() { dispatch.MustValue(m, "run", "OTHER") })
	if got, want := ie.Error(), "internal error: argument OTHER of subcommand run not present"; got != want {
		t.Errorf("message = %q, want %q", got, want)
	}
}

func TestUnhandled(t *testing.T) {
	err := error(dispatch.Unhandled("deploy"))
	var ie *dispatch.InvariantError
	if !errors.As(err, &ie) || ie.Kind != dispatch.UnhandledSubcommand {
		t.Fatalf("Unhandled() = %#v", err)
	}
	if ie.Kind.String() != "unhandled subcommand" {
		t.Errorf("Kind.String() = %q", ie.Kind.String())
	}
}

func TestSetReporter_Restore(t *testing.T) {
	var first, second bytes.Buffer
	restoreFirst := dispatch.SetReporter(dispatch.Reporter{Out: &first, Exit: func(int) {}})
	restoreSecond := dispatch.SetReporter(dispatch.Reporter{Out: &second, Exit: func(int) {}})

	_ = dispatch.SubcommandRequired()
	restoreSecond()
	_ = dispatch.SubcommandRequired()
	restoreFirst()

	if second.String() != dispatch.UsageHint+"\n" {
		t.Errorf("second reporter got %q", second.String())
	}
	if first.String() != dispatch.UsageHint+"\n" {
		t.Errorf("first reporter got %q", first.String())
	}
}
