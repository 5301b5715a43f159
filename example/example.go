// Package example is a small program dispatched by generated code: "test sub
// subsub TEST_ARG" records its argument and "test othersub" fails.
package example

//go:generate go run github.com/subdispatch/subdispatch generate

import (
	"errors"
	"fmt"
	"io"

	"github.com/subdispatch/subdispatch/pkg/dispatch"
)

// ErrFail is returned by the othersub handler.
var ErrFail = errors.New("othersub always fails")

// App implements Handlers and remembers what it was asked to record.
type App struct {
	Out      io.Writer
	Recorded []string
}

func (a *App) Record(subMatches dispatch.Matches, testArg string) error {
	a.Recorded = append(a.Recorded, testArg)
	if a.Out != nil {
		fmt.Fprintf(a.Out, "recorded %s\n", testArg)
	}
	return nil
}

func (a *App) Fail() error {
	return ErrFail
}
