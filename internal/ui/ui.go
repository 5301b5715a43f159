// Package ui prints the status lines of the subdispatch command.
package ui

import (
	"fmt"
	"io"
	"os"
)

var (
	// ANSI Colors
	ColorReset  = "\033[0m"
	ColorRed    = "\033[31m"
	ColorGreen  = "\033[32m"
	ColorYellow = "\033[33m"
	ColorCyan   = "\033[36m"
	ColorBold   = "\033[1m"
)

// Output is where status lines go.
var Output io.Writer = os.Stdout

// DisableColor clears the color codes, for NO_COLOR and non-terminals.
func DisableColor() {
	ColorReset, ColorRed, ColorGreen, ColorYellow, ColorCyan, ColorBold = "", "", "", "", "", ""
}

func PrintHeader(msg string) {
	fmt.Fprintf(Output, "\n%s%s%s\n", ColorBold, msg, ColorReset)
}

func PrintSuccess(label, detail string) {
	fmt.Fprintf(Output, "  %s✔%s %-15s %s%s\n", ColorGreen, ColorReset, label, ColorGreen, detail+ColorReset)
}

func PrintError(label, detail string) {
	fmt.Fprintf(Output, "  %s✘%s %-15s %s%s\n", ColorRed, ColorReset, label, ColorRed, detail+ColorReset)
}

func PrintWarning(label, detail string) {
	fmt.Fprintf(Output, "  %s!%s %-15s %s%s\n", ColorYellow, ColorReset, label, ColorYellow, detail+ColorReset)
}

// PrintTree prints one line of an indented tree.
func PrintTree(depth int, text string) {
	fmt.Fprintf(Output, "  %*s%s%s%s\n", depth*2, "", ColorCyan, text, ColorReset)
}
