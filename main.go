package main

import "github.com/subdispatch/subdispatch/cmd"

// main is the entry point of the subdispatch CLI. Its own subcommands are
// routed through a dispatch table like the programs it generates for.
func main() {
	cmd.Execute()
}
