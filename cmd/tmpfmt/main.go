// Purpose: Provide the program entrypoint and invoke command execution.
// Exports: main.
// Role: Binary entrypoint for the tmpfmt CLI.
// Invariants: Only delegates to execute(); version is injected via ldflags.
package main

// version is set at release time via ldflags
var version = "dev"

func main() {
	execute()
}
