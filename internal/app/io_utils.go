// Purpose: Detect terminal state and read command input.
// Exports: none (package-private helpers).
// Role: I/O behavior toggles for color, preview and stdin documents.
// Invariants: Returns false on stat errors (conservative default).
// Notes: A TTY stdin is never read, so commands do not block waiting on it.
package app

import (
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// stdinIsPiped returns true if stdin has piped input (not a terminal).
func stdinIsPiped() bool {
	info, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) == 0
}

// stdoutIsTTY returns true if stdout is a terminal (supports color, interactive).
func stdoutIsTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// terminalWidth returns the stdout width, or fallback when unavailable.
func terminalWidth(fallback int) int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return fallback
	}
	return width
}

var errNoInput = errors.New("usage: no input: pass a file or pipe a document to stdin")

// readInput reads path, or stdin when path is "" or "-".
func readInput(path string) ([]byte, error) {
	if path != "" && path != "-" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		return data, nil
	}
	if !stdinIsPiped() {
		return nil, errNoInput
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}
	return data, nil
}
