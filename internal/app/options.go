// Global CLI options shared by every command.
package app

import "fmt"

type GlobalOptions struct {
	ConfigPath string
	Strict     bool
	JSON       bool
	Quiet      bool
	Verbose    bool
	Color      string // auto|always|never
}

const (
	colorAuto   = "auto"
	colorAlways = "always"
	colorNever  = "never"
)

// useColor resolves --color against the stdout terminal state.
func useColor(opts GlobalOptions) (bool, error) {
	switch opts.Color {
	case "", colorAuto:
		return stdoutIsTTY(), nil
	case colorAlways:
		return true, nil
	case colorNever:
		return false, nil
	default:
		return false, fmt.Errorf("usage: --color must be auto, always, or never (got %q)", opts.Color)
	}
}
