// Purpose: Provide CLI error formatting and hints.
// Exports: none (package-private helpers).
// Role: Shared error/exit utilities for the cmd package.
// Invariants: exitErr always exits with code 1 after printing.
// Notes: With --json, document errors are printed to stdout as JSON.
package main

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/sandover/tmpfmt/internal/app"
)

func exitErr(err error, opts *app.GlobalOptions) {
	if verr, ok := app.ValidationDetails(err); ok && opts != nil && opts.JSON {
		_ = verr.WriteJSON(os.Stdout)
		os.Exit(1)
	}
	fmt.Fprintln(os.Stderr, "error:", err)
	if opts == nil || !opts.Quiet {
		if hint := hintFor(err); hint != "" {
			fmt.Fprintln(os.Stderr, "hint:", hint)
		}
	}
	os.Exit(1)
}

func hintFor(err error) string {
	switch {
	case strings.HasPrefix(err.Error(), "usage:"):
		return "run `tmpfmt --help`"
	case errors.Is(err, app.ErrLockBusy):
		return "another process is writing the output file; retry"
	case isPermissionError(err):
		return "permission error; check the file permissions"
	case isDocumentError(err):
		return "run `tmpfmt quickstart` for the document format"
	}
	return ""
}

func isDocumentError(err error) bool {
	_, ok := app.ValidationDetails(err)
	return ok
}

func isPermissionError(err error) bool {
	if err == nil {
		return false
	}
	if os.IsPermission(err) || errors.Is(err, os.ErrPermission) {
		return true
	}
	return errors.Is(err, syscall.EPERM) || errors.Is(err, syscall.EACCES)
}
