// Terminal-mode tests: run the binary on a pseudo-terminal so TTY
// detection takes the interactive branch.
package main

import (
	"bytes"
	"errors"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"syscall"
	"testing"

	"github.com/creack/pty"
)

// runOnPTY runs the binary with stdio attached to a pty and returns
// everything it wrote.
func runOnPTY(t *testing.T, dir string, args ...string) string {
	t.Helper()
	cmd := exec.Command(tmpfmtBinary, args...)
	cmd.Dir = dir
	ptmx, err := pty.StartWithSize(cmd, &pty.Winsize{Rows: 40, Cols: 120})
	if err != nil {
		t.Skipf("pty unavailable: %v", err)
	}
	defer ptmx.Close()

	var buf bytes.Buffer
	_, err = io.Copy(&buf, ptmx)
	// Linux reports EIO on the master once the child side closes.
	if err != nil && !errors.Is(err, syscall.EIO) {
		t.Fatalf("read pty: %v", err)
	}
	if err := cmd.Wait(); err != nil {
		t.Fatalf("wait: %v\n%s", err, buf.String())
	}
	return buf.String()
}

func TestPTY_HelpIsColored(t *testing.T) {
	out := runOnPTY(t, t.TempDir(), "--help")
	if !strings.Contains(out, "\x1b[1m") {
		t.Fatalf("expected bold escape in TTY help, got %q", out)
	}
	if strings.Contains(out, "{{") {
		t.Fatalf("markers leaked into help: %q", out)
	}
}

func TestPTY_PreviewUsesANSI(t *testing.T) {
	dir := t.TempDir()
	doc := `[[{"text":"warn"},{"bold":true},{"color":"red"}]]`
	if err := os.WriteFile(filepath.Join(dir, "doc.json"), []byte(doc), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	out := runOnPTY(t, dir, "preview", "doc.json")
	if !strings.Contains(out, "warn") || !strings.Contains(out, "\x1b[") {
		t.Fatalf("expected styled preview, got %q", out)
	}
}

func TestPTY_NeverDisablesColor(t *testing.T) {
	dir := t.TempDir()
	doc := `[[{"text":"warn"},{"bold":true}]]`
	if err := os.WriteFile(filepath.Join(dir, "doc.json"), []byte(doc), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	out := runOnPTY(t, dir, "--color", "never", "preview", "doc.json")
	if strings.Contains(out, "\x1b[") {
		t.Fatalf("expected plain preview with --color never, got %q", out)
	}
}
