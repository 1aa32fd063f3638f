// Tests for locked output writes.
// Focus: replace vs append semantics and fail-fast on a held lock.
package app

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWriteOutputFile_ReplacesThenAppends(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.txt")

	if err := writeOutputFile(out, []byte("<b>one</b>"), false); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := writeOutputFile(out, []byte("<b>two</b>"), false); err != nil {
		t.Fatalf("rewrite: %v", err)
	}
	if err := writeOutputFile(out, []byte("<i>three</i>"), true); err != nil {
		t.Fatalf("append: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if got, want := string(data), "<b>two</b><i>three</i>"; got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
	if _, err := os.Stat(lockPathFor(out)); err != nil {
		t.Fatalf("expected lock file next to output: %v", err)
	}
}

func TestWriteOutputFile_FailsFastWhenLocked(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.txt")

	err := lockOutput(out, func() error {
		return writeOutputFile(out, []byte("x"), false)
	})
	if !errors.Is(err, ErrLockBusy) {
		t.Fatalf("expected ErrLockBusy, got %v", err)
	}
	if _, statErr := os.Stat(out); !os.IsNotExist(statErr) {
		t.Fatalf("output should not be written while locked, stat err=%v", statErr)
	}
}

func TestWriteOutputFile_LockPathIsDirectory(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.txt")
	if err := os.Mkdir(lockPathFor(out), 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	err := writeOutputFile(out, []byte("x"), false)
	if err == nil || !strings.Contains(err.Error(), "is a directory") {
		t.Fatalf("expected lock directory error, got %v", err)
	}
}
