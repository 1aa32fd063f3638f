// Purpose: Write rendered markup to files under an advisory lock.
// Exports: ErrLockBusy.
// Role: Lets several renders share one output file (--out/--append).
// Invariants: Lock acquisition is non-blocking; the lock file sits next
// to the output as <out>.lock.
// Notes: The lock file is not state and is recreated on demand.
package app

import (
	"errors"
	"fmt"
	"os"
	"syscall"
)

// ErrLockBusy reports that another render holds the output file's lock.
var ErrLockBusy = errors.New("output file is locked by another render")

func lockPathFor(out string) string {
	return out + ".lock"
}

// lockOutput runs fn while holding an exclusive flock on out's lock file.
// It never waits: a held lock returns ErrLockBusy immediately.
func lockOutput(out string, fn func() error) error {
	path := lockPathFor(out)
	lock, err := openLockFile(path)
	if err != nil {
		return err
	}
	defer lock.Close()

	fd := int(lock.Fd())
	if err := syscall.Flock(fd, syscall.LOCK_EX|syscall.LOCK_NB); err != nil {
		if errors.Is(err, syscall.EWOULDBLOCK) || errors.Is(err, syscall.EAGAIN) {
			return fmt.Errorf("%s: %w", out, ErrLockBusy)
		}
		return fmt.Errorf("lock %s: %w", path, err)
	}
	defer func() {
		_ = syscall.Flock(fd, syscall.LOCK_UN)
	}()
	return fn()
}

// openLockFile opens (creating if needed) the lock file beside an output.
func openLockFile(path string) (*os.File, error) {
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return nil, fmt.Errorf("lock file %s is a directory", path)
	}
	f, err := os.OpenFile(path, os.O_RDONLY|os.O_CREATE, 0644)
	if err != nil {
		return nil, fmt.Errorf("open lock file: %w", err)
	}
	return f, nil
}

// writeOutputFile replaces (or appends to) out while holding its lock.
func writeOutputFile(out string, data []byte, appendMode bool) error {
	return lockOutput(out, func() error {
		flags := os.O_CREATE | os.O_WRONLY | os.O_TRUNC
		if appendMode {
			flags = os.O_CREATE | os.O_WRONLY | os.O_APPEND
		}
		file, err := os.OpenFile(out, flags, 0644)
		if err != nil {
			return err
		}
		if err := writeAll(file, data); err != nil {
			file.Close()
			return err
		}
		return file.Close()
	})
}

func writeAll(w *os.File, data []byte) error {
	for len(data) > 0 {
		n, err := w.Write(data)
		if err != nil {
			return err
		}
		data = data[n:]
	}
	return nil
}
