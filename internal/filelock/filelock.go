// Package filelock guards a sync run against concurrent invocations over the
// same root.
package filelock

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// RunLock is an advisory lock held for the duration of one sync run.
type RunLock struct {
	flock *flock.Flock
	path  string
}

// Acquire takes the run lock at path without blocking. A lock already held
// by another process is an error: two runs against the same root must not
// interleave uploads.
func Acquire(path string) (*RunLock, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create lock directory %s: %w", dir, err)
	}

	fl := flock.New(path)
	acquired, err := fl.TryLock()
	if err != nil {
		return nil, fmt.Errorf("failed to acquire lock on %s: %w", path, err)
	}
	if !acquired {
		return nil, fmt.Errorf("another sync run holds the lock at %s", path)
	}

	return &RunLock{flock: fl, path: path}, nil
}

// Path returns the lock file location.
func (l *RunLock) Path() string {
	return l.path
}

// Release drops the lock.
func (l *RunLock) Release() error {
	if err := l.flock.Unlock(); err != nil {
		return fmt.Errorf("failed to release lock on %s: %w", l.path, err)
	}
	return nil
}
