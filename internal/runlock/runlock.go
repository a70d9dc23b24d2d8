// Package runlock keeps two docbatch runs from resetting the same output root.
package runlock

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	"github.com/ukaji3/docbatch-go/pkg/docbatch"
)

// Lock is a held run lock.
type Lock struct {
	path string
	lock *flock.Flock
}

// PathFor returns the lock file used for an output root. The file sits next
// to the root so the reset does not remove it.
func PathFor(outputDir string) string {
	return filepath.Clean(outputDir) + ".lock"
}

// Acquire takes the lock of outputDir without blocking.
// It returns docbatch.ErrRunInProgress when another process holds it.
func Acquire(outputDir string) (*Lock, error) {
	path := PathFor(outputDir)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("ensure lock directory: %w", err)
	}

	fl := flock.New(path)
	ok, err := fl.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s is locked", docbatch.ErrRunInProgress, path)
	}
	return &Lock{path: path, lock: fl}, nil
}

// Path returns the lock file path.
func (l *Lock) Path() string {
	return l.path
}

// Release unlocks and removes the lock file.
func (l *Lock) Release() error {
	if err := l.lock.Unlock(); err != nil {
		return err
	}
	if err := os.Remove(l.path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
