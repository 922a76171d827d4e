// Package destlock holds an advisory lock on the destination directory so
// only one figmover run writes into it at a time.
package destlock

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// LockName is the lock file created inside the destination directory.
const LockName = ".figmover.lock"

// ErrLocked is returned when another run already holds the lock.
var ErrLocked = errors.New("another figmover run is writing to this destination")

// Lock is a held destination lock. Release it when the batch is done.
type Lock struct {
	fl *flock.Flock
}

// Acquire takes the lock for destDir without blocking.
func Acquire(destDir string) (*Lock, error) {
	fl := flock.New(filepath.Join(destDir, LockName))
	ok, err := fl.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("%w (%s)", ErrLocked, fl.Path())
	}
	return &Lock{fl: fl}, nil
}

// Path returns the lock file path.
func (l *Lock) Path() string { return l.fl.Path() }

// Release unlocks. The lock file itself is left in place.
func (l *Lock) Release() error {
	if l == nil || l.fl == nil {
		return nil
	}
	return l.fl.Unlock()
}

// Held reports whether another run currently holds the lock on destDir.
// It never creates the lock file: a directory without one is unlocked.
func Held(destDir string) (bool, error) {
	path := filepath.Join(destDir, LockName)
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("stat lock: %w", err)
	}
	fl := flock.New(path)
	ok, err := fl.TryLock()
	if err != nil {
		return false, fmt.Errorf("probe lock: %w", err)
	}
	if !ok {
		return true, nil
	}
	return false, fl.Unlock()
}
