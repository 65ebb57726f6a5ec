package utils

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

const (
	lockFilePrefix = "ycindex-"
	lockFileSuffix = ".lock"
)

// OutputLock manages a file-based lock guarding a single output file.
type OutputLock struct {
	lock *flock.Flock
	path string
}

// NewOutputLock creates a new lock for the given output path. The lock file
// lives in the system temp dir, keyed by the absolute output path, so the
// output directory only ever holds published files.
func NewOutputLock(outPath string) (*OutputLock, error) {
	absPath, err := filepath.Abs(outPath)
	if err != nil {
		return nil, fmt.Errorf("could not get absolute output path: %w", err)
	}
	sum := sha1.Sum([]byte(absPath))
	lockPath := filepath.Join(os.TempDir(), lockFilePrefix+hex.EncodeToString(sum[:])+lockFileSuffix)
	return &OutputLock{
		lock: flock.New(lockPath),
		path: lockPath,
	}, nil
}

// Lock acquires the lock, waiting if necessary.
// It logs a message if it has to wait.
func (l *OutputLock) Lock() error {
	locked, err := l.lock.TryLock()
	if err != nil {
		return fmt.Errorf("failed to acquire lock on %s: %w", l.path, err)
	}

	if !locked {
		Log.Warnf("Another ycindex process is writing %s, waiting for it to finish...", l.path)
		if err := l.lock.Lock(); err != nil {
			return fmt.Errorf("failed to acquire lock on %s after waiting: %w", l.path, err)
		}
	}
	return nil
}

// Unlock releases the lock.
func (l *OutputLock) Unlock() error {
	if err := l.lock.Unlock(); err != nil {
		// Suppress error if the lock file doesn't exist, as it means we don't hold the lock.
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to release lock on %s: %w", l.path, err)
	}
	return nil
}
