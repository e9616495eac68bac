// Package lockfile provides the advisory lock that serializes mutating
// invocations against a shared ledger. The lock uses flock(2), so it is
// released automatically if the process dies mid-operation.
package lockfile

import (
	"os"
	"path/filepath"
	"syscall"

	"github.com/Elsie19/vapor/pkg/errors"
	"github.com/Elsie19/vapor/pkg/logging"
)

// Lock is a held advisory lock.
type Lock struct {
	path string
	file *os.File
}

// Acquire takes an exclusive, non-blocking lock on the given path.
// A second concurrent mutating invocation fails fast with LOCK_HELD
// rather than blocking, so filesystem moves never interleave.
func Acquire(path string) (*Lock, error) {
	logger := logging.GetLogger("lockfile")

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, errors.Wrap(err, errors.ErrIO, "failed to create lock directory").
			WithDetail("path", filepath.Dir(path))
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, 0644)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrIO, "failed to open lock file").
			WithDetail("path", path)
	}

	if err := syscall.Flock(int(file.Fd()), syscall.LOCK_EX|syscall.LOCK_NB); err != nil {
		_ = file.Close()
		if err == syscall.EWOULDBLOCK {
			return nil, errors.New(errors.ErrLockHeld, "another vapor operation is in progress").
				WithDetail("path", path)
		}
		return nil, errors.Wrap(err, errors.ErrIO, "failed to acquire lock").
			WithDetail("path", path)
	}

	logger.Debug().Str("path", path).Msg("Lock acquired")
	return &Lock{path: path, file: file}, nil
}

// Release drops the lock. Safe to call on a nil lock.
func (l *Lock) Release() {
	if l == nil || l.file == nil {
		return
	}
	_ = syscall.Flock(int(l.file.Fd()), syscall.LOCK_UN) // ignore unlock errors
	_ = l.file.Close()
	l.file = nil
}
