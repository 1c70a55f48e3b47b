package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"

	"github.com/rcliao/memcurve/internal/ledger"
)

// ErrLocked is returned when another process holds the ledger lock for
// longer than LockTimeout.
var ErrLocked = errors.New("ledger is locked by another session")

// LockTimeout bounds how long Commit waits for the ledger lock.
var LockTimeout = 10 * time.Second

// Commit runs one load, update, save cycle on st while holding an exclusive
// lock on <path>.lock. fn receives the ledger as currently stored, so
// concurrent sessions never overwrite each other's results.
func Commit(ctx context.Context, st Store, fn func(old *ledger.Ledger) (*ledger.Ledger, error)) (*ledger.Ledger, error) {
	lockPath := st.Path() + ".lock"
	if err := os.MkdirAll(filepath.Dir(lockPath), 0o755); err != nil {
		return nil, fmt.Errorf("create lock dir: %w", err)
	}

	fl := flock.New(lockPath)
	lockCtx, cancel := context.WithTimeout(ctx, LockTimeout)
	defer cancel()
	locked, err := fl.TryLockContext(lockCtx, 50*time.Millisecond)
	if !locked {
		if err == nil || errors.Is(err, context.DeadlineExceeded) {
			return nil, ErrLocked
		}
		return nil, fmt.Errorf("lock %s: %w", lockPath, err)
	}
	defer fl.Unlock()

	old, _, err := st.Load(ctx)
	if err != nil {
		return nil, err
	}
	next, err := fn(old)
	if err != nil {
		return nil, err
	}
	if err := st.Save(ctx, next); err != nil {
		return nil, err
	}
	return next, nil
}
