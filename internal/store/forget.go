package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/rcliao/memcurve/internal/ledger"
)

// ErrWordNotFound is returned when a word has no ledger record.
var ErrWordNotFound = errors.New("word not in ledger")

// Forget removes word's record from the ledger under the commit lock. The
// word becomes unseen and is due again immediately.
func Forget(ctx context.Context, st Store, word string) error {
	_, err := Commit(ctx, st, func(old *ledger.Ledger) (*ledger.Ledger, error) {
		next, ok := old.Without(word)
		if !ok {
			return nil, fmt.Errorf("%q: %w", word, ErrWordNotFound)
		}
		return next, nil
	})
	return err
}
