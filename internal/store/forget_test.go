package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rcliao/memcurve/internal/ledger"
)

func TestForget(t *testing.T) {
	ctx := context.Background()
	s, err := NewFileStore(filepath.Join(t.TempDir(), "memory_curve.csv"))
	require.NoError(t, err)
	require.NoError(t, s.Save(ctx, ledger.New(rec("cat", 1, day1), rec("dog", 2, day1))))

	require.NoError(t, Forget(ctx, s, "cat"))

	l, _, err := s.Load(ctx)
	require.NoError(t, err)
	_, ok := l.Get("cat")
	assert.False(t, ok)
	assert.Equal(t, 1, l.Len())
}

func TestForgetUnknownWord(t *testing.T) {
	ctx := context.Background()
	s, err := NewFileStore(filepath.Join(t.TempDir(), "memory_curve.csv"))
	require.NoError(t, err)

	err = Forget(ctx, s, "ghost")
	assert.ErrorIs(t, err, ErrWordNotFound)
}
