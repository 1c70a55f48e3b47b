package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rcliao/memcurve/internal/ledger"
	"github.com/rcliao/memcurve/internal/model"
)

func TestFileStoreMissingFileIsEmpty(t *testing.T) {
	s, err := NewFileStore(filepath.Join(t.TempDir(), "memory_curve.csv"))
	require.NoError(t, err)

	l, report, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, l.Len())
	assert.Zero(t, report.Rows)
}

func TestFileStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	for _, name := range []string{"memory_curve.csv", "memory_curve.xlsx"} {
		t.Run(name, func(t *testing.T) {
			s, err := NewFileStore(filepath.Join(t.TempDir(), name))
			require.NoError(t, err)

			want := ledger.New(rec("cat", 1, day1), rec("dog", 0, day2))
			require.NoError(t, s.Save(ctx, want))

			got, report, err := s.Load(ctx)
			require.NoError(t, err)
			assert.Empty(t, report.Skipped)
			assert.Equal(t, want.Records(), got.Records())
		})
	}
}

func TestFileStoreWritesHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "memory_curve.csv")
	s, err := NewFileStore(path)
	require.NoError(t, err)
	require.NoError(t, s.Save(context.Background(), ledger.New(rec("cat", 0, day1))))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Word,Level,Date\ncat,0,2024-05-01\n", string(b))
}

func TestFileStoreSkipsMalformedRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "memory_curve.csv")
	require.NoError(t, os.WriteFile(path, []byte(
		"Word,Level,Date\ncat,1,2024-05-01\ndog,one,2024-05-01\nemu,2,05/01/2024\n"), 0o644))
	s, err := NewFileStore(path)
	require.NoError(t, err)

	l, report, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []model.LedgerRecord{rec("cat", 1, day1)}, l.Records())
	require.Len(t, report.Skipped, 2)
	assert.Equal(t, 3, report.Skipped[0].Row)
	assert.Equal(t, 4, report.Skipped[1].Row)
}

func TestNewFileStoreRejectsUnknownExtension(t *testing.T) {
	_, err := NewFileStore("ledger.xls")
	assert.Error(t, err)
}

func TestFileStoreHeaderWithByteOrderMark(t *testing.T) {
	path := filepath.Join(t.TempDir(), "memory_curve.csv")
	require.NoError(t, os.WriteFile(path, []byte("\ufeffWord,Level,Date\ncat,1,2024-05-01\n"), 0o644))
	s, err := NewFileStore(path)
	require.NoError(t, err)

	l, report, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, report.Skipped)
	assert.Equal(t, []model.LedgerRecord{rec("cat", 1, day1)}, l.Records())
}
