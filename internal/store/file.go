package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/rcliao/memcurve/internal/ledger"
	"github.com/rcliao/memcurve/internal/tabular"
)

// SheetName is the worksheet XLSX ledgers are written to.
const SheetName = "Memory"

// FileStore keeps the ledger in a CSV, TSV or XLSX file with a
// Word, Level, Date header.
type FileStore struct {
	path   string
	format tabular.Format
}

// NewFileStore returns a store for path. The file need not exist.
func NewFileStore(path string) (*FileStore, error) {
	format, err := tabular.FormatOf(path)
	if err != nil {
		return nil, fmt.Errorf("ledger %s: %w", path, err)
	}
	return &FileStore{path: path, format: format}, nil
}

func (s *FileStore) Path() string { return s.path }

func (s *FileStore) Load(_ context.Context) (*ledger.Ledger, ledger.LoadReport, error) {
	rows, err := tabular.Read(s.path, SheetName)
	if errors.Is(err, os.ErrNotExist) {
		return ledger.New(), ledger.LoadReport{}, nil
	}
	if err != nil {
		return nil, ledger.LoadReport{}, fmt.Errorf("read ledger %s: %w", s.path, err)
	}
	l, report := ledger.FromRows(rows)
	logReport(s.path, report)
	return l, report, nil
}

func (s *FileStore) Save(_ context.Context, l *ledger.Ledger) error {
	if err := tabular.Write(s.path, SheetName, l.Rows()); err != nil {
		return fmt.Errorf("write ledger %s: %w", s.path, err)
	}
	return nil
}

func (s *FileStore) Close() error { return nil }

func logReport(path string, report ledger.LoadReport) {
	for _, e := range report.Skipped {
		slog.Warn("skipping malformed ledger row", "path", path, "row", e.Row, "err", e.Err)
	}
	if len(report.Duplicates) > 0 {
		slog.Warn("ledger repeats words, keeping last row", "path", path, "words", report.Duplicates)
	}
}
