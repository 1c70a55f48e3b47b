// Package store persists the review ledger. Ledgers live in CSV or XLSX
// files, or in a SQLite database that also keeps a review log.
package store

import (
	"context"
	"errors"
	"path/filepath"
	"strings"

	"cloud.google.com/go/civil"

	"github.com/rcliao/memcurve/internal/ledger"
	"github.com/rcliao/memcurve/internal/model"
)

// ErrNoHistory is returned by history queries on stores without a review log.
var ErrNoHistory = errors.New("review history requires a SQLite ledger (.db)")

// Store defines the ledger storage interface.
type Store interface {
	// Path is the location of the ledger; the commit lock lives beside it.
	Path() string

	// Load reads the whole ledger. A ledger that does not exist yet loads
	// as empty. Unreadable rows are skipped and listed in the report.
	Load(ctx context.Context) (*ledger.Ledger, ledger.LoadReport, error)

	// Save replaces the stored ledger with l.
	Save(ctx context.Context, l *ledger.Ledger) error

	// Close releases the store.
	Close() error
}

// HistoryEntry is one row of the review log.
type HistoryEntry struct {
	ID        string        `json:"id"`
	SessionID string        `json:"session_id"`
	Word      string        `json:"word"`
	Outcome   model.Outcome `json:"outcome"`
	Date      civil.Date    `json:"date"`
}

// HistoryStore is implemented by stores that keep every session outcome.
type HistoryStore interface {
	AppendHistory(ctx context.Context, sessionID string, outcomes []model.SessionOutcome, date civil.Date) error
	History(ctx context.Context, word string) ([]HistoryEntry, error)
}

// Open picks a store implementation from the file extension: .db, .sqlite
// and .sqlite3 open SQLite, anything tabular.FormatOf accepts opens a file.
func Open(path string) (Store, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		return NewSQLiteStore(path)
	}
	return NewFileStore(path)
}
