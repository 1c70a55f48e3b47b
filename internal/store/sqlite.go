package store

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"path/filepath"
	"sync"
	"time"

	"cloud.google.com/go/civil"
	"github.com/oklog/ulid/v2"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"

	"github.com/rcliao/memcurve/internal/ledger"
	"github.com/rcliao/memcurve/internal/model"
)

//go:embed migrations/*.sql
var migrations embed.FS

// goose keeps its configuration in package globals.
var migrateMu sync.Mutex

// SQLiteStore implements Store and HistoryStore using SQLite.
type SQLiteStore struct {
	db      *sql.DB
	path    string
	entropy *rand.Rand
}

// NewSQLiteStore opens or creates a SQLite database at the given path.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	s := &SQLiteStore{
		db:      db,
		path:    dbPath,
		entropy: rand.New(rand.NewSource(time.Now().UnixNano())),
	}

	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return s, nil
}

func (s *SQLiteStore) newID() string {
	return ulid.MustNew(ulid.Timestamp(time.Now()), s.entropy).String()
}

func (s *SQLiteStore) migrate() error {
	migrateMu.Lock()
	defer migrateMu.Unlock()

	goose.SetBaseFS(migrations)
	goose.SetLogger(gooseLogger{})
	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("set dialect: %w", err)
	}
	return goose.Up(s.db, "migrations")
}

func (s *SQLiteStore) Path() string { return s.path }

func (s *SQLiteStore) Load(ctx context.Context) (*ledger.Ledger, ledger.LoadReport, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT word, level, date FROM ledger ORDER BY seq, word`)
	if err != nil {
		return nil, ledger.LoadReport{}, fmt.Errorf("query ledger: %w", err)
	}
	defer rows.Close()

	// Values are validated with the same rules as file ledgers.
	var table [][]string
	for rows.Next() {
		var word, level, date string
		if err := rows.Scan(&word, &level, &date); err != nil {
			return nil, ledger.LoadReport{}, fmt.Errorf("scan ledger row: %w", err)
		}
		table = append(table, []string{word, level, date})
	}
	if err := rows.Err(); err != nil {
		return nil, ledger.LoadReport{}, err
	}

	l, report := ledger.FromRows(table)
	logReport(s.path, report)
	return l, report, nil
}

func (s *SQLiteStore) Save(ctx context.Context, l *ledger.Ledger) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM ledger`); err != nil {
		return fmt.Errorf("clear ledger: %w", err)
	}
	stmt, err := tx.PrepareContext(ctx, `INSERT INTO ledger (word, level, date, seq) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, r := range l.Records() {
		if _, err := stmt.ExecContext(ctx, r.Word, r.Level, r.Date.String(), i); err != nil {
			return fmt.Errorf("insert %s: %w", r.Word, err)
		}
	}
	return tx.Commit()
}

// AppendHistory writes one review log row per outcome.
func (s *SQLiteStore) AppendHistory(ctx context.Context, sessionID string, outcomes []model.SessionOutcome, date civil.Date) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, o := range outcomes {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO review_log (id, session_id, word, outcome, reviewed_on) VALUES (?, ?, ?, ?, ?)`,
			s.newID(), sessionID, o.Word, o.Outcome.String(), date.String())
		if err != nil {
			return fmt.Errorf("insert review log: %w", err)
		}
	}
	return tx.Commit()
}

// History returns the review log of word, oldest first.
func (s *SQLiteStore) History(ctx context.Context, word string) ([]HistoryEntry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, session_id, word, outcome, reviewed_on FROM review_log
		 WHERE word = ? ORDER BY reviewed_on, id`, word)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []HistoryEntry
	for rows.Next() {
		var e HistoryEntry
		var outcome, date string
		if err := rows.Scan(&e.ID, &e.SessionID, &e.Word, &outcome, &date); err != nil {
			return nil, err
		}
		if e.Outcome, err = model.ParseOutcome(outcome); err != nil {
			return nil, fmt.Errorf("review log %s: %w", e.ID, err)
		}
		if e.Date, err = civil.ParseDate(date); err != nil {
			return nil, fmt.Errorf("review log %s: %w", e.ID, err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// gooseLogger forwards migration output to slog.
type gooseLogger struct{}

func (gooseLogger) Printf(format string, v ...interface{}) {
	slog.Debug(fmt.Sprintf(format, v...))
}

func (gooseLogger) Fatalf(format string, v ...interface{}) {
	slog.Error(fmt.Sprintf(format, v...))
}
