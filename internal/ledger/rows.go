package ledger

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"cloud.google.com/go/civil"

	"github.com/rcliao/memcurve/internal/model"
)

// Header is the column layout of a persisted ledger.
var Header = []string{"Word", "Level", "Date"}

// RowError describes a ledger row that was skipped on load.
type RowError struct {
	Row int    `json:"row"`
	Err string `json:"error"`
}

// LoadReport summarises what a load kept and what it had to skip.
type LoadReport struct {
	Rows       int        `json:"rows"`
	Skipped    []RowError `json:"skipped,omitempty"`
	Duplicates []string   `json:"duplicates,omitempty"`
}

var (
	errColumns = errors.New("expected Word, Level and Date columns")
	errWord    = errors.New("empty word")
	errLevel   = errors.New("level must be a non-negative integer")
)

// FromRows parses tabular rows into a ledger. A leading header row is
// recognised and skipped. Rows that cannot be parsed are left out and listed
// in the report instead of failing the load. Row numbers in the report are
// 1-based and count the header.
func FromRows(rows [][]string) (*Ledger, LoadReport) {
	var report LoadReport
	var records []model.LedgerRecord
	seen := make(map[string]bool)

	for i, row := range rows {
		if i == 0 && isHeader(row) {
			continue
		}
		if isBlank(row) {
			continue
		}
		report.Rows++
		rec, err := ParseRow(row)
		if err != nil {
			report.Skipped = append(report.Skipped, RowError{Row: i + 1, Err: err.Error()})
			continue
		}
		if seen[rec.Word] {
			report.Duplicates = append(report.Duplicates, rec.Word)
		}
		seen[rec.Word] = true
		records = append(records, rec)
	}
	return New(records...), report
}

// ParseRow parses one Word, Level, Date row.
func ParseRow(row []string) (model.LedgerRecord, error) {
	row = trimTrailingEmpty(row)
	if len(row) != len(Header) {
		return model.LedgerRecord{}, fmt.Errorf("%w, got %d", errColumns, len(row))
	}
	word := strings.TrimSpace(row[0])
	if word == "" {
		return model.LedgerRecord{}, errWord
	}
	level, err := strconv.Atoi(strings.TrimSpace(row[1]))
	if err != nil || level < 0 {
		return model.LedgerRecord{}, fmt.Errorf("%w: %q", errLevel, row[1])
	}
	date, err := ParseDate(row[2])
	if err != nil {
		return model.LedgerRecord{}, err
	}
	return model.LedgerRecord{Word: word, Level: level, Date: date}, nil
}

func trimTrailingEmpty(row []string) []string {
	n := len(row)
	for n > 0 && strings.TrimSpace(row[n-1]) == "" {
		n--
	}
	return row[:n]
}

// ParseDate accepts YYYY-MM-DD, also tolerating a trailing time of day as
// spreadsheet tools sometimes write.
func ParseDate(s string) (civil.Date, error) {
	s = strings.TrimSpace(s)
	if d, err := civil.ParseDate(s); err == nil {
		return d, nil
	}
	for _, layout := range []string{"2006-01-02 15:04:05", time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return civil.DateOf(t), nil
		}
	}
	return civil.Date{}, fmt.Errorf("invalid date %q (want %s)", s, model.DateLayout)
}

// Rows renders the ledger with its header, ready for tabular.Write.
func (l *Ledger) Rows() [][]any {
	rows := make([][]any, 0, l.Len()+1)
	rows = append(rows, []any{Header[0], Header[1], Header[2]})
	for _, r := range l.Records() {
		rows = append(rows, []any{r.Word, r.Level, r.Date.String()})
	}
	return rows
}

func isHeader(row []string) bool {
	if len(row) < len(Header) {
		return false
	}
	for i, h := range Header {
		if !strings.EqualFold(strings.TrimSpace(row[i]), h) {
			return false
		}
	}
	return true
}

func isBlank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
