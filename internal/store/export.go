package store

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/rcliao/memcurve/internal/ledger"
	"github.com/rcliao/memcurve/internal/model"
)

// Document is the portable export form of a ledger.
type Document struct {
	ExportedAt string      `json:"exported_at" yaml:"exported_at"`
	Records    []RecordDoc `json:"records" yaml:"records"`
}

// RecordDoc is one exported ledger record.
type RecordDoc struct {
	Word  string `json:"word" yaml:"word"`
	Level int    `json:"level" yaml:"level"`
	Date  string `json:"date" yaml:"date"`
}

// ExportAll returns every record of l as a Document.
func ExportAll(l *ledger.Ledger) Document {
	doc := Document{
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
		Records:    []RecordDoc{},
	}
	for _, r := range l.Records() {
		doc.Records = append(doc.Records, RecordDoc{Word: r.Word, Level: r.Level, Date: r.Date.String()})
	}
	return doc
}

// Encode renders doc as "json" or "yaml".
func Encode(doc Document, format string) ([]byte, error) {
	switch format {
	case "json", "":
		return json.MarshalIndent(doc, "", "  ")
	case "yaml", "yml":
		return yaml.Marshal(doc)
	}
	return nil, fmt.Errorf("unknown export format %q (use json or yaml)", format)
}

// Decode parses a document produced by Encode. YAML is a superset of JSON,
// so one decoder reads both.
func Decode(data []byte) ([]model.LedgerRecord, ledger.LoadReport, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, ledger.LoadReport{}, fmt.Errorf("parse document: %w", err)
	}

	var report ledger.LoadReport
	records := make([]model.LedgerRecord, 0, len(doc.Records))
	for i, d := range doc.Records {
		report.Rows++
		r, err := ledger.ParseRow([]string{d.Word, strconv.Itoa(d.Level), d.Date})
		if err != nil {
			report.Skipped = append(report.Skipped, ledger.RowError{Row: i + 1, Err: err.Error()})
			continue
		}
		records = append(records, r)
	}
	return records, report, nil
}

// Import stores records from an export under the commit lock. Each record
// replaces any existing record for the same word. Returns the number stored.
func Import(ctx context.Context, st Store, records []model.LedgerRecord) (int, error) {
	_, err := Commit(ctx, st, func(old *ledger.Ledger) (*ledger.Ledger, error) {
		return old.With(records...), nil
	})
	if err != nil {
		return 0, err
	}
	return len(records), nil
}
