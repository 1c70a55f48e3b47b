// Package catalog loads the read-only vocabulary list drilled by memcurve.
package catalog

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/rcliao/memcurve/internal/model"
	"github.com/rcliao/memcurve/internal/tabular"
)

var (
	// ErrEmptyCatalog is returned when a source yields no words.
	ErrEmptyCatalog = errors.New("catalog has no words")
	// ErrMalformedRow is returned for rows that carry data but no word.
	ErrMalformedRow = errors.New("malformed catalog row")
)

// Catalog is an immutable, ordered list of word entries. Words are unique:
// when a source repeats a word the first occurrence is kept.
type Catalog struct {
	entries    []model.WordEntry
	index      map[string]int
	duplicates []string
}

// New builds a catalog from entries, dropping repeated words.
func New(entries []model.WordEntry) *Catalog {
	c := &Catalog{index: make(map[string]int, len(entries))}
	for _, e := range entries {
		if _, dup := c.index[e.Word]; dup {
			c.duplicates = append(c.duplicates, e.Word)
			continue
		}
		c.index[e.Word] = len(c.entries)
		c.entries = append(c.entries, e)
	}
	return c
}

// Load reads a catalog file. Each row holds word, phonetic and meaning in
// that order with no header. Any failure here is fatal for a session.
func Load(path string) (*Catalog, error) {
	rows, err := tabular.Read(path, "")
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	entries, err := parseRows(rows)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	c := New(entries)
	if len(c.duplicates) > 0 {
		slog.Warn("catalog repeats words, keeping first occurrence",
			"path", path, "duplicates", c.duplicates)
	}
	return c, nil
}

func parseRows(rows [][]string) ([]model.WordEntry, error) {
	var entries []model.WordEntry
	for i, row := range rows {
		cells := make([]string, 3)
		blank := true
		for j := 0; j < len(row) && j < 3; j++ {
			cells[j] = strings.TrimSpace(row[j])
			if cells[j] != "" {
				blank = false
			}
		}
		if blank {
			continue
		}
		if cells[0] == "" {
			return nil, fmt.Errorf("%w: row %d has no word", ErrMalformedRow, i+1)
		}
		entries = append(entries, model.WordEntry{
			Word:     cells[0],
			Phonetic: cells[1],
			Meaning:  cells[2],
		})
	}
	if len(entries) == 0 {
		return nil, ErrEmptyCatalog
	}
	return entries, nil
}

// Len returns the number of distinct words.
func (c *Catalog) Len() int { return len(c.entries) }

// Entries returns the words in source order. Callers must not modify it.
func (c *Catalog) Entries() []model.WordEntry { return c.entries }

// Lookup finds a word.
func (c *Catalog) Lookup(word string) (model.WordEntry, bool) {
	i, ok := c.index[word]
	if !ok {
		return model.WordEntry{}, false
	}
	return c.entries[i], true
}

// Duplicates lists words dropped because they appeared more than once.
func (c *Catalog) Duplicates() []string { return c.duplicates }
