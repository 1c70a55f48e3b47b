// Package model defines the core vocabulary and review data types.
package model

import (
	"fmt"
	"strings"

	"cloud.google.com/go/civil"
)

// DateLayout is the on-disk date format of ledger rows.
const DateLayout = "2006-01-02"

// DefaultCurve is the memory curve: days required since the last review
// before a word at a given level is shown again.
var DefaultCurve = []int{1, 2, 4, 7, 15, 30, 90, 180}

// WordEntry is one row of the vocabulary catalog. Word is its identity.
type WordEntry struct {
	Word     string `json:"word"`
	Phonetic string `json:"phonetic,omitempty"`
	Meaning  string `json:"meaning"`
}

// LedgerRecord is the persisted review state of a single word.
type LedgerRecord struct {
	Word  string     `json:"word"`
	Level int        `json:"level"`
	Date  civil.Date `json:"date"`
}

// Outcome is how a word was classified during a session.
type Outcome int

const (
	Known Outcome = iota + 1
	Unknown
)

func (o Outcome) String() string {
	switch o {
	case Known:
		return "known"
	case Unknown:
		return "unknown"
	}
	return fmt.Sprintf("outcome(%d)", int(o))
}

// ParseOutcome is the inverse of Outcome.String.
func ParseOutcome(s string) (Outcome, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "known":
		return Known, nil
	case "unknown":
		return Unknown, nil
	}
	return 0, fmt.Errorf("invalid outcome %q", s)
}

// SessionOutcome is one classification recorded in a session.
type SessionOutcome struct {
	Word    string  `json:"word"`
	Outcome Outcome `json:"outcome"`
}

// MarshalText lets outcomes render as words in JSON output.
func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// UnmarshalText parses "known" or "unknown".
func (o *Outcome) UnmarshalText(b []byte) error {
	v, err := ParseOutcome(string(b))
	if err != nil {
		return err
	}
	*o = v
	return nil
}
