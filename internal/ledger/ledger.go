// Package ledger holds the per-word review state carried between sessions
// and the rule that folds a session's outcomes into it.
package ledger

import (
	"github.com/rcliao/memcurve/internal/model"
)

// Ledger is an ordered set of records with at most one record per word.
// It is never mutated in place; every change returns a new Ledger.
type Ledger struct {
	records []model.LedgerRecord
	index   map[string]int
}

// New builds a ledger from records. When a word occurs more than once the
// last occurrence wins and takes the position of that last occurrence.
func New(records ...model.LedgerRecord) *Ledger {
	kept := keepLast(records)
	l := &Ledger{records: kept, index: make(map[string]int, len(kept))}
	for i, r := range kept {
		l.index[r.Word] = i
	}
	return l
}

// keepLast drops every record whose word appears again later in the slice.
func keepLast(records []model.LedgerRecord) []model.LedgerRecord {
	seen := make(map[string]bool, len(records))
	rev := make([]model.LedgerRecord, 0, len(records))
	for i := len(records) - 1; i >= 0; i-- {
		r := records[i]
		if seen[r.Word] {
			continue
		}
		seen[r.Word] = true
		rev = append(rev, r)
	}
	out := make([]model.LedgerRecord, len(rev))
	for i, r := range rev {
		out[len(rev)-1-i] = r
	}
	return out
}

// Get returns the record for word. ok is false when the word has never been
// reviewed; callers must not treat a zero record as level 0.
func (l *Ledger) Get(word string) (rec model.LedgerRecord, ok bool) {
	if l == nil {
		return model.LedgerRecord{}, false
	}
	i, ok := l.index[word]
	if !ok {
		return model.LedgerRecord{}, false
	}
	return l.records[i], true
}

// Len returns the number of words with a record.
func (l *Ledger) Len() int {
	if l == nil {
		return 0
	}
	return len(l.records)
}

// Records returns a copy of the records in ledger order.
func (l *Ledger) Records() []model.LedgerRecord {
	if l == nil {
		return []model.LedgerRecord{}
	}
	out := make([]model.LedgerRecord, len(l.records))
	copy(out, l.records)
	return out
}

// With returns a ledger where records replace any existing entry for the
// same word.
func (l *Ledger) With(records ...model.LedgerRecord) *Ledger {
	return New(append(l.Records(), records...)...)
}

// Without returns a ledger lacking word and reports whether it was present.
func (l *Ledger) Without(word string) (*Ledger, bool) {
	if _, ok := l.Get(word); !ok {
		return l, false
	}
	kept := make([]model.LedgerRecord, 0, l.Len()-1)
	for _, r := range l.records {
		if r.Word != word {
			kept = append(kept, r)
		}
	}
	return New(kept...), true
}
