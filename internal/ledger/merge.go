package ledger

import (
	"cloud.google.com/go/civil"

	"github.com/rcliao/memcurve/internal/model"
)

// Merge folds one session's outcomes into old and returns the new ledger.
//
// A known word moves one level up from its pre-session level, or starts at
// level 0 if it had no record. An unknown word drops to level 0. Both are
// stamped with today. Records are combined in the order old, known, unknown
// and the last record per word wins, so a word listed as both known and
// unknown ends at level 0.
//
// Merge is pure: identical inputs give identical ledgers. Feeding its output
// back with the same outcomes raises known words again.
func Merge(old *Ledger, known, unknown []string, today civil.Date) *Ledger {
	all := old.Records()
	for _, w := range known {
		level := 0
		if prior, ok := old.Get(w); ok {
			level = prior.Level + 1
		}
		all = append(all, model.LedgerRecord{Word: w, Level: level, Date: today})
	}
	for _, w := range unknown {
		all = append(all, model.LedgerRecord{Word: w, Level: 0, Date: today})
	}
	return New(all...)
}
