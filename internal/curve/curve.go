// Package curve implements the memory-curve schedule: which words are due
// for review today and how the next one is picked.
package curve

import (
	"errors"
	"fmt"

	"cloud.google.com/go/civil"

	"github.com/rcliao/memcurve/internal/model"
)

// Curve lists, per level, the whole days that must pass after a review
// before the word is due again. A level at or past its length is mastered.
type Curve []int

// Default returns a copy of model.DefaultCurve.
func Default() Curve {
	return append(Curve(nil), model.DefaultCurve...)
}

// Validate checks that intervals are positive and non-decreasing.
func (c Curve) Validate() error {
	if len(c) == 0 {
		return errors.New("curve has no intervals")
	}
	for i, d := range c {
		if d <= 0 {
			return fmt.Errorf("curve interval %d must be positive, got %d", i, d)
		}
		if i > 0 && d < c[i-1] {
			return fmt.Errorf("curve interval %d (%d days) is shorter than the one before it", i, d)
		}
	}
	return nil
}

// Mastered reports whether level is past the end of the curve.
func (c Curve) Mastered(level int) bool {
	return level >= len(c)
}

// Eligible reports whether a word may be shown today. A word with no record
// is always eligible. A mastered word is eligible unless retireMastered is
// set. Otherwise the word waits curve[level] days after its last review.
func (c Curve) Eligible(rec model.LedgerRecord, ok bool, today civil.Date, retireMastered bool) bool {
	if !ok {
		return true
	}
	if c.Mastered(rec.Level) {
		return !retireMastered
	}
	return today.DaysSince(rec.Date) >= c[rec.Level]
}

// NextDue returns the first day the record becomes eligible again. ok is
// false for mastered levels, which have no interval.
func (c Curve) NextDue(rec model.LedgerRecord) (civil.Date, bool) {
	if c.Mastered(rec.Level) {
		return civil.Date{}, false
	}
	return rec.Date.AddDays(c[rec.Level]), true
}
