package curve

import (
	"errors"
	"math/rand"
	"time"

	"cloud.google.com/go/civil"

	"github.com/rcliao/memcurve/internal/model"
)

// ErrNoWordsDue is returned when no catalog word is eligible right now.
var ErrNoWordsDue = errors.New("no words due for review")

// Vocabulary is the read side of a catalog.
type Vocabulary interface {
	Entries() []model.WordEntry
}

// Records is the read side of a ledger.
type Records interface {
	Get(word string) (model.LedgerRecord, bool)
}

// Options configures a Scheduler. Zero values select the defaults.
type Options struct {
	Curve          Curve
	RetireMastered bool
	Rand           *rand.Rand
	Today          func() civil.Date
}

// Scheduler picks the next word to review, uniformly at random among the
// eligible ones.
type Scheduler struct {
	curve          Curve
	retireMastered bool
	rng            *rand.Rand
	today          func() civil.Date
}

// NewScheduler creates a Scheduler.
func NewScheduler(opts Options) *Scheduler {
	s := &Scheduler{
		curve:          opts.Curve,
		retireMastered: opts.RetireMastered,
		rng:            opts.Rand,
		today:          opts.Today,
	}
	if len(s.curve) == 0 {
		s.curve = Default()
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if s.today == nil {
		s.today = Today
	}
	return s
}

// Today is the local calendar date.
func Today() civil.Date {
	return civil.DateOf(time.Now())
}

// Curve returns the schedule in use.
func (s *Scheduler) Curve() Curve { return s.curve }

// Today returns the date the scheduler evaluates eligibility against.
func (s *Scheduler) Today() civil.Date { return s.today() }

// Due returns, in catalog order, every word eligible today that is not in
// exclude.
func (s *Scheduler) Due(vocab Vocabulary, records Records, exclude map[string]bool) []model.WordEntry {
	return s.DueOn(s.today(), vocab, records, exclude)
}

// DueOn is Due evaluated on a given day.
func (s *Scheduler) DueOn(today civil.Date, vocab Vocabulary, records Records, exclude map[string]bool) []model.WordEntry {
	var due []model.WordEntry
	for _, e := range vocab.Entries() {
		if exclude[e.Word] {
			continue
		}
		rec, ok := records.Get(e.Word)
		if s.curve.Eligible(rec, ok, today, s.retireMastered) {
			due = append(due, e)
		}
	}
	return due
}

// Next picks a due word at random. Every word is equally likely regardless of
// how overdue it is. ErrNoWordsDue is returned when nothing is due.
func (s *Scheduler) Next(vocab Vocabulary, records Records, exclude map[string]bool) (model.WordEntry, error) {
	return s.NextOn(s.today(), vocab, records, exclude)
}

// NextOn is Next evaluated on a given day. A session passes its start date
// so that eligibility and the date stamped on outcomes agree.
func (s *Scheduler) NextOn(today civil.Date, vocab Vocabulary, records Records, exclude map[string]bool) (model.WordEntry, error) {
	due := s.DueOn(today, vocab, records, exclude)
	if len(due) == 0 {
		return model.WordEntry{}, ErrNoWordsDue
	}
	return due[s.rng.Intn(len(due))], nil
}
