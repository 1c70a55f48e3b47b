// Package session drives one drilling session: it asks the scheduler for
// words, records the user's verdicts and commits them to the ledger.
package session

import (
	"github.com/rcliao/memcurve/internal/model"
)

// Recorder accumulates the outcomes of one session in memory. A word may be
// classified several times; the last classification is the one that counts.
type Recorder struct {
	events   []model.SessionOutcome
	working  map[string]int
	answered map[string]bool
}

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{working: make(map[string]int), answered: make(map[string]bool)}
}

// MarkKnown records w as known. Its working level in this session drops to
// 0; the persisted level is computed from the pre-session level at merge.
func (r *Recorder) MarkKnown(w string) {
	r.working[w] = 0
	r.answered[w] = true
	r.events = append(r.events, model.SessionOutcome{Word: w, Outcome: model.Known})
}

// MarkUnknown records w as unknown.
func (r *Recorder) MarkUnknown(w string) {
	r.answered[w] = true
	r.events = append(r.events, model.SessionOutcome{Word: w, Outcome: model.Unknown})
}

// MarkWrongAfterKnown records that w, just marked known, was mis-remembered.
// It counts as unknown.
func (r *Recorder) MarkWrongAfterKnown(w string) {
	r.MarkUnknown(w)
}

// WorkingLevel returns the in-session level of w, if this session set one.
func (r *Recorder) WorkingLevel(w string) (int, bool) {
	l, ok := r.working[w]
	return l, ok
}

// Events returns every classification in the order it was made.
func (r *Recorder) Events() []model.SessionOutcome {
	out := make([]model.SessionOutcome, len(r.events))
	copy(out, r.events)
	return out
}

// Outcomes returns one outcome per word, the last one recorded, ordered by
// when that last classification happened.
func (r *Recorder) Outcomes() []model.SessionOutcome {
	seen := make(map[string]bool, len(r.events))
	var rev []model.SessionOutcome
	for i := len(r.events) - 1; i >= 0; i-- {
		e := r.events[i]
		if seen[e.Word] {
			continue
		}
		seen[e.Word] = true
		rev = append(rev, e)
	}
	out := make([]model.SessionOutcome, len(rev))
	for i, e := range rev {
		out[len(rev)-1-i] = e
	}
	return out
}

// Known lists the words whose final classification is known.
func (r *Recorder) Known() []string { return r.wordsWith(model.Known) }

// Unknown lists the words whose final classification is unknown.
func (r *Recorder) Unknown() []string { return r.wordsWith(model.Unknown) }

func (r *Recorder) wordsWith(o model.Outcome) []string {
	var ws []string
	for _, e := range r.Outcomes() {
		if e.Outcome == o {
			ws = append(ws, e.Word)
		}
	}
	return ws
}

// Answered reports whether w has been classified in this session.
func (r *Recorder) Answered(w string) bool { return r.answered[w] }

// Len returns the number of distinct words classified.
func (r *Recorder) Len() int { return len(r.Outcomes()) }
