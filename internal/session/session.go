package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"cloud.google.com/go/civil"
	"github.com/oklog/ulid/v2"

	"github.com/rcliao/memcurve/internal/catalog"
	"github.com/rcliao/memcurve/internal/curve"
	"github.com/rcliao/memcurve/internal/ledger"
	"github.com/rcliao/memcurve/internal/model"
	"github.com/rcliao/memcurve/internal/store"
)

// Stage is where the session is in the ask / reveal cycle of a word.
type Stage int

const (
	// StageIdle is before Start.
	StageIdle Stage = iota
	// StageAsk shows the word alone and waits for know / don't know.
	StageAsk
	// StageRevealKnown shows the answer after "know" and waits for
	// next / mis-remembered.
	StageRevealKnown
	// StageRevealUnknown shows the meaning after "don't know" and waits for
	// next.
	StageRevealUnknown
	// StageExhausted means no word is due.
	StageExhausted
)

func (s Stage) String() string {
	switch s {
	case StageIdle:
		return "idle"
	case StageAsk:
		return "ask"
	case StageRevealKnown:
		return "reveal-known"
	case StageRevealUnknown:
		return "reveal-unknown"
	case StageExhausted:
		return "exhausted"
	}
	return fmt.Sprintf("stage(%d)", int(s))
}

// ErrWrongStage is returned when an action does not apply to the current stage.
var ErrWrongStage = errors.New("action not valid at this stage")

// Reveal tells the presentation layer which fields of the current word to show.
type Reveal struct {
	Phonetic bool
	Meaning  bool
}

// Params holds what a Session needs.
type Params struct {
	// ID names the session; a new one is generated when empty.
	ID           string
	Catalog      *catalog.Catalog
	Ledger       *ledger.Ledger
	Scheduler    *curve.Scheduler
	AllowRepeats bool
	Logger       *slog.Logger
}

// Session is the explicit context of one drilling run. It owns the current
// word, the stage and the recorder; nothing about a session is global.
type Session struct {
	id           string
	today        civil.Date
	catalog      *catalog.Catalog
	ledger       *ledger.Ledger
	scheduler    *curve.Scheduler
	recorder     *Recorder
	allowRepeats bool
	log          *slog.Logger

	current model.WordEntry
	stage   Stage
	shown   int
}

// New creates a session. The ledger is a snapshot taken at startup.
func New(p Params) *Session {
	sched := p.Scheduler
	if sched == nil {
		sched = curve.NewScheduler(curve.Options{})
	}
	l := p.Ledger
	if l == nil {
		l = ledger.New()
	}
	lg := p.Logger
	if lg == nil {
		lg = slog.Default()
	}
	id := p.ID
	if id == "" {
		id = NewID()
	}
	return &Session{
		id:           id,
		today:        sched.Today(),
		catalog:      p.Catalog,
		ledger:       l,
		scheduler:    sched,
		recorder:     NewRecorder(),
		allowRepeats: p.AllowRepeats,
		log:          lg.With("session", id),
	}
}

// NewID returns a fresh, time-ordered session identifier.
func NewID() string {
	entropy := rand.New(rand.NewSource(time.Now().UnixNano()))
	return ulid.MustNew(ulid.Timestamp(time.Now()), entropy).String()
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// Today returns the date outcomes are stamped with.
func (s *Session) Today() civil.Date { return s.today }

// Stage returns the current stage.
func (s *Session) Stage() Stage { return s.stage }

// Recorder exposes the outcomes gathered so far.
func (s *Session) Recorder() *Recorder { return s.recorder }

// Shown returns how many words have been presented.
func (s *Session) Shown() int { return s.shown }

// Current returns the word on screen, if any.
func (s *Session) Current() (model.WordEntry, bool) {
	switch s.stage {
	case StageAsk, StageRevealKnown, StageRevealUnknown:
		return s.current, true
	}
	return model.WordEntry{}, false
}

// Reveal reports which fields of the current word are visible.
func (s *Session) Reveal() Reveal {
	switch s.stage {
	case StageRevealKnown:
		return Reveal{Phonetic: true, Meaning: true}
	case StageRevealUnknown:
		return Reveal{Meaning: true}
	}
	return Reveal{}
}

// Level returns the level shown next to the current word: the in-session
// working level when set, else the ledger level.
func (s *Session) Level() (int, bool) {
	if l, ok := s.recorder.WorkingLevel(s.current.Word); ok {
		return l, true
	}
	rec, ok := s.ledger.Get(s.current.Word)
	return rec.Level, ok
}

// Start selects the first word.
func (s *Session) Start() error {
	if s.stage != StageIdle {
		return fmt.Errorf("start: %w (stage %s)", ErrWrongStage, s.stage)
	}
	return s.Advance()
}

// Know marks the current word as known and reveals it.
func (s *Session) Know() error {
	if s.stage != StageAsk {
		return fmt.Errorf("know: %w (stage %s)", ErrWrongStage, s.stage)
	}
	s.recorder.MarkKnown(s.current.Word)
	s.stage = StageRevealKnown
	s.log.Debug("marked known", "word", s.current.Word)
	return nil
}

// DontKnow marks the current word as unknown and reveals its meaning.
func (s *Session) DontKnow() error {
	if s.stage != StageAsk {
		return fmt.Errorf("don't know: %w (stage %s)", ErrWrongStage, s.stage)
	}
	s.recorder.MarkUnknown(s.current.Word)
	s.stage = StageRevealUnknown
	s.log.Debug("marked unknown", "word", s.current.Word)
	return nil
}

// Wrong records that the word just marked known was mis-remembered, then
// moves on.
func (s *Session) Wrong() error {
	if s.stage != StageRevealKnown {
		return fmt.Errorf("wrong: %w (stage %s)", ErrWrongStage, s.stage)
	}
	s.recorder.MarkWrongAfterKnown(s.current.Word)
	s.log.Debug("marked mis-remembered", "word", s.current.Word)
	return s.Advance()
}

// Next moves on from a revealed word.
func (s *Session) Next() error {
	if s.stage != StageRevealKnown && s.stage != StageRevealUnknown {
		return fmt.Errorf("next: %w (stage %s)", ErrWrongStage, s.stage)
	}
	return s.Advance()
}

// Advance clears the revealed state and selects the next word. When nothing
// is due the stage becomes StageExhausted and curve.ErrNoWordsDue is
// returned.
func (s *Session) Advance() error {
	s.current = model.WordEntry{}
	next, err := s.scheduler.NextOn(s.today, s.catalog, s.ledger, s.exclusions())
	if err != nil {
		s.stage = StageExhausted
		if errors.Is(err, curve.ErrNoWordsDue) {
			s.log.Info("no words due", "answered", s.recorder.Len())
		}
		return err
	}
	s.current = next
	s.stage = StageAsk
	s.shown++
	return nil
}

func (s *Session) exclusions() map[string]bool {
	if s.allowRepeats {
		return nil
	}
	ex := make(map[string]bool)
	for _, e := range s.catalog.Entries() {
		if s.recorder.Answered(e.Word) {
			ex[e.Word] = true
		}
	}
	return ex
}

// Summary describes a committed session.
type Summary struct {
	SessionID  string     `json:"session_id"`
	Date       civil.Date `json:"date"`
	Shown      int        `json:"shown"`
	Known      []string   `json:"known"`
	Unknown    []string   `json:"unknown"`
	LedgerSize int        `json:"ledger_size"`
	Committed  bool       `json:"committed"`
}

// Commit merges this session's outcomes into the ledger held by st. The
// merge runs against the ledger as it is on disk at commit time, under the
// store's lock. A session with no outcomes writes nothing.
func (s *Session) Commit(ctx context.Context, st store.Store) (*Summary, error) {
	known, unknown := s.recorder.Known(), s.recorder.Unknown()
	sum := &Summary{
		SessionID:  s.id,
		Date:       s.today,
		Shown:      s.shown,
		Known:      nonNil(known),
		Unknown:    nonNil(unknown),
		LedgerSize: s.ledger.Len(),
	}
	if len(known) == 0 && len(unknown) == 0 {
		return sum, nil
	}

	merged, err := store.Commit(ctx, st, func(old *ledger.Ledger) (*ledger.Ledger, error) {
		return ledger.Merge(old, known, unknown, s.today), nil
	})
	if err != nil {
		return nil, fmt.Errorf("commit session: %w", err)
	}
	if h, ok := st.(store.HistoryStore); ok {
		if err := h.AppendHistory(ctx, s.id, s.recorder.Outcomes(), s.today); err != nil {
			s.log.Warn("review log not written", "err", err)
		}
	}

	sum.LedgerSize = merged.Len()
	sum.Committed = true
	s.log.Info("session committed",
		"known", len(known), "unknown", len(unknown), "ledger_size", merged.Len())
	return sum, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
