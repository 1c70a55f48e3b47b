package store

import (
	"os"
	"sort"

	"cloud.google.com/go/civil"

	"github.com/rcliao/memcurve/internal/curve"
	"github.com/rcliao/memcurve/internal/ledger"
)

// Stats holds ledger statistics.
type Stats struct {
	LedgerPath      string       `json:"ledger_path"`
	LedgerSizeBytes int64        `json:"ledger_size_bytes"`
	Today           civil.Date   `json:"today"`
	CatalogWords    int          `json:"catalog_words"`
	Recorded        int          `json:"recorded"`
	Unseen          int          `json:"unseen"`
	Due             int          `json:"due"`
	Mastered        int          `json:"mastered"`
	Levels          []LevelCount `json:"levels"`
}

// LevelCount holds the number of words at one level.
type LevelCount struct {
	Level int `json:"level"`
	Count int `json:"count"`
}

// ComputeStats summarises l against the catalog and schedule.
func ComputeStats(path string, vocab curve.Vocabulary, l *ledger.Ledger, sched *curve.Scheduler) *Stats {
	st := &Stats{
		LedgerPath:   path,
		Today:        sched.Today(),
		CatalogWords: len(vocab.Entries()),
		Recorded:     l.Len(),
		Due:          len(sched.Due(vocab, l, nil)),
		Levels:       []LevelCount{},
	}
	if info, err := os.Stat(path); err == nil {
		st.LedgerSizeBytes = info.Size()
	}

	for _, e := range vocab.Entries() {
		if _, ok := l.Get(e.Word); !ok {
			st.Unseen++
		}
	}

	counts := map[int]int{}
	for _, r := range l.Records() {
		counts[r.Level]++
		if sched.Curve().Mastered(r.Level) {
			st.Mastered++
		}
	}
	for level, n := range counts {
		st.Levels = append(st.Levels, LevelCount{Level: level, Count: n})
	}
	sort.Slice(st.Levels, func(i, j int) bool { return st.Levels[i].Level < st.Levels[j].Level })

	return st
}
