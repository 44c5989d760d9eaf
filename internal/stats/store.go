package stats

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/abhisek/multiz/internal/facts"
)

// Persister saves and loads the full stats mapping wholesale. The store
// writes through on every recorded attempt; a failing persister degrades
// to in-memory-only operation and must never interrupt practice.
type Persister interface {
	Save(mapping map[string]*FactStats) error
	Load() (map[string]*FactStats, error)
	Clear() error
}

// Store owns the in-memory stats mapping for the full fact universe.
// It is not safe for concurrent use; the TUI drives it from a single
// event loop.
type Store struct {
	mapping   map[string]*FactStats
	persister Persister
	errLog    io.Writer
	now       func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the wall clock used for attempt timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithErrorLog redirects recovered persistence errors (default stderr).
func WithErrorLog(w io.Writer) Option {
	return func(s *Store) { s.errLog = w }
}

// NewStore loads the mapping from the persister (a nil persister or a
// load failure yields a fresh mapping) and fills in zero-value entries
// for every fact in the universe.
func NewStore(p Persister, opts ...Option) *Store {
	s := &Store{
		persister: p,
		errLog:    os.Stderr,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	if p != nil {
		loaded, err := p.Load()
		if err != nil {
			fmt.Fprintln(s.errLog, "load stats:", err)
		} else if loaded != nil {
			s.mapping = loaded
		}
	}
	if s.mapping == nil {
		s.mapping = make(map[string]*FactStats, facts.Count)
	}

	for _, f := range facts.All() {
		if s.mapping[f.Key()] == nil {
			s.mapping[f.Key()] = &FactStats{}
		}
	}
	return s
}

// Get returns a detached copy of the stats for a fact. Facts missing
// from the mapping are reported as the zero value; Get never fails.
func (s *Store) Get(f facts.Fact) FactStats {
	if fs := s.mapping[f.Key()]; fs != nil {
		return *fs.Clone()
	}
	return FactStats{}
}

// Mapping returns the live mapping. Callers must treat it as read-only.
func (s *Store) Mapping() map[string]*FactStats {
	return s.mapping
}

// RecordAttempt grades one attempt into the fact's record and writes the
// mapping through to the persister. Elapsed is in seconds and is stored
// only for correct answers. The caller guarantees elapsed >= 0.
func (s *Store) RecordAttempt(f facts.Fact, correct bool, elapsed float64) {
	fs := s.mapping[f.Key()]
	if fs == nil {
		fs = &FactStats{}
		s.mapping[f.Key()] = fs
	}

	fs.Asked = true

	rec := AttemptRecord{
		Type:      OutcomeWrong,
		Timestamp: s.now().UnixMilli(),
	}
	if correct {
		t := elapsed
		rec.Type = OutcomeCorrect
		rec.Time = &t
	}
	fs.History = append(fs.History, rec)
	if len(fs.History) > MaxHistory {
		fs.History = fs.History[len(fs.History)-MaxHistory:]
	}

	if correct {
		fs.Times = append(fs.Times, elapsed)
		if len(fs.Times) > MaxStoredTimes {
			fs.Times = fs.Times[len(fs.Times)-MaxStoredTimes:]
		}
	} else {
		fs.WrongCount++
	}

	s.persist()
}

// Reset clears the persisted blob and reinitializes every fact to the
// zero value.
func (s *Store) Reset() {
	if s.persister != nil {
		if err := s.persister.Clear(); err != nil {
			fmt.Fprintln(s.errLog, "clear stats:", err)
		}
	}
	s.mapping = make(map[string]*FactStats, facts.Count)
	for _, f := range facts.All() {
		s.mapping[f.Key()] = &FactStats{}
	}
}

func (s *Store) persist() {
	if s.persister == nil {
		return
	}
	if err := s.persister.Save(s.mapping); err != nil {
		fmt.Fprintln(s.errLog, "save stats:", err)
	}
}
