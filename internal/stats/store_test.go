package stats

import (
	"errors"
	"io"
	"testing"
	"time"

	"github.com/abhisek/multiz/internal/facts"
)

// fakePersister records calls and can be made to fail.
type fakePersister struct {
	saved     map[string]*FactStats
	saveCalls int
	loadData  map[string]*FactStats
	failSave  bool
	failLoad  bool
	cleared   bool
}

func (p *fakePersister) Save(m map[string]*FactStats) error {
	p.saveCalls++
	if p.failSave {
		return errors.New("disk full")
	}
	p.saved = m
	return nil
}

func (p *fakePersister) Load() (map[string]*FactStats, error) {
	if p.failLoad {
		return nil, errors.New("corrupt")
	}
	return p.loadData, nil
}

func (p *fakePersister) Clear() error {
	p.cleared = true
	return nil
}

func newTestStore(p Persister) *Store {
	return NewStore(p, WithErrorLog(io.Discard))
}

func TestNewStoreInitializesUniverse(t *testing.T) {
	s := newTestStore(nil)
	if len(s.Mapping()) != facts.Count {
		t.Fatalf("mapping size = %d, want %d", len(s.Mapping()), facts.Count)
	}
	fs := s.Get(facts.Fact{N: 7, M: 8})
	if fs.Asked || fs.WrongCount != 0 || len(fs.Times) != 0 || len(fs.History) != 0 {
		t.Errorf("fresh fact should be zero value, got %+v", fs)
	}
}

func TestNewStoreLoadFailureFallsBackToFresh(t *testing.T) {
	p := &fakePersister{failLoad: true}
	s := newTestStore(p)
	if len(s.Mapping()) != facts.Count {
		t.Fatalf("mapping size = %d, want %d", len(s.Mapping()), facts.Count)
	}
}

func TestNewStoreFillsMissingEntries(t *testing.T) {
	p := &fakePersister{loadData: map[string]*FactStats{
		"7x8": {Asked: true, WrongCount: 2},
	}}
	s := newTestStore(p)
	if len(s.Mapping()) != facts.Count {
		t.Fatalf("mapping size = %d, want %d", len(s.Mapping()), facts.Count)
	}
	if got := s.Get(facts.Fact{N: 7, M: 8}); !got.Asked || got.WrongCount != 2 {
		t.Errorf("loaded entry lost: %+v", got)
	}
}

func TestRecordAttemptCorrect(t *testing.T) {
	p := &fakePersister{}
	s := newTestStore(p)
	f := facts.Fact{N: 3, M: 4}

	s.RecordAttempt(f, true, 2.5)

	got := s.Get(f)
	if !got.Asked {
		t.Error("asked should be set")
	}
	if len(got.Times) != 1 || got.Times[0] != 2.5 {
		t.Errorf("times = %v, want [2.5]", got.Times)
	}
	if got.WrongCount != 0 {
		t.Errorf("wrongCount = %d, want 0", got.WrongCount)
	}
	if len(got.History) != 1 || got.History[0].Type != OutcomeCorrect {
		t.Fatalf("history = %+v, want one correct record", got.History)
	}
	if got.History[0].Time == nil || *got.History[0].Time != 2.5 {
		t.Errorf("history time = %v, want 2.5", got.History[0].Time)
	}
	if p.saveCalls != 1 {
		t.Errorf("saveCalls = %d, want 1 (write-through)", p.saveCalls)
	}
}

func TestRecordAttemptWrong(t *testing.T) {
	s := newTestStore(nil)
	f := facts.Fact{N: 3, M: 4}

	s.RecordAttempt(f, false, 9.9)

	got := s.Get(f)
	if !got.Asked {
		t.Error("asked should be set")
	}
	if got.WrongCount != 1 {
		t.Errorf("wrongCount = %d, want 1", got.WrongCount)
	}
	if len(got.Times) != 0 {
		t.Errorf("wrong answers must not add times, got %v", got.Times)
	}
	if len(got.History) != 1 || got.History[0].Type != OutcomeWrong || got.History[0].Time != nil {
		t.Errorf("history = %+v, want one wrong record with nil time", got.History)
	}
}

func TestRecordAttemptEviction(t *testing.T) {
	s := newTestStore(nil)
	f := facts.Fact{N: 2, M: 2}

	for i := 0; i < 12; i++ {
		s.RecordAttempt(f, true, float64(i))
	}

	got := s.Get(f)
	if len(got.Times) != MaxStoredTimes {
		t.Fatalf("times length = %d, want %d", len(got.Times), MaxStoredTimes)
	}
	if got.Times[0] != 7 || got.Times[4] != 11 {
		t.Errorf("times = %v, want [7..11]", got.Times)
	}
	if len(got.History) != MaxHistory {
		t.Fatalf("history length = %d, want %d", len(got.History), MaxHistory)
	}
	if *got.History[0].Time != 2 || *got.History[9].Time != 11 {
		t.Errorf("history window wrong: first=%v last=%v", *got.History[0].Time, *got.History[9].Time)
	}
}

func TestRecordAttemptTimestampsOrdered(t *testing.T) {
	tick := time.Unix(1000, 0)
	s := NewStore(nil, WithErrorLog(io.Discard), WithClock(func() time.Time {
		tick = tick.Add(time.Second)
		return tick
	}))
	f := facts.Fact{N: 5, M: 5}

	s.RecordAttempt(f, true, 1)
	s.RecordAttempt(f, false, 0)

	got := s.Get(f)
	if got.History[0].Timestamp >= got.History[1].Timestamp {
		t.Errorf("timestamps not increasing: %d then %d",
			got.History[0].Timestamp, got.History[1].Timestamp)
	}
}

func TestPersistFailureDoesNotPanicOrPropagate(t *testing.T) {
	p := &fakePersister{failSave: true}
	s := newTestStore(p)
	f := facts.Fact{N: 6, M: 7}

	s.RecordAttempt(f, true, 3)

	// In-memory state remains the source of truth.
	if got := s.Get(f); !got.Asked {
		t.Error("attempt must be recorded even when persistence fails")
	}
}

func TestReset(t *testing.T) {
	p := &fakePersister{}
	s := newTestStore(p)
	s.RecordAttempt(facts.Fact{N: 9, M: 9}, false, 0)

	s.Reset()

	if !p.cleared {
		t.Error("persister.Clear not called")
	}
	if got := s.Get(facts.Fact{N: 9, M: 9}); got.Asked || got.WrongCount != 0 {
		t.Errorf("reset fact should be zero value, got %+v", got)
	}
	if len(s.Mapping()) != facts.Count {
		t.Errorf("mapping size after reset = %d, want %d", len(s.Mapping()), facts.Count)
	}
}
