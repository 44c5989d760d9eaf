package session

import (
	"io"
	"math/rand"
	"testing"
	"time"

	"github.com/abhisek/multiz/internal/facts"
	"github.com/abhisek/multiz/internal/picker"
	"github.com/abhisek/multiz/internal/stats"
)

// fakeClock advances only when told to.
type fakeClock struct {
	t time.Time
}

func (fc *fakeClock) now() time.Time {
	return fc.t
}

func (fc *fakeClock) advance(d time.Duration) {
	fc.t = fc.t.Add(d)
}

func newTestController() (*Controller, *fakeClock) {
	fc := &fakeClock{t: time.Unix(1_700_000_000, 0)}
	st := stats.NewStore(nil, stats.WithErrorLog(io.Discard))
	sampler := picker.NewWithRand(rand.New(rand.NewSource(1)))
	return NewController(st, sampler, WithClock(fc.now)), fc
}

func TestSingleQuestionFlow(t *testing.T) {
	c, fc := newTestController()
	f := facts.Fact{N: 7, M: 8}

	if c.State() != Idle {
		t.Fatalf("initial state = %v, want Idle", c.State())
	}

	c.StartQuestion(f)
	if c.State() != InQuestion {
		t.Fatalf("state = %v, want InQuestion", c.State())
	}
	if cur, ok := c.Current(); !ok || cur != f {
		t.Fatalf("current = %v (%v), want %v", cur, ok, f)
	}
	if c.InLesson() {
		t.Error("single question must not carry lesson context")
	}

	fc.advance(4 * time.Second)
	if got := c.Elapsed(); got != 4 {
		t.Errorf("Elapsed = %f, want 4", got)
	}

	c.SubmitAnswer(true)
	if c.State() != Idle {
		t.Errorf("state after submit = %v, want Idle", c.State())
	}

	got := c.Store().Get(f)
	if len(got.Times) != 1 || got.Times[0] != 4 {
		t.Errorf("recorded times = %v, want [4]", got.Times)
	}
}

func TestLessonFlow(t *testing.T) {
	c, fc := newTestController()

	if err := c.StartLesson(); err != nil {
		t.Fatal(err)
	}
	if c.State() != InQuestion || !c.InLesson() {
		t.Fatal("lesson should start in a question with lesson context")
	}

	p, ok := c.LessonProgress()
	if !ok || p.Current != 1 || p.Total != LessonLength {
		t.Fatalf("progress = %+v (%v), want 1/%d", p, ok, LessonLength)
	}

	for i := 0; i < LessonLength; i++ {
		if c.State() != InQuestion {
			t.Fatalf("question %d: state = %v, want InQuestion", i+1, c.State())
		}
		fc.advance(2 * time.Second)
		c.SubmitAnswer(i%2 == 0)
	}

	if c.State() != Idle {
		t.Errorf("state after lesson = %v, want Idle", c.State())
	}
	if c.InLesson() {
		t.Error("lesson context must be cleared after completion")
	}
	if _, ok := c.LessonProgress(); ok {
		t.Error("no lesson progress expected after completion")
	}
}

func TestLessonIDsAreDistinct(t *testing.T) {
	c, _ := newTestController()

	if err := c.StartLesson(); err != nil {
		t.Fatal(err)
	}
	id1, ok := c.LessonID()
	if !ok || id1 == "" {
		t.Fatalf("LessonID = %q (%v), want a non-empty ID", id1, ok)
	}
	c.Cancel()
	if _, ok := c.LessonID(); ok {
		t.Error("no lesson ID expected after cancel")
	}

	if err := c.StartLesson(); err != nil {
		t.Fatal(err)
	}
	id2, _ := c.LessonID()
	if id2 == id1 {
		t.Errorf("re-drawn lesson reused ID %q", id1)
	}
}

func TestLessonProgressAdvances(t *testing.T) {
	c, _ := newTestController()
	if err := c.StartLesson(); err != nil {
		t.Fatal(err)
	}

	c.SubmitAnswer(true)
	p, ok := c.LessonProgress()
	if !ok || p.Current != 2 {
		t.Errorf("progress after one answer = %+v (%v), want 2/%d", p, ok, LessonLength)
	}
}

func TestLessonFreshTimerPerQuestion(t *testing.T) {
	c, fc := newTestController()
	if err := c.StartLesson(); err != nil {
		t.Fatal(err)
	}

	fc.advance(10 * time.Second)
	c.SubmitAnswer(true)

	// The next question starts a fresh measurement.
	if got := c.Elapsed(); got != 0 {
		t.Errorf("Elapsed on fresh question = %f, want 0", got)
	}
}

func TestCancelDiscardsQuestionAndLesson(t *testing.T) {
	c, _ := newTestController()
	if err := c.StartLesson(); err != nil {
		t.Fatal(err)
	}
	cur, _ := c.Current()

	c.Cancel()

	if c.State() != Idle || c.InLesson() {
		t.Error("cancel must return to idle and drop lesson context")
	}
	if got := c.Store().Get(cur); got.Asked {
		t.Error("cancel must not record an attempt")
	}
}

func TestSubmitWhenIdleIsNoop(t *testing.T) {
	c, _ := newTestController()
	c.SubmitAnswer(true)
	if c.State() != Idle {
		t.Errorf("state = %v, want Idle", c.State())
	}
	for _, f := range facts.All() {
		if c.Store().Get(f).Asked {
			t.Fatalf("idle submit recorded an attempt on %s", f.Key())
		}
	}
}

func TestStartQuestionReplacesActiveTimer(t *testing.T) {
	c, fc := newTestController()
	c.StartQuestion(facts.Fact{N: 2, M: 3})
	fc.advance(30 * time.Second)

	f2 := facts.Fact{N: 4, M: 5}
	c.StartQuestion(f2)
	fc.advance(1 * time.Second)
	c.SubmitAnswer(true)

	got := c.Store().Get(f2)
	if len(got.Times) != 1 || got.Times[0] != 1 {
		t.Errorf("recorded times = %v, want [1] from the fresh timer", got.Times)
	}
}

func TestLessonBiasTowardStrugglingFacts(t *testing.T) {
	c, fc := newTestController()
	weak := facts.Fact{N: 6, M: 7}
	// Pile wrong answers on one fact so its weight dwarfs the rest.
	for i := 0; i < 500; i++ {
		c.StartQuestion(weak)
		fc.advance(time.Second)
		c.SubmitAnswer(false)
	}

	if err := c.StartLesson(); err != nil {
		t.Fatal(err)
	}
	hits := 0
	for c.State() == InQuestion {
		if cur, _ := c.Current(); cur == weak {
			hits++
		}
		c.SubmitAnswer(true)
	}
	if hits == 0 {
		t.Error("heavily-missed fact never drawn in a 10-question lesson")
	}
}
