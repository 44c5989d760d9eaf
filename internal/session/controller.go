// Package session orchestrates single-question practice and lesson flow.
package session

import (
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/multiz/internal/board"
	"github.com/abhisek/multiz/internal/facts"
	"github.com/abhisek/multiz/internal/picker"
	"github.com/abhisek/multiz/internal/stats"
)

// LessonLength is the number of questions drawn for a lesson.
const LessonLength = 10

// State is the controller's top-level mode.
type State int

const (
	// Idle is the board view; no question or timer active.
	Idle State = iota

	// InQuestion has an active question and a running timer, with or
	// without lesson context.
	InQuestion
)

// Lesson is the transient context for an in-progress lesson. The fact
// sequence is drawn up front from weights snapshotted at lesson start
// and is never recomputed mid-lesson.
type Lesson struct {
	ID    string
	Facts []facts.Fact
	Index int
}

// Progress is the 1-based lesson position for display.
type Progress struct {
	Current int
	Total   int
}

// Controller is the practice state machine. A single controller drives
// one learner's flow; transitions are synchronous and single-threaded.
type Controller struct {
	store   *stats.Store
	sampler *picker.Sampler
	now     func() time.Time

	state         State
	current       facts.Fact
	questionStart time.Time
	lesson        *Lesson
}

// Option configures a Controller.
type Option func(*Controller)

// WithClock overrides the wall clock, for exact elapsed times in tests.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) { c.now = now }
}

// NewController creates an idle controller over the given store.
func NewController(store *stats.Store, sampler *picker.Sampler, opts ...Option) *Controller {
	c := &Controller{
		store:   store,
		sampler: sampler,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// State returns the current mode.
func (c *Controller) State() State {
	return c.state
}

// Store returns the stats store the controller records into.
func (c *Controller) Store() *stats.Store {
	return c.store
}

// Current returns the active question fact; ok is false when idle.
func (c *Controller) Current() (facts.Fact, bool) {
	return c.current, c.state == InQuestion
}

// InLesson reports whether lesson context is attached.
func (c *Controller) InLesson() bool {
	return c.lesson != nil
}

// LessonID returns the active lesson's identifier; ok is false outside
// a lesson.
func (c *Controller) LessonID() (string, bool) {
	if c.lesson == nil {
		return "", false
	}
	return c.lesson.ID, true
}

// LessonProgress returns the 1-based lesson position; ok is false
// outside a lesson.
func (c *Controller) LessonProgress() (Progress, bool) {
	if c.lesson == nil {
		return Progress{}, false
	}
	return Progress{Current: c.lesson.Index + 1, Total: len(c.lesson.Facts)}, true
}

// Elapsed returns wall-clock seconds since the active question started.
// Zero when idle. Display code may poll this; the recorded value is
// computed once, at submission.
func (c *Controller) Elapsed() float64 {
	if c.state != InQuestion {
		return 0
	}
	return c.now().Sub(c.questionStart).Seconds()
}

// StartQuestion begins a single practice question on the given fact.
// Any previous question or lesson context is discarded; only one timer
// is ever active.
func (c *Controller) StartQuestion(f facts.Fact) {
	c.lesson = nil
	c.beginQuestion(f)
}

// StartLesson draws a full lesson from the current weights and begins
// its first question. Weights are snapshotted here; recording answers
// mid-lesson does not reshuffle the remaining queue.
func (c *Controller) StartLesson() error {
	candidates := board.Weighted(board.Derive(c.store))
	drawn, err := c.sampler.SelectMany(candidates, LessonLength)
	if err != nil {
		return err
	}

	c.lesson = &Lesson{
		ID:    uuid.New().String(),
		Facts: drawn,
	}
	c.beginQuestion(drawn[0])
	return nil
}

// SubmitAnswer grades the active question: it stops the timer, records
// the attempt, and either advances the lesson or returns to idle.
// No-op when idle.
func (c *Controller) SubmitAnswer(correct bool) {
	if c.state != InQuestion {
		return
	}

	elapsed := c.now().Sub(c.questionStart).Seconds()
	if elapsed < 0 {
		elapsed = 0
	}
	c.store.RecordAttempt(c.current, correct, elapsed)

	if c.lesson == nil {
		c.state = Idle
		return
	}

	c.lesson.Index++
	if c.lesson.Index < len(c.lesson.Facts) {
		c.beginQuestion(c.lesson.Facts[c.lesson.Index])
		return
	}

	c.lesson = nil
	c.state = Idle
}

// Cancel abandons the active question and any lesson context without
// recording an attempt. Lessons are not resumable; re-entering starts a
// fresh draw.
func (c *Controller) Cancel() {
	c.lesson = nil
	c.state = Idle
}

func (c *Controller) beginQuestion(f facts.Fact) {
	c.current = f
	c.questionStart = c.now()
	c.state = InQuestion
}
