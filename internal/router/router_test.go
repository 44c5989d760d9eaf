package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/multiz/internal/screen"
)

// stubScreen is a minimal screen for testing.
type stubScreen struct {
	title   string
	initRan bool
}

func (s *stubScreen) Init() tea.Cmd {
	s.initRan = true
	return nil
}
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return s.title }
func (s *stubScreen) Title() string                           { return s.title }

func TestPush(t *testing.T) {
	s1 := &stubScreen{title: "board"}
	r := New(s1)

	s2 := &stubScreen{title: "question"}
	r.Push(s2)

	if r.Depth() != 2 {
		t.Errorf("expected depth 2, got %d", r.Depth())
	}
	if r.Active().Title() != "question" {
		t.Errorf("expected active 'question', got %q", r.Active().Title())
	}
	if !s2.initRan {
		t.Error("expected Init() to run on pushed screen")
	}
}

func TestPop(t *testing.T) {
	s1 := &stubScreen{title: "board"}
	r := New(s1)

	r.Push(&stubScreen{title: "question"})
	r.Pop()

	if r.Depth() != 1 {
		t.Errorf("expected depth 1, got %d", r.Depth())
	}
	if r.Active().Title() != "board" {
		t.Errorf("expected active 'board', got %q", r.Active().Title())
	}
}

func TestPopNoopAtBottom(t *testing.T) {
	r := New(&stubScreen{title: "home"})
	r.Pop()

	if r.Depth() != 1 {
		t.Errorf("expected depth 1 after popping bottom, got %d", r.Depth())
	}
}

func TestUpdateHandlesNavigationMessages(t *testing.T) {
	r := New(&stubScreen{title: "home"})

	r.Update(PushScreenMsg{Screen: &stubScreen{title: "board"}})
	if r.Depth() != 2 || r.Active().Title() != "board" {
		t.Errorf("push message not handled: depth=%d active=%q", r.Depth(), r.Active().Title())
	}

	r.Update(PopScreenMsg{})
	if r.Depth() != 1 || r.Active().Title() != "home" {
		t.Errorf("pop message not handled: depth=%d active=%q", r.Depth(), r.Active().Title())
	}
}
