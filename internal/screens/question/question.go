// Package question runs the active-question view for single practice
// and lessons.
package question

import (
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/multiz/internal/facts"
	"github.com/abhisek/multiz/internal/router"
	"github.com/abhisek/multiz/internal/screen"
	"github.com/abhisek/multiz/internal/session"
	"github.com/abhisek/multiz/internal/ui/components"
	"github.com/abhisek/multiz/internal/ui/layout"
	"github.com/abhisek/multiz/internal/ui/theme"
)

// timerInterval is the display refresh rate for the elapsed readout.
const timerInterval = 100 * time.Millisecond

// bannerDuration is how long mid-lesson feedback stays visible.
const bannerDuration = 1500 * time.Millisecond

// banner is the previous answer's result, shown without blocking the
// next question's timer.
type banner struct {
	fact    facts.Fact
	correct bool
}

// QuestionScreen drives one question at a time until the controller
// returns to idle.
type QuestionScreen struct {
	ctrl *session.Controller

	input  components.TextInput
	banner *banner
	done   bool

	// Lesson tallies for the end view.
	wasLesson int // total questions when lesson context was present
	answered  int
	correct   int
}

var _ screen.Screen = (*QuestionScreen)(nil)
var _ screen.KeyHintProvider = (*QuestionScreen)(nil)
var _ screen.EscHandler = (*QuestionScreen)(nil)

// New creates a question screen; the controller must already be in a
// question (StartQuestion or StartLesson called).
func New(ctrl *session.Controller) *QuestionScreen {
	q := &QuestionScreen{
		ctrl:  ctrl,
		input: components.NewTextInput("answer", true, 4),
	}
	if p, ok := ctrl.LessonProgress(); ok {
		q.wasLesson = p.Total
	}
	return q
}

func (q *QuestionScreen) Init() tea.Cmd {
	return tea.Batch(q.input.Init(), tick())
}

func (q *QuestionScreen) Title() string {
	if q.wasLesson > 0 {
		return "Lesson"
	}
	return "Practice"
}

func (q *QuestionScreen) KeyHints() []layout.KeyHint {
	if q.done {
		return []layout.KeyHint{{Key: "any key", Description: "Back to board"}}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Submit"},
		{Key: "Esc", Description: "Give up"},
	}
}

// HandleEsc abandons the question (and any remaining lesson queue)
// without recording an attempt.
func (q *QuestionScreen) HandleEsc() tea.Cmd {
	q.ctrl.Cancel()
	return func() tea.Msg { return router.PopScreenMsg{} }
}

func (q *QuestionScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case timerTickMsg:
		if q.ctrl.State() == session.InQuestion {
			return q, tick()
		}
		return q, nil

	case bannerClearMsg:
		q.banner = nil
		return q, nil

	case tea.KeyMsg:
		if q.done {
			return q, func() tea.Msg { return router.PopScreenMsg{} }
		}
		if msg.String() == "enter" {
			return q, q.submit()
		}
	}

	if !q.done {
		var cmd tea.Cmd
		q.input, cmd = q.input.Update(msg)
		return q, cmd
	}
	return q, nil
}

func (q *QuestionScreen) submit() tea.Cmd {
	fact, ok := q.ctrl.Current()
	if !ok {
		return nil
	}

	answer, err := q.input.NumericValue()
	if err != nil {
		// Nothing typed yet.
		return nil
	}

	correct := answer == fact.Answer()
	q.ctrl.SubmitAnswer(correct)

	q.answered++
	if correct {
		q.correct++
	}
	q.banner = &banner{fact: fact, correct: correct}
	q.input.Reset()

	if q.ctrl.State() == session.Idle {
		q.done = true
		return nil
	}
	return tea.Tick(bannerDuration, func(time.Time) tea.Msg { return bannerClearMsg{} })
}

func (q *QuestionScreen) View(width, height int) string {
	if q.done {
		return q.renderDone(width)
	}

	fact, ok := q.ctrl.Current()
	if !ok {
		return ""
	}

	var sb string

	if p, inLesson := q.ctrl.LessonProgress(); inLesson {
		bar := components.NewProgressBar(
			fmt.Sprintf("Question %d/%d", p.Current, p.Total),
			float64(p.Current-1)/float64(p.Total),
			false,
			width/2,
		)
		sb += lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()) + "\n\n"
	} else {
		sb += "\n\n"
	}

	questionStyle := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true)
	sb += questionStyle.Render(fmt.Sprintf("%s = ?", fact)) + "\n\n"

	sb += lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render("Answer: "+q.input.View()) + "\n\n"

	elapsed := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%.1fs", q.ctrl.Elapsed()))
	sb += elapsed

	if q.banner != nil {
		sb += "\n\n" + q.renderBanner(width)
	}

	return sb
}

func (q *QuestionScreen) renderBanner(width int) string {
	b := q.banner
	var line string
	if b.correct {
		line = theme.Correct.Render(fmt.Sprintf("Correct! %s = %d", b.fact, b.fact.Answer()))
	} else {
		line = theme.Incorrect.Render(fmt.Sprintf("Wrong. %s = %d", b.fact, b.fact.Answer()))
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, line)
}

func (q *QuestionScreen) renderDone(width int) string {
	var sb string
	sb += "\n\n"

	if q.wasLesson > 0 {
		sb += lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Primary).
			Bold(true).
			Render("Lesson complete!") + "\n\n"
		sb += lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Text).
			Render(fmt.Sprintf("%d of %d correct", q.correct, q.answered))
	} else if q.banner != nil {
		sb += q.renderBanner(width)
	}

	sb += "\n\n" + lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Press any key to return to the board")

	return sb
}

func tick() tea.Cmd {
	return tea.Tick(timerInterval, func(t time.Time) tea.Msg { return timerTickMsg(t) })
}
