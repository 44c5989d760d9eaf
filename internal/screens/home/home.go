// Package home is the application's entry screen.
package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	boardmodel "github.com/abhisek/multiz/internal/board"
	"github.com/abhisek/multiz/internal/facts"
	"github.com/abhisek/multiz/internal/perf"
	"github.com/abhisek/multiz/internal/router"
	"github.com/abhisek/multiz/internal/screen"
	boardscreen "github.com/abhisek/multiz/internal/screens/board"
	"github.com/abhisek/multiz/internal/screens/question"
	"github.com/abhisek/multiz/internal/session"
	"github.com/abhisek/multiz/internal/ui/components"
	"github.com/abhisek/multiz/internal/ui/layout"
	"github.com/abhisek/multiz/internal/ui/theme"
)

// HomeScreen is the main menu.
type HomeScreen struct {
	ctrl         *session.Controller
	menu         components.Menu
	confirmReset bool
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates a new HomeScreen over the given controller.
func New(ctrl *session.Controller) *HomeScreen {
	h := &HomeScreen{ctrl: ctrl}

	items := []components.MenuItem{
		{Label: "PROGRESS BOARD", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: boardscreen.New(ctrl)}
			}
		}},
		{Label: "START LESSON", Action: func() tea.Cmd {
			if err := ctrl.StartLesson(); err != nil {
				return nil
			}
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: question.New(ctrl)}
			}
		}},
		{Label: "RESET PROGRESS", Action: func() tea.Cmd {
			h.confirmReset = true
			return nil
		}},
		{Label: "QUIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	h.menu = components.NewMenu(items)
	return h
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	if h.confirmReset {
		return []layout.KeyHint{
			{Key: "Y", Description: "Reset everything"},
			{Key: "N", Description: "Keep my progress"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if h.confirmReset {
		if kmsg, ok := msg.(tea.KeyMsg); ok {
			switch kmsg.String() {
			case "y", "Y", "shift+y":
				h.ctrl.Store().Reset()
				h.confirmReset = false
			case "n", "N", "shift+n", "esc":
				h.confirmReset = false
			}
		}
		return h, nil
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	title := theme.Title.Width(width).Render("M U L T I Z")
	subtitle := theme.Subtitle.Width(width).Render("Multiplication tables, one fact at a time")
	sections = append(sections, title+"\n"+subtitle)

	sections = append(sections, h.renderSummary(width))

	if h.confirmReset {
		warn := theme.Incorrect.Render("Reset all progress? This cannot be undone. (y/n)")
		sections = append(sections, lipgloss.PlaceHorizontal(width, lipgloss.Center, warn))
	} else {
		sections = append(sections, lipgloss.PlaceHorizontal(width, lipgloss.Center, h.menu.View()))
	}

	return "\n" + strings.Join(sections, "\n\n")
}

// renderSummary shows how much of the universe has been attempted and
// how much is answered fast.
func (h *HomeScreen) renderSummary(width int) string {
	attempted, fast := 0, 0
	for _, v := range boardmodel.Derive(h.ctrl.Store()) {
		if v.Stats.Asked {
			attempted++
		}
		if v.Category == perf.Excellent || v.Category == perf.Great {
			fast++
		}
	}

	line := fmt.Sprintf("%d/%d facts attempted   %d answered fast", attempted, facts.Count, fast)
	return lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(line))
}
