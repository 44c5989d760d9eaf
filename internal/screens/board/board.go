// Package board renders the 11×11 progress grid.
package board

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
	"github.com/abhisek/multiz/internal/screens/question"
	"github.com/abhisek/multiz/internal/session"
	"github.com/abhisek/multiz/internal/ui/layout"
	"github.com/abhisek/multiz/internal/ui/theme"
)

const (
	gridSize  = facts.MaxFactor - facts.MinFactor + 1
	cellWidth = 5
)

// BoardScreen shows the color-coded progress grid with a movable cursor.
type BoardScreen struct {
	ctrl *session.Controller
	row  int // cursor, 0-based over n
	col  int // cursor, 0-based over m
}

var _ screen.Screen = (*BoardScreen)(nil)
var _ screen.KeyHintProvider = (*BoardScreen)(nil)

// New creates a board screen over the given controller.
func New(ctrl *session.Controller) *BoardScreen {
	return &BoardScreen{ctrl: ctrl}
}

func (b *BoardScreen) Init() tea.Cmd {
	return nil
}

func (b *BoardScreen) Title() string {
	return "Progress Board"
}

func (b *BoardScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓←→", Description: "Move"},
		{Key: "Enter", Description: "Practice fact"},
		{Key: "L", Description: "Start lesson"},
		{Key: "Esc", Description: "Back"},
	}
}

func (b *BoardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return b, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if b.row > 0 {
			b.row--
		}
	case "down", "j":
		if b.row < gridSize-1 {
			b.row++
		}
	case "left", "h":
		if b.col > 0 {
			b.col--
		}
	case "right", "l":
		if b.col < gridSize-1 {
			b.col++
		}
	case "enter":
		f := b.selectedFact()
		b.ctrl.StartQuestion(f)
		return b, func() tea.Msg {
			return router.PushScreenMsg{Screen: question.New(b.ctrl)}
		}
	case "L", "shift+l":
		if err := b.ctrl.StartLesson(); err != nil {
			return b, nil
		}
		return b, func() tea.Msg {
			return router.PushScreenMsg{Screen: question.New(b.ctrl)}
		}
	}

	return b, nil
}

func (b *BoardScreen) selectedFact() facts.Fact {
	return facts.Fact{N: facts.MinFactor + b.row, M: facts.MinFactor + b.col}
}

func (b *BoardScreen) View(width, height int) string {
	views := boardmodel.Derive(b.ctrl.Store())

	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString(b.renderGrid(views))
	sb.WriteString("\n")
	sb.WriteString(b.renderSelection(views))
	sb.WriteString("\n\n")
	sb.WriteString(renderLegend())

	return lipgloss.PlaceHorizontal(width, lipgloss.Center, sb.String())
}

func (b *BoardScreen) renderGrid(views []boardmodel.FactView) string {
	dimmed := lipgloss.NewStyle().Foreground(theme.TextDim)

	var sb strings.Builder

	// Column header (m values).
	sb.WriteString(strings.Repeat(" ", cellWidth))
	for m := facts.MinFactor; m <= facts.MaxFactor; m++ {
		sb.WriteString(dimmed.Render(padCell(fmt.Sprintf("%d", m))))
	}
	sb.WriteString("\n")

	for r := 0; r < gridSize; r++ {
		sb.WriteString(dimmed.Render(padCell(fmt.Sprintf("%d", facts.MinFactor+r))))
		for c := 0; c < gridSize; c++ {
			v := views[r*gridSize+c]
			sb.WriteString(b.renderCell(v, r == b.row && c == b.col))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

func (b *BoardScreen) renderCell(v boardmodel.FactView, selected bool) string {
	label := v.Label
	if label == "" {
		label = "·"
	}

	style := lipgloss.NewStyle().Foreground(theme.CategoryColor(v.Category))
	if selected {
		style = style.Reverse(true).Bold(true)
	}
	return style.Render(padCell(label))
}

func (b *BoardScreen) renderSelection(views []boardmodel.FactView) string {
	v := views[b.row*gridSize+b.col]

	detail := fmt.Sprintf("%s = %d   %s", v.Fact, v.Fact.Answer(), v.Category.Label())
	if v.Stats.WrongCount > 0 {
		detail += fmt.Sprintf("   %d wrong", v.Stats.WrongCount)
	}
	if v.HasAvg {
		detail += fmt.Sprintf("   avg %s", perf.FormatTime(v.AvgTime))
	}

	return lipgloss.NewStyle().Foreground(theme.Text).Render(detail)
}

func renderLegend() string {
	categories := []perf.Category{
		perf.NotAttempted, perf.Excellent, perf.Great, perf.Good,
		perf.Ok, perf.Slow, perf.Wrong,
	}

	parts := make([]string, 0, len(categories))
	for _, c := range categories {
		dot := lipgloss.NewStyle().Foreground(theme.CategoryColor(c)).Render("■")
		label := lipgloss.NewStyle().Foreground(theme.TextDim).Render(c.Label())
		parts = append(parts, dot+" "+label)
	}

	return strings.Join(parts[:4], "  ") + "\n" + strings.Join(parts[4:], "  ")
}

// padCell centers text in a fixed-width cell.
func padCell(s string) string {
	w := lipgloss.Width(s)
	if w >= cellWidth {
		return s
	}
	left := (cellWidth - w) / 2
	right := cellWidth - w - left
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
}
