package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/multiz/internal/perf"
)

// Color palette
var (
	Primary   = lipgloss.Color("#8B5CF6") // Vivid Purple
	Secondary = lipgloss.Color("#14B8A6") // Teal
	Accent    = lipgloss.Color("#F97316") // Orange
	Success   = lipgloss.Color("#22C55E") // Green
	Error     = lipgloss.Color("#F43F5E") // Rose
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	BgCard    = lipgloss.Color("#1E293B") // Dark Slate
	Border    = lipgloss.Color("#334155") // Slate
)

// Performance palette, one hue per board category.
var (
	PerfGrey    = lipgloss.Color("#9ca3af") // Not attempted
	PerfGreen   = lipgloss.Color("#10b981") // Excellent
	PerfEmerald = lipgloss.Color("#059669") // Great
	PerfLime    = lipgloss.Color("#84cc16") // Good
	PerfYellow  = lipgloss.Color("#eab308") // Ok
	PerfOrange  = lipgloss.Color("#f97316") // Slow
	PerfRed     = lipgloss.Color("#ef4444") // Wrong answers
)

// CategoryColor maps a performance category to its board color.
func CategoryColor(c perf.Category) color.Color {
	switch c {
	case perf.Excellent:
		return PerfGreen
	case perf.Great:
		return PerfEmerald
	case perf.Good:
		return PerfLime
	case perf.Ok:
		return PerfYellow
	case perf.Slow:
		return PerfOrange
	case perf.Wrong:
		return PerfRed
	default:
		return PerfGrey
	}
}

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)
)
