package perf

import "github.com/abhisek/multiz/internal/stats"

// DisplayMode selects what a board cell shows for a fact.
type DisplayMode int

const (
	// DisplayTime shows the recent average time (or nothing if none).
	DisplayTime DisplayMode = iota

	// DisplayWrong shows the wrong-answer glyph.
	DisplayWrong
)

// DisplayAverage derives the cell display for a fact from its chronological
// history. The window here is the last five history entries, which is not
// the same as the rolling buffer of stored correct times: a run of wrong
// answers pushes correct times out of this window while the rolling buffer
// still holds them, so the displayed number and the cell color can diverge.
//
// Rules:
//   - last attempt wrong: wrong mode, no average, regardless of older
//     correct answers;
//   - last attempt correct: time mode, mean of correct times within the
//     last five history entries only (none there: no average);
//   - no history (pre-history data): time mode, rolling average of the
//     stored correct times.
func DisplayAverage(s stats.FactStats) (avg float64, haveAvg bool, mode DisplayMode) {
	if len(s.History) == 0 {
		avg, haveAvg = stats.RollingAverage(s.Times)
		return avg, haveAvg, DisplayTime
	}

	if s.LastOutcome() == stats.OutcomeWrong {
		return 0, false, DisplayWrong
	}

	window := s.History
	if len(window) > 5 {
		window = window[len(window)-5:]
	}

	sum := 0.0
	count := 0
	for _, rec := range window {
		if rec.Type == stats.OutcomeCorrect && rec.Time != nil {
			sum += *rec.Time
			count++
		}
	}
	if count == 0 {
		return 0, false, DisplayTime
	}
	return sum / float64(count), true, DisplayTime
}
