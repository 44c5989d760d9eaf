// Package perf classifies per-fact performance into discrete categories
// for the progress board.
package perf

import (
	"fmt"
	"math"

	"github.com/abhisek/multiz/internal/stats"
)

// Category is a discrete performance bucket driving board color and label.
type Category int

const (
	NotAttempted Category = iota
	Excellent
	Great
	Good
	Ok
	Slow
	Wrong
)

// Classification thresholds in seconds, applied to the rolling average
// of stored correct-answer times.
const (
	ThresholdExcellent = 3.0
	ThresholdGreat     = 6.0
	ThresholdGood      = 10.0
	ThresholdOk        = 15.0
)

// Label returns the board legend text for the category.
func (c Category) Label() string {
	switch c {
	case NotAttempted:
		return "Not attempted"
	case Excellent:
		return "Excellent (0-3s)"
	case Great:
		return "Great! (3-6s)"
	case Good:
		return "Good (6-10s)"
	case Ok:
		return "Ok (10-15s)"
	case Slow:
		return "Slow (15+s)"
	case Wrong:
		return "Wrong answers"
	default:
		return "Unknown"
	}
}

// Classify maps a fact's stats to its performance category using the
// rolling average of stored correct times.
func Classify(s stats.FactStats) Category {
	avg, ok := stats.RollingAverage(s.Times)
	return ClassifyWithAvg(s, avg, ok)
}

// ClassifyWithAvg is Classify with an externally supplied average, so the
// bucketing can be exercised independently of the rolling window.
func ClassifyWithAvg(s stats.FactStats, avg float64, haveAvg bool) Category {
	if !s.Asked {
		return NotAttempted
	}

	// Red is only for facts with no correct time at all; any stored
	// correct time takes priority over the wrong count.
	if s.WrongCount > 0 && len(s.Times) == 0 {
		return Wrong
	}

	if !haveAvg {
		return NotAttempted
	}

	switch {
	case avg <= ThresholdExcellent:
		return Excellent
	case avg <= ThresholdGreat:
		return Great
	case avg <= ThresholdGood:
		return Good
	case avg <= ThresholdOk:
		return Ok
	default:
		return Slow
	}
}

// FormatTime renders an elapsed time as a whole-second label, e.g. "7s".
func FormatTime(seconds float64) string {
	return fmt.Sprintf("%ds", int(math.Round(seconds)))
}
