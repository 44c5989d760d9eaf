// Package stats tracks per-fact attempt history and rolling performance data.
package stats

const (
	// MaxStoredTimes is the number of correct-answer times kept per fact.
	MaxStoredTimes = 5

	// MaxHistory is the number of chronological attempts kept per fact.
	MaxHistory = 10
)

// Outcome is the graded result of a single attempt.
type Outcome string

const (
	OutcomeCorrect Outcome = "correct"
	OutcomeWrong   Outcome = "wrong"
)

// AttemptRecord is one graded attempt. Time is set only for correct
// answers; Timestamp is milliseconds since the epoch and is used only
// for ordering.
type AttemptRecord struct {
	Type      Outcome  `json:"type"`
	Time      *float64 `json:"time"`
	Timestamp int64    `json:"timestamp"`
}

// FactStats is the stored performance record for a single fact.
type FactStats struct {
	// Times holds the elapsed seconds of the last MaxStoredTimes correct
	// answers, oldest first.
	Times []float64 `json:"times"`

	// WrongCount is the cumulative wrong-answer count. Never decremented.
	WrongCount int `json:"wrongCount"`

	// Asked is true once any attempt has been recorded.
	Asked bool `json:"asked"`

	// History holds the last MaxHistory attempts, oldest first.
	History []AttemptRecord `json:"history"`
}

// Clone returns a deep copy of the stats record.
func (s *FactStats) Clone() *FactStats {
	c := &FactStats{
		Times:      append([]float64(nil), s.Times...),
		WrongCount: s.WrongCount,
		Asked:      s.Asked,
		History:    append([]AttemptRecord(nil), s.History...),
	}
	return c
}

// LastOutcome returns the outcome of the most recent attempt, or "" if
// no history exists.
func (s *FactStats) LastOutcome() Outcome {
	if len(s.History) == 0 {
		return ""
	}
	return s.History[len(s.History)-1].Type
}

// RollingAverage returns the mean of the last MaxStoredTimes entries of
// times. The second return is false when times is empty.
func RollingAverage(times []float64) (float64, bool) {
	if len(times) == 0 {
		return 0, false
	}
	recent := times
	if len(recent) > MaxStoredTimes {
		recent = recent[len(recent)-MaxStoredTimes:]
	}
	sum := 0.0
	for _, t := range recent {
		sum += t
	}
	return sum / float64(len(recent)), true
}
