package question

import "time"

// timerTickMsg drives the cosmetic elapsed-time display. Recorded times
// come from timestamps at submission, not from these ticks.
type timerTickMsg time.Time

// bannerClearMsg hides the mid-lesson feedback banner.
type bannerClearMsg struct{}
