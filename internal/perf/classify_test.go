package perf

import (
	"testing"

	"github.com/abhisek/multiz/internal/stats"
)

func TestClassifyNotAttempted(t *testing.T) {
	// Not-asked wins over every other field.
	s := stats.FactStats{
		Times:      []float64{1, 2},
		WrongCount: 5,
		Asked:      false,
	}
	if got := Classify(s); got != NotAttempted {
		t.Errorf("Classify = %v, want NotAttempted", got)
	}
}

func TestClassifyWrongOnlyWithoutCorrectTimes(t *testing.T) {
	s := stats.FactStats{WrongCount: 3, Asked: true}
	if got := Classify(s); got != Wrong {
		t.Errorf("Classify = %v, want Wrong", got)
	}

	// A single correct time takes priority over any wrong count.
	s.Times = []float64{4}
	if got := Classify(s); got == Wrong {
		t.Error("correct times present, category must not be Wrong")
	}
}

func TestClassifyThresholds(t *testing.T) {
	tests := []struct {
		name  string
		times []float64
		want  Category
	}{
		{"excellent", []float64{2, 2.5, 3}, Excellent},
		{"excellent boundary", []float64{3}, Excellent},
		{"great", []float64{4, 4.5, 5}, Great},
		{"great boundary", []float64{6}, Great},
		{"good", []float64{8}, Good},
		{"good boundary", []float64{10}, Good},
		{"ok", []float64{12}, Ok},
		{"ok boundary", []float64{15}, Ok},
		{"slow", []float64{20}, Slow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := stats.FactStats{Times: tt.times, Asked: true}
			if got := Classify(s); got != tt.want {
				t.Errorf("Classify(%v) = %v, want %v", tt.times, got, tt.want)
			}
		})
	}
}

func TestClassifyWithAvgOverride(t *testing.T) {
	s := stats.FactStats{Times: []float64{20}, Asked: true}
	if got := ClassifyWithAvg(s, 2, true); got != Excellent {
		t.Errorf("override avg=2 should classify Excellent, got %v", got)
	}
	// Asked but no average available at all falls back to NotAttempted.
	s2 := stats.FactStats{Asked: true}
	if got := ClassifyWithAvg(s2, 0, false); got != NotAttempted {
		t.Errorf("no average should classify NotAttempted, got %v", got)
	}
}

func TestFormatTime(t *testing.T) {
	tests := []struct {
		seconds float64
		want    string
	}{
		{2.4, "2s"},
		{2.5, "3s"},
		{7, "7s"},
		{0, "0s"},
	}
	for _, tt := range tests {
		if got := FormatTime(tt.seconds); got != tt.want {
			t.Errorf("FormatTime(%v) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}

func TestCategoryLabels(t *testing.T) {
	if NotAttempted.Label() != "Not attempted" {
		t.Errorf("NotAttempted label = %q", NotAttempted.Label())
	}
	if Great.Label() != "Great! (3-6s)" {
		t.Errorf("Great label = %q", Great.Label())
	}
	if Category(99).Label() != "Unknown" {
		t.Errorf("out-of-range label = %q", Category(99).Label())
	}
}
