package perf

import (
	"math"
	"testing"

	"github.com/abhisek/multiz/internal/stats"
)

func correct(t float64) stats.AttemptRecord {
	return stats.AttemptRecord{Type: stats.OutcomeCorrect, Time: &t}
}

func wrong() stats.AttemptRecord {
	return stats.AttemptRecord{Type: stats.OutcomeWrong}
}

func TestDisplayAverageLastFiveWindow(t *testing.T) {
	// Seven entries; the last-five window starts at the third.
	s := stats.FactStats{
		Asked: true,
		History: []stats.AttemptRecord{
			correct(10),
			correct(12),
			correct(2),
			wrong(),
			correct(4),
			correct(6),
			correct(8),
		},
	}
	avg, ok, mode := DisplayAverage(s)
	if mode != DisplayTime {
		t.Fatalf("mode = %v, want DisplayTime", mode)
	}
	if !ok {
		t.Fatal("expected an average")
	}
	// Window = [2, wrong, 4, 6, 8]; correct times average to 5.
	if math.Abs(avg-5.0) > 0.001 {
		t.Errorf("avg = %f, want 5.0", avg)
	}
}

func TestDisplayAverageLastWrongWins(t *testing.T) {
	s := stats.FactStats{
		Asked: true,
		History: []stats.AttemptRecord{
			correct(2),
			correct(3),
			wrong(),
		},
	}
	_, ok, mode := DisplayAverage(s)
	if mode != DisplayWrong {
		t.Errorf("mode = %v, want DisplayWrong", mode)
	}
	if ok {
		t.Error("wrong mode must not carry an average")
	}
}

func TestDisplayAverageAllWrongWindow(t *testing.T) {
	s := stats.FactStats{
		Asked: true,
		History: []stats.AttemptRecord{
			correct(2), correct(2),
			wrong(), wrong(), wrong(), wrong(), wrong(),
		},
	}
	_, ok, mode := DisplayAverage(s)
	if mode != DisplayWrong {
		t.Errorf("mode = %v, want DisplayWrong", mode)
	}
	if ok {
		t.Error("no average expected when last five are all wrong")
	}
}

func TestDisplayAverageNoHistoryFallsBackToTimes(t *testing.T) {
	// Pre-history records have times but an empty history.
	s := stats.FactStats{
		Asked: true,
		Times: []float64{4, 6},
	}
	avg, ok, mode := DisplayAverage(s)
	if mode != DisplayTime || !ok {
		t.Fatalf("mode=%v ok=%v, want time mode with average", mode, ok)
	}
	if math.Abs(avg-5.0) > 0.001 {
		t.Errorf("avg = %f, want 5.0", avg)
	}
}

func TestDisplayAverageEmpty(t *testing.T) {
	var s stats.FactStats
	_, ok, mode := DisplayAverage(s)
	if ok || mode != DisplayTime {
		t.Errorf("empty stats: ok=%v mode=%v, want no average in time mode", ok, mode)
	}
}

func TestDisplayDivergesFromClassifyAverage(t *testing.T) {
	// Rolling buffer holds old fast times while the history window has a
	// single slow correct answer: color and display number disagree.
	s := stats.FactStats{
		Asked: true,
		Times: []float64{2, 2, 2, 2, 2},
		History: []stats.AttemptRecord{
			wrong(), wrong(), wrong(), wrong(),
			correct(14),
		},
	}
	avg, ok, _ := DisplayAverage(s)
	if !ok || math.Abs(avg-14.0) > 0.001 {
		t.Errorf("display avg = %f (ok=%v), want 14.0", avg, ok)
	}
	if got := Classify(s); got != Excellent {
		t.Errorf("classify = %v, want Excellent from rolling buffer", got)
	}
}
