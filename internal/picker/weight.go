// Package picker biases question selection toward facts that need practice.
package picker

import (
	"github.com/abhisek/multiz/internal/perf"
	"github.com/abhisek/multiz/internal/stats"
)

// Selection weight bonuses. A fact's weight starts at BaseWeight and
// accumulates bonuses for being unseen, answered wrong, or answered
// slowly; only the single matching speed tier applies.
const (
	BaseWeight       = 1
	NotAskedBonus    = 3
	WrongAnswerBonus = 2
	SlowBonus        = 3
	OkBonus          = 2
	GoodBonus        = 1
)

// Weight computes the sampling weight for a fact from its stats.
func Weight(s stats.FactStats) int {
	avg, ok := stats.RollingAverage(s.Times)
	return WeightWithAvg(s, avg, ok)
}

// WeightWithAvg is Weight with an externally supplied average.
func WeightWithAvg(s stats.FactStats, avg float64, haveAvg bool) int {
	w := BaseWeight

	if !s.Asked {
		w += NotAskedBonus
	}

	w += s.WrongCount * WrongAnswerBonus

	if haveAvg {
		switch {
		case avg > perf.ThresholdOk:
			w += SlowBonus
		case avg > perf.ThresholdGood:
			w += OkBonus
		case avg > perf.ThresholdGreat:
			w += GoodBonus
		}
	}

	return w
}
