// Package board derives the per-fact view records for the progress grid.
package board

import (
	"github.com/abhisek/multiz/internal/facts"
	"github.com/abhisek/multiz/internal/perf"
	"github.com/abhisek/multiz/internal/picker"
	"github.com/abhisek/multiz/internal/stats"
)

// WrongGlyph marks cells whose most recent answer was wrong.
const WrongGlyph = "✗"

// FactView is everything a board cell needs for one fact.
type FactView struct {
	Fact     facts.Fact
	Stats    stats.FactStats
	Category perf.Category
	Mode     perf.DisplayMode
	AvgTime  float64
	HasAvg   bool
	Weight   int
	Label    string
}

// Derive recomputes the full board from a stats store snapshot, in
// canonical fact order. Pure with respect to the store contents; callers
// re-derive after every recorded attempt instead of holding cached state.
func Derive(st *stats.Store) []FactView {
	views := make([]FactView, 0, facts.Count)
	for _, f := range facts.All() {
		fs := st.Get(f)
		avg, hasAvg, mode := perf.DisplayAverage(fs)

		label := ""
		switch {
		case mode == perf.DisplayWrong:
			label = WrongGlyph
		case hasAvg:
			label = perf.FormatTime(avg)
		}

		views = append(views, FactView{
			Fact:     f,
			Stats:    fs,
			Category: perf.Classify(fs),
			Mode:     mode,
			AvgTime:  avg,
			HasAvg:   hasAvg,
			Weight:   picker.Weight(fs),
			Label:    label,
		})
	}
	return views
}

// Weighted converts the derived board into sampler candidates, preserving
// canonical order.
func Weighted(views []FactView) []picker.WeightedFact {
	out := make([]picker.WeightedFact, 0, len(views))
	for _, v := range views {
		out = append(out, picker.WeightedFact{Fact: v.Fact, Weight: v.Weight})
	}
	return out
}
