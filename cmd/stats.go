package cmd

import (
	"fmt"
	"os"

	"github.com/abhisek/multiz/internal/board"
	"github.com/abhisek/multiz/internal/perf"
	"github.com/abhisek/multiz/internal/stats"
	"github.com/abhisek/multiz/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show practice statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		var persister stats.Persister

		dbPath, err := resolveDBPath(cmd)
		if err == nil {
			st, err := store.Open(dbPath)
			if err != nil {
				fmt.Fprintln(os.Stderr, "open store:", err)
			} else {
				defer func() { _ = st.Close() }()
				persister = st
			}
		}

		views := board.Derive(stats.NewStore(persister))

		attempted := 0
		counts := make(map[perf.Category]int)
		var needsWork []board.FactView
		for _, v := range views {
			counts[v.Category]++
			if v.Stats.Asked {
				attempted++
			}
			if v.Category == perf.Slow || v.Category == perf.Wrong {
				needsWork = append(needsWork, v)
			}
		}

		fmt.Printf("Attempted: %d of %d facts\n\n", attempted, len(views))

		for _, c := range []perf.Category{
			perf.Excellent, perf.Great, perf.Good, perf.Ok, perf.Slow, perf.Wrong, perf.NotAttempted,
		} {
			if counts[c] == 0 {
				continue
			}
			fmt.Printf("%-18s %d\n", c.Label(), counts[c])
		}

		if len(needsWork) > 0 {
			fmt.Println("\nNeeds work:")
			for _, v := range needsWork {
				if v.HasAvg {
					fmt.Printf("  %s  avg %s\n", v.Fact, perf.FormatTime(v.AvgTime))
				} else {
					fmt.Printf("  %s  %d wrong\n", v.Fact, v.Stats.WrongCount)
				}
			}
		}

		return nil
	},
}
