package cmd

import (
	"fmt"
	"os"

	"github.com/abhisek/multiz/internal/app"
	"github.com/abhisek/multiz/internal/picker"
	"github.com/abhisek/multiz/internal/session"
	"github.com/abhisek/multiz/internal/stats"
	"github.com/abhisek/multiz/internal/store"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
// A failing store degrades to in-memory-only practice rather than
// refusing to start.
func runApp(cmd *cobra.Command) error {
	var persister stats.Persister

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		fmt.Fprintln(os.Stderr, "resolve DB path:", err)
		fmt.Fprintln(os.Stderr, "Progress will not be saved this session.")
	} else {
		st, err := store.Open(dbPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, "open store:", err)
			fmt.Fprintln(os.Stderr, "Progress will not be saved this session.")
		} else {
			defer func() { _ = st.Close() }()
			persister = st
		}
	}

	ctrl := session.NewController(stats.NewStore(persister), picker.New())

	return app.Run(app.Options{Controller: ctrl})
}
