package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rcliao/memcurve/internal/store"
)

func init() {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show catalog and ledger statistics",
		Run:   runStats,
	}

	RootCmd.AddCommand(cmd)
}

func runStats(cmd *cobra.Command, args []string) {
	cat := loadCatalog()
	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	stats := store.ComputeStats(s.Path(), cat, loadLedger(cmd, s), newScheduler())

	if textOutput() {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "catalog:  %d words (%d unseen)\n", stats.CatalogWords, stats.Unseen)
		fmt.Fprintf(out, "ledger:   %d words, %d bytes\n", stats.Recorded, stats.LedgerSizeBytes)
		fmt.Fprintf(out, "due:      %d\n", stats.Due)
		fmt.Fprintf(out, "mastered: %d\n", stats.Mastered)
		for _, lc := range stats.Levels {
			fmt.Fprintf(out, "  level %d: %d\n", lc.Level, lc.Count)
		}
		return
	}
	printJSON(cmd, stats)
}
