package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rcliao/memcurve/internal/store"
)

func init() {
	cmd := &cobra.Command{
		Use:   "history <word>",
		Short: "Show every recorded review of a word",
		Long:  "Show the review log of a word. Only SQLite ledgers (.db) keep a review log.",
		Args:  cobra.ExactArgs(1),
		Run:   runHistory,
	}

	RootCmd.AddCommand(cmd)
}

func runHistory(cmd *cobra.Command, args []string) {
	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	h, ok := s.(store.HistoryStore)
	if !ok {
		exitErr("history", store.ErrNoHistory)
	}
	entries, err := h.History(cmd.Context(), args[0])
	if err != nil {
		exitErr("history", err)
	}

	if textOutput() {
		for _, e := range entries {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", e.Date, e.Outcome, e.SessionID)
		}
		return
	}
	if entries == nil {
		entries = []store.HistoryEntry{}
	}
	printJSON(cmd, entries)
}
