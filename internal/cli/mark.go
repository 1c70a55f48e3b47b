package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rcliao/memcurve/internal/catalog"
	"github.com/rcliao/memcurve/internal/session"
)

func init() {
	cmd := &cobra.Command{
		Use:   "mark",
		Short: "Record outcomes without the TUI",
		Long: "Record known and unknown words as one session and save it to the ledger. " +
			"Every word must be in the catalog. A word listed in both ends up unknown.",
		Run: runMark,
	}

	cmd.Flags().String("known", "", "Words you knew (comma-separated)")
	cmd.Flags().String("unknown", "", "Words you did not know (comma-separated)")

	RootCmd.AddCommand(cmd)
}

func runMark(cmd *cobra.Command, args []string) {
	knownStr, _ := cmd.Flags().GetString("known")
	unknownStr, _ := cmd.Flags().GetString("unknown")

	known, unknown := splitWords(knownStr), splitWords(unknownStr)
	if len(known) == 0 && len(unknown) == 0 {
		exitErr("mark", errors.New("nothing to record: pass --known and/or --unknown"))
	}

	cat := loadCatalog()
	if err := checkWords(cat, append(known, unknown...)); err != nil {
		exitErr("mark", err)
	}

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	sess := session.New(session.Params{
		ID:        runID,
		Catalog:   cat,
		Ledger:    loadLedger(cmd, s),
		Scheduler: newScheduler(),
		Logger:    slog.Default(),
	})
	for _, w := range known {
		sess.Recorder().MarkKnown(w)
	}
	for _, w := range unknown {
		sess.Recorder().MarkUnknown(w)
	}

	sum, err := sess.Commit(cmd.Context(), s)
	if err != nil {
		exitErr("commit session", err)
	}

	if textOutput() {
		fmt.Fprintf(cmd.OutOrStdout(), "known %d, unknown %d, ledger %d words\n",
			len(sum.Known), len(sum.Unknown), sum.LedgerSize)
		return
	}
	printJSON(cmd, sum)
}

// checkWords rejects words missing from the catalog so a typo never becomes
// a ledger record.
func checkWords(cat *catalog.Catalog, words []string) error {
	var missing []string
	for _, w := range words {
		if _, ok := cat.Lookup(w); !ok {
			missing = append(missing, w)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", errNotInCatalog, strings.Join(missing, ", "))
	}
	return nil
}

var errNotInCatalog = errors.New("not in catalog")

func splitWords(s string) []string {
	var words []string
	for _, w := range strings.Split(s, ",") {
		w = strings.TrimSpace(w)
		if w != "" {
			words = append(words, w)
		}
	}
	return words
}
