package cli

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/rcliao/memcurve/internal/session"
	"github.com/rcliao/memcurve/internal/tui"
)

func init() {
	cmd := &cobra.Command{
		Use:   "drill",
		Short: "Run a review session",
		Long: "Show due words one at a time. Press k if you know the word, u if you don't. " +
			"Results are saved to the ledger when you quit with q.",
		Run: runDrill,
	}

	cmd.Flags().Bool("allow-repeats", false, "Let words answered this session come up again")

	RootCmd.AddCommand(cmd)
}

func runDrill(cmd *cobra.Command, args []string) {
	repeats, _ := cmd.Flags().GetBool("allow-repeats")

	cat := loadCatalog()
	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	sess := session.New(session.Params{
		ID:           runID,
		Catalog:      cat,
		Ledger:       loadLedger(cmd, s),
		Scheduler:    newScheduler(),
		AllowRepeats: repeats || cfg.Scheduler.AllowRepeats,
		Logger:       slog.Default(),
	})

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	runErr := tui.Run(ctx, sess)
	stop()

	// Outcomes are committed even when the TUI fails.
	sum, err := sess.Commit(cmd.Context(), s)
	if err != nil {
		exitErr("commit session", err)
	}
	if runErr != nil {
		exitErr("drill", runErr)
	}

	if textOutput() {
		fmt.Fprintf(cmd.OutOrStdout(), "%s: shown %d, known %d, unknown %d, ledger %d words\n",
			sum.Date, sum.Shown, len(sum.Known), len(sum.Unknown), sum.LedgerSize)
		return
	}
	printJSON(cmd, sum)
}
