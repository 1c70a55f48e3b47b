// Package cli implements the memcurve CLI commands.
package cli

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"cloud.google.com/go/civil"
	"github.com/spf13/cobra"

	"github.com/rcliao/memcurve/internal/catalog"
	"github.com/rcliao/memcurve/internal/config"
	"github.com/rcliao/memcurve/internal/curve"
	"github.com/rcliao/memcurve/internal/ledger"
	"github.com/rcliao/memcurve/internal/logging"
	"github.com/rcliao/memcurve/internal/session"
	"github.com/rcliao/memcurve/internal/store"
)

var (
	configPath  string
	catalogPath string
	ledgerPath  string
	formatFlag  string
	todayFlag   string

	cfg      *config.Config
	runID    string
	closeLog = func() error { return nil }
)

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "memcurve",
	Short: "Spaced-repetition vocabulary drills",
	Long: "memcurve drills vocabulary on a fixed memory curve. Words you know come back after " +
		"1, 2, 4, 7, 15, 30, 90 and 180 days; words you miss start over.",
	PersistentPreRun:  setup,
	PersistentPostRun: func(*cobra.Command, []string) { _ = closeLog() },
	SilenceUsage:      true,
}

func init() {
	RootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default: $MEMCURVE_HOME/config.yaml)")
	RootCmd.PersistentFlags().StringVarP(&catalogPath, "catalog", "c", "", "Vocabulary file: .csv, .tsv or .xlsx")
	RootCmd.PersistentFlags().StringVarP(&ledgerPath, "ledger", "l", "", "Ledger file: .csv, .tsv, .xlsx or .db")
	RootCmd.PersistentFlags().StringVarP(&formatFlag, "format", "f", "json", "Output format: json or text")
	RootCmd.PersistentFlags().StringVar(&todayFlag, "today", "", "Override today's date (YYYY-MM-DD)")
	_ = RootCmd.PersistentFlags().MarkHidden("today")
}

func setup(cmd *cobra.Command, args []string) {
	c, err := config.Load(configPath)
	if err != nil {
		exitErr("load config", err)
	}
	if catalogPath != "" {
		c.Catalog.Path = catalogPath
	}
	if ledgerPath != "" {
		c.Ledger.Path = ledgerPath
	}
	cfg = c

	runID = session.NewID()
	_, closer, err := logging.Setup(c.Log, runID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
	}
	closeLog = closer
	slog.Debug("command started", "cmd", cmd.Name(), "catalog", c.Catalog.Path, "ledger", c.Ledger.Path)
}

func loadCatalog() *catalog.Catalog {
	c, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		exitErr("load catalog", err)
	}
	return c
}

func openStore() (store.Store, error) {
	return store.Open(cfg.Ledger.Path)
}

func loadLedger(cmd *cobra.Command, s store.Store) *ledger.Ledger {
	l, _, err := s.Load(cmd.Context())
	if err != nil {
		exitErr("load ledger", err)
	}
	return l
}

func newScheduler() *curve.Scheduler {
	opts := curve.Options{
		Curve:          curve.Curve(cfg.Curve.Intervals),
		RetireMastered: cfg.Scheduler.RetireMastered,
	}
	if todayFlag != "" {
		d, err := civil.ParseDate(todayFlag)
		if err != nil {
			exitErr("parse --today", err)
		}
		opts.Today = func() civil.Date { return d }
	}
	return curve.NewScheduler(opts)
}

func printJSON(cmd *cobra.Command, v any) {
	b, _ := json.MarshalIndent(v, "", "  ")
	fmt.Fprintln(cmd.OutOrStdout(), string(b))
}

func textOutput() bool { return formatFlag == "text" }

func exitErr(msg string, err error) {
	slog.Error(msg, "err", err)
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
	_ = closeLog()
	os.Exit(1)
}
