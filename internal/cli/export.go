package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rcliao/memcurve/internal/store"
)

func init() {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the ledger as JSON or YAML",
		Long:  "Export every ledger record. The output can be loaded back with import.",
		Run:   runExport,
	}

	cmd.Flags().StringP("encoding", "e", "json", "Document encoding: json or yaml")

	RootCmd.AddCommand(cmd)
}

func runExport(cmd *cobra.Command, args []string) {
	enc, _ := cmd.Flags().GetString("encoding")

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	b, err := store.Encode(store.ExportAll(loadLedger(cmd, s)), enc)
	if err != nil {
		exitErr("export", err)
	}
	fmt.Fprint(cmd.OutOrStdout(), string(b))
	if len(b) > 0 && b[len(b)-1] != '\n' {
		fmt.Fprintln(cmd.OutOrStdout())
	}
}
