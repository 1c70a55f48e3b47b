package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rcliao/memcurve/internal/store"
)

func init() {
	cmd := &cobra.Command{
		Use:   "rm <word>",
		Short: "Forget a word so it is due again as new",
		Args:  cobra.ExactArgs(1),
		Run:   runRm,
	}

	RootCmd.AddCommand(cmd)
}

func runRm(cmd *cobra.Command, args []string) {
	word := args[0]

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	if err := store.Forget(cmd.Context(), s, word); err != nil {
		exitErr("rm", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), `{"ok":true,"word":%q}`+"\n", word)
}
