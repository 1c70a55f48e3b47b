package cli

import (
	"fmt"

	"cloud.google.com/go/civil"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List ledger records",
		Run:   runList,
	}

	cmd.Flags().StringP("match", "m", "", "Only words matching this glob")
	cmd.Flags().IntP("limit", "n", 20, "Max results (0 for all)")
	cmd.Flags().Bool("words-only", false, "Only output words")

	RootCmd.AddCommand(cmd)
}

type listedRecord struct {
	Word     string      `json:"word"`
	Level    int         `json:"level"`
	Date     civil.Date  `json:"date"`
	NextDue  *civil.Date `json:"next_due,omitempty"`
	Mastered bool        `json:"mastered,omitempty"`
}

func runList(cmd *cobra.Command, args []string) {
	pattern, _ := cmd.Flags().GetString("match")
	limit, _ := cmd.Flags().GetInt("limit")
	wordsOnly, _ := cmd.Flags().GetBool("words-only")

	match, err := compileMatch(pattern)
	if err != nil {
		exitErr("compile --match", err)
	}

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	c := newScheduler().Curve()
	records := []listedRecord{}
	for _, r := range loadLedger(cmd, s).Records() {
		if !match(r.Word) {
			continue
		}
		if limit > 0 && len(records) >= limit {
			break
		}
		lr := listedRecord{Word: r.Word, Level: r.Level, Date: r.Date, Mastered: c.Mastered(r.Level)}
		if due, ok := c.NextDue(r); ok {
			lr.NextDue = &due
		}
		records = append(records, lr)
	}

	if wordsOnly {
		for _, r := range records {
			fmt.Fprintln(cmd.OutOrStdout(), r.Word)
		}
		return
	}
	if textOutput() {
		for _, r := range records {
			next := "mastered"
			if r.NextDue != nil {
				next = r.NextDue.String()
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\tlevel %d\tseen %s\tnext %s\n", r.Word, r.Level, r.Date, next)
		}
		return
	}
	printJSON(cmd, records)
}
