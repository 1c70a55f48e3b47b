package cli

import (
	"fmt"

	"github.com/gobwas/glob"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "due",
		Short: "List words due for review today",
		Run:   runDue,
	}

	cmd.Flags().StringP("match", "m", "", "Only words matching this glob (e.g. 'pre*')")
	cmd.Flags().Bool("count", false, "Only print the number of due words")

	RootCmd.AddCommand(cmd)
}

type dueWord struct {
	Word     string `json:"word"`
	Phonetic string `json:"phonetic,omitempty"`
	Meaning  string `json:"meaning"`
	Level    *int   `json:"level,omitempty"`
}

func runDue(cmd *cobra.Command, args []string) {
	pattern, _ := cmd.Flags().GetString("match")
	countOnly, _ := cmd.Flags().GetBool("count")

	match, err := compileMatch(pattern)
	if err != nil {
		exitErr("compile --match", err)
	}

	cat := loadCatalog()
	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()
	l := loadLedger(cmd, s)

	words := []dueWord{}
	for _, e := range newScheduler().Due(cat, l, nil) {
		if !match(e.Word) {
			continue
		}
		w := dueWord{Word: e.Word, Phonetic: e.Phonetic, Meaning: e.Meaning}
		if rec, ok := l.Get(e.Word); ok {
			lvl := rec.Level
			w.Level = &lvl
		}
		words = append(words, w)
	}

	if countOnly {
		fmt.Fprintln(cmd.OutOrStdout(), len(words))
		return
	}
	if textOutput() {
		for _, w := range words {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", w.Word, w.Meaning)
		}
		return
	}
	printJSON(cmd, words)
}

// compileMatch returns a word filter for a glob pattern. An empty pattern
// matches everything.
func compileMatch(pattern string) (func(string) bool, error) {
	if pattern == "" {
		return func(string) bool { return true }, nil
	}
	g, err := glob.Compile(pattern)
	if err != nil {
		return nil, err
	}
	return g.Match, nil
}
