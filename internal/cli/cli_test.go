package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rcliao/memcurve/internal/catalog"
	"github.com/rcliao/memcurve/internal/model"
)

// resetFlags puts every flag back to its default so runs do not leak into
// each other through the package-level RootCmd.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.PersistentFlags().VisitAll(reset)
	c.Flags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

type env struct {
	home    string
	catalog string
	ledger  string
}

func newEnv(t *testing.T, ledgerName string) env {
	t.Helper()
	home := t.TempDir()
	t.Setenv("MEMCURVE_HOME", home)
	for _, k := range []string{"MEMCURVE_CATALOG_PATH", "MEMCURVE_LEDGER_PATH", "MEMCURVE_LOG_DIR"} {
		os.Unsetenv(k)
	}
	catalogPath := filepath.Join(home, "words.csv")
	require.NoError(t, os.WriteFile(catalogPath, []byte(
		"cat,kat,a small feline\ndog,dog,a canine\nemu,ee-myoo,a large bird\n"), 0o644))
	return env{home: home, catalog: catalogPath, ledger: filepath.Join(home, ledgerName)}
}

func (e env) run(t *testing.T, args ...string) string {
	t.Helper()
	resetFlags(RootCmd)
	var out bytes.Buffer
	RootCmd.SetOut(&out)
	RootCmd.SetIn(strings.NewReader(""))
	RootCmd.SetArgs(append([]string{"--catalog", e.catalog, "--ledger", e.ledger}, args...))
	require.NoError(t, RootCmd.Execute())
	return out.String()
}

func TestMarkThenList(t *testing.T) {
	e := newEnv(t, "memory_curve.csv")
	e.run(t, "mark", "--known", "cat", "--unknown", "dog", "--today", "2024-05-01")

	var records []listedRecord
	require.NoError(t, json.Unmarshal([]byte(e.run(t, "list", "--today", "2024-05-01")), &records))
	require.Len(t, records, 2)
	assert.Equal(t, "cat", records[0].Word)
	assert.Equal(t, 0, records[0].Level)
	require.NotNil(t, records[0].NextDue)
	assert.Equal(t, "2024-05-02", records[0].NextDue.String())
	assert.Equal(t, "dog", records[1].Word)

	e.run(t, "mark", "--known", "cat", "--today", "2024-05-02")
	out := e.run(t, "list", "--match", "c*", "-f", "text")
	assert.Equal(t, "cat\tlevel 1\tseen 2024-05-02\tnext 2024-05-04\n", out)
}

func TestDueCount(t *testing.T) {
	e := newEnv(t, "memory_curve.csv")
	assert.Equal(t, "3\n", e.run(t, "due", "--count", "--today", "2024-05-01"))

	e.run(t, "mark", "--known", "cat,dog", "--today", "2024-05-01")
	assert.Equal(t, "1\n", e.run(t, "due", "--count", "--today", "2024-05-01"))
	assert.Equal(t, "3\n", e.run(t, "due", "--count", "--today", "2024-05-02"))

	var words []dueWord
	require.NoError(t, json.Unmarshal([]byte(e.run(t, "due", "--match", "e*", "--today", "2024-05-01")), &words))
	require.Len(t, words, 1)
	assert.Equal(t, "emu", words[0].Word)
	assert.Nil(t, words[0].Level)
}

func TestRmForgetsWord(t *testing.T) {
	e := newEnv(t, "memory_curve.csv")
	e.run(t, "mark", "--known", "cat,dog", "--today", "2024-05-01")
	e.run(t, "rm", "cat")
	assert.Equal(t, "dog\n", e.run(t, "list", "--words-only"))
}

func TestExportImportIntoSQLite(t *testing.T) {
	e := newEnv(t, "memory_curve.csv")
	e.run(t, "mark", "--known", "cat", "--unknown", "emu", "--today", "2024-05-01")
	exported := e.run(t, "export", "--encoding", "yaml")
	assert.Contains(t, exported, "word: cat")

	src := filepath.Join(e.home, "export.yaml")
	require.NoError(t, os.WriteFile(src, []byte(exported), 0o644))

	db := env{home: e.home, catalog: e.catalog, ledger: filepath.Join(e.home, "memory.db")}
	assert.Contains(t, db.run(t, "import", src), `"imported":2`)
	assert.Equal(t, "cat\nemu\n", db.run(t, "list", "--words-only"))
}

func TestHistoryFromSQLiteLedger(t *testing.T) {
	e := newEnv(t, "memory.db")
	e.run(t, "mark", "--known", "cat", "--today", "2024-05-01")
	e.run(t, "mark", "--unknown", "cat", "--today", "2024-05-03")

	out := e.run(t, "history", "cat", "-f", "text")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "2024-05-01\tknown\t"))
	assert.True(t, strings.HasPrefix(lines[1], "2024-05-03\tunknown\t"))
}

func TestStats(t *testing.T) {
	e := newEnv(t, "memory_curve.csv")
	e.run(t, "mark", "--known", "cat", "--today", "2024-05-01")

	var stats map[string]any
	require.NoError(t, json.Unmarshal([]byte(e.run(t, "stats", "--today", "2024-05-01")), &stats))
	assert.EqualValues(t, 3, stats["catalog_words"])
	assert.EqualValues(t, 1, stats["recorded"])
	assert.EqualValues(t, 2, stats["unseen"])
	assert.EqualValues(t, 2, stats["due"])
}

func TestCheckWordsRejectsWordsOutsideCatalog(t *testing.T) {
	cat := catalog.New([]model.WordEntry{{Word: "cat"}, {Word: "dog"}})

	assert.NoError(t, checkWords(cat, []string{"cat", "dog"}))

	err := checkWords(cat, []string{"cat", "kat", "dgo"})
	assert.ErrorIs(t, err, errNotInCatalog)
	assert.Contains(t, err.Error(), "kat, dgo")
}
