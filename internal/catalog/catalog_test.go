package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rcliao/memcurve/internal/model"
	"github.com/rcliao/memcurve/internal/tabular"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadCSV(t *testing.T) {
	path := writeFile(t, "words.csv", "cat,mi aw,a feline\ndog,dɔɡ,\"a canine, loyal\"\n\n")

	c, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 2, c.Len())
	assert.Equal(t, model.WordEntry{Word: "cat", Phonetic: "mi aw", Meaning: "a feline"}, c.Entries()[0])

	dog, ok := c.Lookup("dog")
	require.True(t, ok)
	assert.Equal(t, "a canine, loyal", dog.Meaning)

	_, ok = c.Lookup("bird")
	assert.False(t, ok)
}

func TestLoadXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.xlsx")
	require.NoError(t, tabular.Write(path, "", [][]any{
		{"abandon", "əˈbændən", "to give up"},
		{"ability", "", "skill"},
		{"able"},
	}))

	c, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 3, c.Len())
	assert.Equal(t, "", c.Entries()[1].Phonetic)
	assert.Equal(t, "able", c.Entries()[2].Word)
	assert.Equal(t, "", c.Entries()[2].Meaning)
}

func TestLoadDuplicatesFirstWins(t *testing.T) {
	path := writeFile(t, "words.csv", "cat,kat,first\ndog,dog,canine\ncat,kat,second\n")

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, c.Len())
	assert.Equal(t, []string{"cat"}, c.Duplicates())

	cat, _ := c.Lookup("cat")
	assert.Equal(t, "first", cat.Meaning)
}

func TestLoadErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "words.csv"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
	t.Run("empty file", func(t *testing.T) {
		_, err := Load(writeFile(t, "words.csv", "\n\n"))
		assert.ErrorIs(t, err, ErrEmptyCatalog)
	})
	t.Run("row without word", func(t *testing.T) {
		_, err := Load(writeFile(t, "words.csv", "cat,kat,feline\n,kat,orphan meaning\n"))
		assert.ErrorIs(t, err, ErrMalformedRow)
	})
	t.Run("unsupported extension", func(t *testing.T) {
		_, err := Load(writeFile(t, "words.xls", "cat"))
		assert.ErrorIs(t, err, tabular.ErrUnsupportedFormat)
	})
}

func TestLoadWithByteOrderMark(t *testing.T) {
	path := writeFile(t, "words.csv", "\ufeffcat,kat,a feline\ndog,dog,a canine\n")

	c, err := Load(path)
	require.NoError(t, err)
	cat, ok := c.Lookup("cat")
	require.True(t, ok)
	assert.Equal(t, "cat", cat.Word)
	assert.Equal(t, "cat", c.Entries()[0].Word)
}
