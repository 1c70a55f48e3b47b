package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("MEMCURVE_HOME", home)
	for _, k := range []string{
		"MEMCURVE_CATALOG_PATH", "MEMCURVE_LEDGER_PATH", "MEMCURVE_LOG_LEVEL",
		"MEMCURVE_LOG_DIR", "MEMCURVE_SCHEDULER_RETIRE_MASTERED",
	} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
	return home
}

func TestLoadDefaults(t *testing.T) {
	home := isolate(t)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "words.csv", cfg.Catalog.Path)
	assert.Equal(t, filepath.Join(home, "memory_curve.csv"), cfg.Ledger.Path)
	assert.Equal(t, []int{1, 2, 4, 7, 15, 30, 90, 180}, cfg.Curve.Intervals)
	assert.False(t, cfg.Scheduler.RetireMastered)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, filepath.Join(home, "logs"), cfg.Log.Dir)
}

func TestLoadConfigFileInHome(t *testing.T) {
	home := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(home, "config.yaml"), []byte(`
catalog:
  path: /data/words.xlsx
curve:
  intervals: [1, 3, 9]
scheduler:
  retire_mastered: true
log:
  level: debug
`), 0o644))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "/data/words.xlsx", cfg.Catalog.Path)
	assert.Equal(t, []int{1, 3, 9}, cfg.Curve.Intervals)
	assert.True(t, cfg.Scheduler.RetireMastered)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	home := isolate(t)
	path := filepath.Join(home, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("ledger:\n  path: /from/file.csv\n"), 0o644))
	t.Setenv("MEMCURVE_LEDGER_PATH", "/from/env.db")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/from/env.db", cfg.Ledger.Path)
}

func TestLoadExplicitMissingFile(t *testing.T) {
	isolate(t)
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	cases := map[string]string{
		"bad level":     "log:\n  level: loud\n",
		"zero interval": "curve:\n  intervals: [1, 0, 4]\n",
		"shrinking":     "curve:\n  intervals: [4, 2]\n",
		"empty catalog": "catalog:\n  path: \"\"\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			home := isolate(t)
			path := filepath.Join(home, "config.yaml")
			require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "x.csv"), expandHome("~/x.csv"))
	assert.Equal(t, "/abs/x.csv", expandHome("/abs/x.csv"))
}
