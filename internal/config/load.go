package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/rcliao/memcurve/internal/curve"
	"github.com/rcliao/memcurve/internal/model"
)

// EnvPrefix prefixes every environment override, e.g. MEMCURVE_LEDGER_PATH.
const EnvPrefix = "MEMCURVE"

// Home returns the memcurve state directory: $MEMCURVE_HOME, else
// ~/.memcurve.
func Home() string {
	if h := os.Getenv(EnvPrefix + "_HOME"); h != "" {
		return h
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".memcurve")
}

func setDefaults(v *viper.Viper) {
	home := Home()
	v.SetDefault("catalog.path", "words.csv")
	v.SetDefault("ledger.path", filepath.Join(home, "memory_curve.csv"))
	v.SetDefault("curve.intervals", model.DefaultCurve)
	v.SetDefault("scheduler.retire_mastered", false)
	v.SetDefault("scheduler.allow_repeats", false)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.dir", filepath.Join(home, "logs"))
}

// Load reads configuration. path names an explicit config file; when empty
// config.yaml in Home() is used if it exists. Environment variables take
// precedence over the file, which takes precedence over defaults.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(Home())
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	cfg.Catalog.Path = expandHome(cfg.Catalog.Path)
	cfg.Ledger.Path = expandHome(cfg.Ledger.Path)
	cfg.Log.Dir = expandHome(cfg.Log.Dir)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks struct tags and the shape of the curve.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if err := curve.Curve(c.Curve.Intervals).Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

func expandHome(p string) string {
	if p == "~" || strings.HasPrefix(p, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(p, "~"))
		}
	}
	return p
}
