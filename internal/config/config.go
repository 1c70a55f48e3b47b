// Package config loads memcurve settings from defaults, a YAML config file
// and MEMCURVE_* environment variables.
package config

// Config holds all application configuration.
type Config struct {
	Catalog   CatalogConfig   `mapstructure:"catalog" validate:"required"`
	Ledger    LedgerConfig    `mapstructure:"ledger" validate:"required"`
	Curve     CurveConfig     `mapstructure:"curve" validate:"required"`
	Scheduler SchedulerConfig `mapstructure:"scheduler"`
	Log       LogConfig       `mapstructure:"log" validate:"required"`
}

// CatalogConfig points at the vocabulary list.
type CatalogConfig struct {
	Path string `mapstructure:"path" validate:"required"`
}

// LedgerConfig points at the persisted review ledger. The extension picks
// the format: .csv, .tsv, .xlsx or .db.
type LedgerConfig struct {
	Path string `mapstructure:"path" validate:"required"`
}

// CurveConfig holds the memory curve in days per level.
type CurveConfig struct {
	Intervals []int `mapstructure:"intervals" validate:"required,min=1,dive,gt=0"`
}

// SchedulerConfig tunes word selection.
type SchedulerConfig struct {
	// RetireMastered stops showing words past the end of the curve.
	RetireMastered bool `mapstructure:"retire_mastered"`
	// AllowRepeats lets a word answered earlier in the session come up again.
	AllowRepeats bool `mapstructure:"allow_repeats"`
}

// LogConfig controls the session log file.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
	Dir   string `mapstructure:"dir" validate:"required"`
}
