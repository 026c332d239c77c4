package config

import (
	"fmt"
	"runtime"

	"github.com/Veraticus/formal-bridge/internal/common"
	"github.com/Veraticus/formal-bridge/internal/ingest"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to environment overrides, e.g. BRIDGE_WORKERS.
const EnvPrefix = "BRIDGE"

// maxWorkers bounds the sanitizer pool.
const maxWorkers = 64

// Logging controls the slog handler.
type Logging struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Config is the typed view of the bridge settings.
type Config struct {
	Logging        Logging              `mapstructure:"logging"`
	VocabularyPath string               `mapstructure:"vocabulary"`
	Columns        ingest.ColumnMapping `mapstructure:"columns"`
	Workers        int                  `mapstructure:"workers"`
	AutoCorrect    bool                 `mapstructure:"auto_correct"`
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("columns.name", "Creditor")
	v.SetDefault("columns.amount", "Amount")
	v.SetDefault("columns.tier", "")
	v.SetDefault("columns.date", "")
	v.SetDefault("columns.header_row", 1)
	v.SetDefault("workers", runtime.NumCPU())
	v.SetDefault("vocabulary", "")
	v.SetDefault("auto_correct", false)
}

// Load decodes and validates the settings held by v.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrInvalidConfig, err)
	}

	cfg.VocabularyPath = ExpandPath(cfg.VocabularyPath)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks ranges and required values.
func (c *Config) Validate() error {
	if _, err := common.ParseLevel(c.Logging.Level); err != nil {
		return err
	}
	if err := common.CheckLogFormat(c.Logging.Format); err != nil {
		return err
	}
	if c.Workers < 0 || c.Workers > maxWorkers {
		return fmt.Errorf("%w: workers must be between 0 and %d, got %d", common.ErrInvalidConfig, maxWorkers, c.Workers)
	}
	if c.Columns.Name == "" || c.Columns.Amount == "" {
		return fmt.Errorf("%w: columns.name and columns.amount", common.ErrMissingConfig)
	}
	if c.Columns.HeaderRow < 0 {
		return fmt.Errorf("%w: columns.header_row must not be negative", common.ErrInvalidConfig)
	}
	return nil
}
