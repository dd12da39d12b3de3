package analysis

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/ziadboudadi/Food-Price-Analysis---ABC-Classification--Algerian-markets/pkg/models/domain"
	"github.com/ziadboudadi/Food-Price-Analysis---ABC-Classification--Algerian-markets/pkg/services/loader"
)

// Config controls a single analysis run. Values come from an optional config
// file, FOODPRICES_* environment variables, and CLI flag overrides, in that
// order of increasing precedence.
type Config struct {
	OutputDir  string         `mapstructure:"output_dir"`
	TopN       int            `mapstructure:"top_n"`
	ACutoff    float64        `mapstructure:"a_cutoff"`
	BCutoff    float64        `mapstructure:"b_cutoff"`
	ExportCSV  bool           `mapstructure:"export_csv"`
	ExportXLSX bool           `mapstructure:"export_xlsx"`
	Columns    loader.Columns `mapstructure:"columns"`
}

func DefaultConfig() Config {
	return Config{
		OutputDir:  "output",
		TopN:       10,
		ACutoff:    0.80,
		BCutoff:    0.95,
		ExportCSV:  true,
		ExportXLSX: false,
		Columns:    loader.DefaultColumns(),
	}
}

// LoadConfig reads a config file if path is non-empty, otherwise only
// defaults and environment variables apply.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("FOODPRICES")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	defaults := DefaultConfig()
	v.SetDefault("output_dir", defaults.OutputDir)
	v.SetDefault("top_n", defaults.TopN)
	v.SetDefault("a_cutoff", defaults.ACutoff)
	v.SetDefault("b_cutoff", defaults.BCutoff)
	v.SetDefault("export_csv", defaults.ExportCSV)
	v.SetDefault("export_xlsx", defaults.ExportXLSX)
	v.SetDefault("columns.market", defaults.Columns.Market)
	v.SetDefault("columns.category", defaults.Columns.Category)
	v.SetDefault("columns.product", defaults.Columns.Product)
	v.SetDefault("columns.price", defaults.Columns.Price)
	v.SetDefault("columns.quantity", defaults.Columns.Quantity)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c Config) Thresholds() domain.Thresholds {
	return domain.Thresholds{ACutoff: c.ACutoff, BCutoff: c.BCutoff}
}

func (c Config) Validate() error {
	if err := c.Thresholds().Validate(); err != nil {
		return err
	}
	if c.TopN < 0 {
		return fmt.Errorf("top_n cannot be negative")
	}
	if c.OutputDir == "" {
		return fmt.Errorf("output_dir cannot be empty")
	}
	return nil
}
