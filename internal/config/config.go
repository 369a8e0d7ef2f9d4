package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/sethvargo/go-envconfig"
)

// DefaultFileName is looked up in the user's home directory when no
// config path is given.
const DefaultFileName = ".weightstats.toml"

// the overwrite option makes a set env var win over values already loaded
// from defaults or the TOML file
type Config struct {
	// weights table name in the remote store
	Table string `toml:"table" env:"WEIGHTSTATS_TABLE, overwrite"`

	// optional static credentials trio - all three or none; when absent,
	// the ambient/default credential chain is used
	AWSAccessKeyID     string `toml:"aws_access_key_id" env:"WEIGHTSTATS_AWS_ACCESS_KEY_ID, overwrite"`
	AWSSecretAccessKey string `toml:"aws_secret_access_key" env:"WEIGHTSTATS_AWS_SECRET_ACCESS_KEY, overwrite"`
	AWSRegion          string `toml:"aws_region" env:"WEIGHTSTATS_AWS_REGION, overwrite"`

	// command defaults
	DefaultListDays  int     `toml:"default_list_days" env:"WEIGHTSTATS_DEFAULT_LIST_DAYS, overwrite"`
	DefaultPlotWeeks int     `toml:"default_plot_weeks" env:"WEIGHTSTATS_DEFAULT_PLOT_WEEKS, overwrite"`
	DefaultTarget    float64 `toml:"default_target" env:"WEIGHTSTATS_DEFAULT_TARGET, overwrite"`

	// logging
	LogLevel    string `toml:"log_level" env:"WEIGHTSTATS_LOG_LEVEL, overwrite"`
	LogsPath    string `toml:"logs_path" env:"WEIGHTSTATS_LOGS_PATH, overwrite"`
	LogToStderr bool   `toml:"log_to_stderr" env:"WEIGHTSTATS_LOG_TO_STDERR, overwrite"`
}

func Default() Config {
	return Config{
		Table:            "weights",
		DefaultListDays:  2,
		DefaultPlotWeeks: 4,
		DefaultTarget:    80,
		LogLevel:         "warn",
	}
}

// Load builds the configuration: defaults, then the TOML file (a missing
// file is fine), then environment variable overrides. The result is
// validated and never mutated afterwards.
func Load(ctx context.Context, path string) (Config, error) {
	cfg := Default()

	if path == "" {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, DefaultFileName)
		}
	}
	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("decode config file %s: %w", path, err)
		}
	}

	if err := envconfig.Process(ctx, &cfg); err != nil {
		return Config{}, fmt.Errorf("process env config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) Validate() error {
	credsSet := 0
	for _, value := range []string{c.AWSAccessKeyID, c.AWSSecretAccessKey, c.AWSRegion} {
		if value != "" {
			credsSet++
		}
	}
	if credsSet != 0 && credsSet != 3 {
		return errors.New("aws access key id, secret access key and region must be given together")
	}

	if c.Table == "" {
		return errors.New("table cannot be empty")
	}
	if c.DefaultListDays <= 0 {
		return errors.New("default_list_days must be positive")
	}
	if c.DefaultPlotWeeks <= 0 {
		return errors.New("default_plot_weeks must be positive")
	}

	return nil
}
