package config_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/2beens/weightstats/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	// point at a missing file so neither the real home config nor the
	// environment interferes
	path := filepath.Join(t.TempDir(), "nope.toml")

	cfg, err := config.Load(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, "weights", cfg.Table)
	assert.Equal(t, 2, cfg.DefaultListDays)
	assert.Equal(t, 4, cfg.DefaultPlotWeeks)
	assert.Equal(t, 80.0, cfg.DefaultTarget)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Empty(t, cfg.AWSAccessKeyID)
}

func TestLoad_TomlFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "weightstats.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
table = "my-weights"
aws_access_key_id = "key-id"
aws_secret_access_key = "secret"
aws_region = "eu-central-1"
default_list_days = 7
default_target = 78.5
log_level = "debug"
`), 0o600))

	cfg, err := config.Load(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, "my-weights", cfg.Table)
	assert.Equal(t, "key-id", cfg.AWSAccessKeyID)
	assert.Equal(t, "eu-central-1", cfg.AWSRegion)
	assert.Equal(t, 7, cfg.DefaultListDays)
	assert.Equal(t, 4, cfg.DefaultPlotWeeks) // untouched default
	assert.Equal(t, 78.5, cfg.DefaultTarget)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_EnvOverridesDefaults(t *testing.T) {
	// no config file at all: env vars must still win over the built-in
	// defaults
	path := filepath.Join(t.TempDir(), "nope.toml")

	t.Setenv("WEIGHTSTATS_TABLE", "env-table")
	t.Setenv("WEIGHTSTATS_DEFAULT_PLOT_WEEKS", "12")
	t.Setenv("WEIGHTSTATS_DEFAULT_TARGET", "77.5")
	t.Setenv("WEIGHTSTATS_LOG_LEVEL", "trace")

	cfg, err := config.Load(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, "env-table", cfg.Table)
	assert.Equal(t, 12, cfg.DefaultPlotWeeks)
	assert.Equal(t, 77.5, cfg.DefaultTarget)
	assert.Equal(t, "trace", cfg.LogLevel)
	assert.Equal(t, 2, cfg.DefaultListDays) // untouched default
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "weightstats.toml")
	require.NoError(t, os.WriteFile(path, []byte(`table = "from-file"`), 0o600))

	t.Setenv("WEIGHTSTATS_TABLE", "from-env")
	t.Setenv("WEIGHTSTATS_DEFAULT_LIST_DAYS", "3")

	cfg, err := config.Load(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.Table)
	assert.Equal(t, 3, cfg.DefaultListDays)
}

func TestLoad_BadTomlFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "weightstats.toml")
	require.NoError(t, os.WriteFile(path, []byte(`table = `), 0o600))

	_, err := config.Load(context.Background(), path)
	assert.Error(t, err)
}

func TestValidate_CredentialsTrio(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())

	cfg.AWSAccessKeyID = "key-id"
	assert.Error(t, cfg.Validate())

	cfg.AWSSecretAccessKey = "secret"
	assert.Error(t, cfg.Validate())

	cfg.AWSRegion = "eu-central-1"
	assert.NoError(t, cfg.Validate())
}

func TestValidate_Defaults(t *testing.T) {
	cfg := config.Default()

	cfg.Table = ""
	assert.Error(t, cfg.Validate())

	cfg = config.Default()
	cfg.DefaultListDays = 0
	assert.Error(t, cfg.Validate())

	cfg = config.Default()
	cfg.DefaultPlotWeeks = -1
	assert.Error(t, cfg.Validate())
}
