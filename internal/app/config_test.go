package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bikeshare.onebusaway.org/internal/appconf"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := LoadConfig(viper.New(), "")
	require.NoError(t, err)

	assert.Equal(t, ".", cfg.DataDir)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, appconf.Development, cfg.Environment())
}

func TestLoadConfig_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bikeshare.yaml")
	content := `data_dir: /srv/bikeshare
env: production
log_level: debug
log_format: json
cities:
  washington: dc_trips.csv
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := LoadConfig(viper.New(), path)
	require.NoError(t, err)

	assert.Equal(t, "/srv/bikeshare", cfg.DataDir)
	assert.Equal(t, appconf.Production, cfg.Environment())
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, map[string]string{"washington": "dc_trips.csv"}, cfg.Cities)

	tripCfg := cfg.TripData()
	assert.Equal(t, "/srv/bikeshare", tripCfg.DataDir)
	assert.Equal(t, map[string]string{"washington": "dc_trips.csv"}, tripCfg.Files)
}

func TestLoadConfig_Env(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("BIKESHARE_DATA_DIR", "/data")
	t.Setenv("BIKESHARE_LOG_FORMAT", "json")

	cfg, err := LoadConfig(viper.New(), "")
	require.NoError(t, err)
	assert.Equal(t, "/data", cfg.DataDir)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoadConfig_Errors(t *testing.T) {
	t.Run("explicit file missing", func(t *testing.T) {
		_, err := LoadConfig(viper.New(), filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("unsupported city override", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bikeshare.yaml")
		require.NoError(t, os.WriteFile(path, []byte("cities:\n  boston: boston.csv\n"), 0o600))

		_, err := LoadConfig(viper.New(), path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "boston")
	})

	t.Run("bad log format", func(t *testing.T) {
		t.Chdir(t.TempDir())
		t.Setenv("BIKESHARE_LOG_FORMAT", "xml")
		_, err := LoadConfig(viper.New(), "")
		assert.Error(t, err)
	})
}
