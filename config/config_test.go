package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateConfig_Rejects(t *testing.T) {
	cases := map[string]struct {
		cfg  Config
		want string
	}{
		"negative log level":  {Config{LogLevel: -1, LogFormat: "json"}, "log level must be between 0 and 5"},
		"log level above 5":   {Config{LogLevel: 6, LogFormat: "json"}, "log level must be between 0 and 5"},
		"unknown log format":  {Config{LogLevel: 2, LogFormat: "xml"}, "log format must be 'json' or 'console'"},
		"unknown db backend":  {Config{LogLevel: 1, LogFormat: "json", DBBackend: "rocksdb"}, "db backend must be"},
		"port out of range":   {Config{LogLevel: 1, LogFormat: "json", QueryServerPort: 70000}, "query server port must be between 1 and 65535"},
		"negative port value": {Config{LogLevel: 1, LogFormat: "console", QueryServerPort: -2}, "query server port"},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := tc.cfg
			err := validateConfig(&cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestValidateConfig_KeepsExplicitValues(t *testing.T) {
	cfg := Config{
		LogLevel:        2,
		LogFormat:       "json",
		ChainID:         "daic-test-1",
		DBBackend:       DBBackendMemDB,
		IndexerDBFile:   "read.db",
		QueryServerPort: 9000,
	}
	require.NoError(t, validateConfig(&cfg))

	assert.Equal(t, "daic-test-1", cfg.ChainID)
	assert.Equal(t, DBBackendMemDB, cfg.DBBackend)
	assert.Equal(t, "read.db", cfg.IndexerDBFile)
	assert.Equal(t, 9000, cfg.QueryServerPort)
}

func TestValidateConfig_AppliesDefaults(t *testing.T) {
	cfg := Config{LogLevel: 2, LogFormat: "console", ChainID: "   "}
	require.NoError(t, validateConfig(&cfg))

	assert.Equal(t, "daic-local-1", cfg.ChainID)
	assert.Equal(t, DBBackendGoLevelDB, cfg.DBBackend)
	assert.Equal(t, "indexer.db", cfg.IndexerDBFile)
	assert.Equal(t, 8080, cfg.QueryServerPort)
}

func TestLoadDefaultConfig(t *testing.T) {
	cfg, err := LoadDefaultConfig()
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, 1, cfg.LogLevel)
	assert.Equal(t, "console", cfg.LogFormat)
	assert.Equal(t, DBBackendGoLevelDB, cfg.DBBackend)
	assert.Equal(t, 8080, cfg.QueryServerPort)
	assert.True(t, cfg.MetricsEnabled)
	assert.False(t, cfg.LedgerParams.EnforceForwardStatus)
	assert.False(t, cfg.LedgerParams.RejectZeroContributions)
	require.NoError(t, validateConfig(cfg))
}

func TestSaveThenLoad(t *testing.T) {
	home := t.TempDir()

	cfg, err := LoadDefaultConfig()
	require.NoError(t, err)
	cfg.NodeHome = home
	cfg.QueryServerPort = 9191
	cfg.LedgerParams.EnforceForwardStatus = true

	require.NoError(t, Save(cfg, home))

	info, err := os.Stat(FilePath(home))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "config", "daic_config.json"), FilePath(home))
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	loaded, err := Load(home)
	require.NoError(t, err)
	assert.Equal(t, 9191, loaded.QueryServerPort)
	assert.True(t, loaded.LedgerParams.EnforceForwardStatus)
	assert.Equal(t, filepath.Join(home, "data"), loaded.DataDir())
	assert.Equal(t, filepath.Join(home, "data", "indexer.db"), loaded.IndexerDBPath())
}

func TestIndexerDBPath_Absolute(t *testing.T) {
	abs := filepath.Join(t.TempDir(), "elsewhere.db")
	cfg := Config{NodeHome: "/node", IndexerDBFile: abs}
	assert.Equal(t, abs, cfg.IndexerDBPath())
}

func TestSave_RejectsInvalidConfig(t *testing.T) {
	home := t.TempDir()
	err := Save(&Config{LogLevel: 9, LogFormat: "json"}, home)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")

	_, statErr := os.Stat(FilePath(home))
	assert.True(t, os.IsNotExist(statErr))
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoad_MalformedFile(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(home, "config"), 0o750))
	require.NoError(t, os.WriteFile(FilePath(home), []byte("{"), 0o600))

	_, err := Load(home)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot decode")
}
