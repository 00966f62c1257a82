package config

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/daic-network/daic-node/logger"
)

const (
	configSubdir   = "config"
	configFileName = "daic_config.json"

	// DataSubdir holds the state and indexer databases.
	DataSubdir = "data"

	defaultChainID         = "daic-local-1"
	defaultIndexerDBFile   = "indexer.db"
	defaultQueryServerPort = 8080
	maxLogLevel            = 5
)

//go:embed default_config.json
var defaultConfigJSON []byte

// validateConfig fills unset fields with their defaults and rejects values
// the node cannot run with.
func validateConfig(cfg *Config) error {
	if cfg.LogLevel < 0 || cfg.LogLevel > maxLogLevel {
		return fmt.Errorf("log level must be between 0 and %d", maxLogLevel)
	}
	switch cfg.LogFormat {
	case logger.FormatJSON, logger.FormatConsole:
	default:
		return fmt.Errorf("log format must be '%s' or '%s'", logger.FormatJSON, logger.FormatConsole)
	}

	if strings.TrimSpace(cfg.ChainID) == "" {
		cfg.ChainID = defaultChainID
	}

	switch cfg.DBBackend {
	case "":
		cfg.DBBackend = DBBackendGoLevelDB
	case DBBackendGoLevelDB, DBBackendPebbleDB, DBBackendMemDB:
	default:
		return fmt.Errorf("db backend must be '%s', '%s' or '%s'", DBBackendGoLevelDB, DBBackendPebbleDB, DBBackendMemDB)
	}
	if cfg.IndexerDBFile == "" {
		cfg.IndexerDBFile = defaultIndexerDBFile
	}

	if cfg.QueryServerPort == 0 {
		cfg.QueryServerPort = defaultQueryServerPort
	}
	if cfg.QueryServerPort < 0 || cfg.QueryServerPort > 65535 {
		return fmt.Errorf("query server port must be between 1 and 65535")
	}

	if err := cfg.LedgerParams.ValidateBasic(); err != nil {
		return fmt.Errorf("invalid ledger params: %w", err)
	}
	return nil
}

// FilePath returns <home>/config/daic_config.json.
func FilePath(home string) string {
	return filepath.Join(home, configSubdir, configFileName)
}

// Save validates cfg and writes it to FilePath(home).
func Save(cfg *Config, home string) error {
	if err := validateConfig(cfg); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	path := FilePath(home)
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("cannot create %s: %w", filepath.Dir(path), err)
	}

	bz, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("cannot encode config: %w", err)
	}
	if err := os.WriteFile(path, bz, 0o600); err != nil {
		return fmt.Errorf("cannot write %s: %w", path, err)
	}
	return nil
}

// Load reads FilePath(home) and returns it validated, with defaults applied.
func Load(home string) (Config, error) {
	path := FilePath(home)
	bz, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(bz, &cfg); err != nil {
		return Config{}, fmt.Errorf("cannot decode %s: %w", path, err)
	}
	if err := validateConfig(&cfg); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// LoadDefaultConfig returns the embedded defaults.
func LoadDefaultConfig() (*Config, error) {
	cfg := new(Config)
	if err := json.Unmarshal(defaultConfigJSON, cfg); err != nil {
		return nil, fmt.Errorf("embedded default config is malformed: %w", err)
	}
	return cfg, nil
}

// DataDir returns <NodeHome>/data.
func (c Config) DataDir() string {
	return filepath.Join(c.NodeHome, DataSubdir)
}

// IndexerDBPath returns the SQLite file of the read model.
func (c Config) IndexerDBPath() string {
	if filepath.IsAbs(c.IndexerDBFile) {
		return c.IndexerDBFile
	}
	return filepath.Join(c.DataDir(), c.IndexerDBFile)
}
