package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/daic-network/daic-node/config"
	"github.com/daic-network/daic-node/utils"
)

const (
	flagHome      = "home"
	flagQueryPort = "query-port"
	flagLogLevel  = "log-level"
	flagNode      = "node"
	flagOutput    = "output"
	flagFrom      = "from"
)

// DefaultNodeHome is used when neither --home nor DAIC_HOME is set.
var DefaultNodeHome = func() string {
	userHome, err := os.UserHomeDir()
	if err != nil {
		return ".daic"
	}
	return filepath.Join(userHome, ".daic")
}()

// newViper resolves settings from bound flags first, then DAIC_* variables.
func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(utils.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

func NewRootCmd() *cobra.Command {
	v := newViper()

	rootCmd := &cobra.Command{
		Use:           "daicd",
		Short:         "DAIC quadratic funding ledger node",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.String(flagHome, DefaultNodeHome, fmt.Sprintf("Node home directory (env %s)", utils.EnvKey(flagHome)))
	flags.Int(flagQueryPort, 0, fmt.Sprintf("Query server port, overrides the config file (env %s)", utils.EnvKey(flagQueryPort)))
	flags.Int(flagLogLevel, 0, fmt.Sprintf("Log level 0-5, overrides the config file (env %s)", utils.EnvKey(flagLogLevel)))
	flags.String(flagNode, "", fmt.Sprintf("Query server URL, defaults to http://localhost:<query-port> (env %s)", utils.EnvKey(flagNode)))
	for _, name := range []string{flagHome, flagQueryPort, flagLogLevel, flagNode} {
		_ = v.BindPFlag(name, flags.Lookup(name))
	}

	InitRootCmd(rootCmd, v)

	return rootCmd
}

func InitRootCmd(rootCmd *cobra.Command, v *viper.Viper) {
	rootCmd.AddCommand(
		initCmd(v),
		startCmd(v),
		exportCmd(v),
		versionCmd(),
		txCmd(v),
		queryCmd(v),
	)
}

func nodeHome(v *viper.Viper) string {
	if home := v.GetString(flagHome); home != "" {
		return home
	}
	return DefaultNodeHome
}

// loadNodeConfig reads <home>/config/daic_config.json and applies flag and
// environment overrides.
func loadNodeConfig(v *viper.Viper) (config.Config, error) {
	home := nodeHome(v)
	cfg, err := config.Load(home)
	if err != nil {
		return config.Config{}, fmt.Errorf("failed to load config from %s (run `daicd init` first): %w", home, err)
	}
	cfg.NodeHome = home

	if v.IsSet(flagQueryPort) {
		port, err := cast.ToIntE(v.Get(flagQueryPort))
		if err != nil {
			return config.Config{}, fmt.Errorf("invalid %s: %w", flagQueryPort, err)
		}
		if port != 0 {
			cfg.QueryServerPort = port
		}
	}
	if v.IsSet(flagLogLevel) {
		level, err := cast.ToIntE(v.Get(flagLogLevel))
		if err != nil {
			return config.Config{}, fmt.Errorf("invalid %s: %w", flagLogLevel, err)
		}
		if level < 0 || level > 5 {
			return config.Config{}, fmt.Errorf("log level must be between 0 and 5")
		}
		cfg.LogLevel = level
	}
	return cfg, nil
}

// nodeURL resolves the query server base URL from --node, or from the query
// port of the local config.
func nodeURL(v *viper.Viper) (string, error) {
	if node := v.GetString(flagNode); node != "" {
		return strings.TrimRight(node, "/"), nil
	}

	if v.IsSet(flagQueryPort) {
		if port := cast.ToInt(v.Get(flagQueryPort)); port != 0 {
			return fmt.Sprintf("http://localhost:%d", port), nil
		}
	}

	cfg, err := loadNodeConfig(v)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("http://localhost:%d", cfg.QueryServerPort), nil
}
