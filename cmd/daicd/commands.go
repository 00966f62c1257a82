package main

import (
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	sdkversion "github.com/cosmos/cosmos-sdk/version"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/daic-network/daic-node/api"
	"github.com/daic-network/daic-node/app"
	"github.com/daic-network/daic-node/config"
	"github.com/daic-network/daic-node/indexer"
	"github.com/daic-network/daic-node/logger"
	"github.com/daic-network/daic-node/metrics"
)

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print daicd version info",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Name:       %s\n", sdkversion.Name)
			fmt.Fprintf(out, "App Name:   %s\n", sdkversion.AppName)
			fmt.Fprintf(out, "Version:    %s\n", sdkversion.Version)
			fmt.Fprintf(out, "Commit:     %s\n", sdkversion.Commit)
			fmt.Fprintf(out, "Build Tags: %s\n", sdkversion.BuildTags)
		},
	}
}

func initCmd(v *viper.Viper) *cobra.Command {
	var (
		chainID   string
		backend   string
		authority string
		overwrite bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create the default config and genesis under the node home",
		RunE: func(cmd *cobra.Command, args []string) error {
			home := nodeHome(v)
			genesisPath := app.GenesisFilePath(home)

			if _, err := config.Load(home); err == nil && !overwrite {
				return fmt.Errorf("node home %s is already initialized (use --overwrite)", home)
			}

			cfg, err := config.LoadDefaultConfig()
			if err != nil {
				return err
			}
			cfg.NodeHome = home
			if chainID != "" {
				cfg.ChainID = chainID
			}
			if backend != "" {
				cfg.DBBackend = config.DBBackend(backend)
			}
			if authority != "" {
				cfg.Authority = authority
			}
			if err := config.Save(cfg, home); err != nil {
				return err
			}

			genesis := app.NewDefaultGenesisState(cfg.LedgerParams)
			if err := app.SaveGenesisFile(genesis, genesisPath); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Initialized %s (chain %s, backend %s)\n", home, cfg.ChainID, cfg.DBBackend)
			return nil
		},
	}

	cmd.Flags().StringVar(&chainID, "chain-id", "", "Chain ID written to the config")
	cmd.Flags().StringVar(&backend, "db-backend", "", "State database backend (goleveldb|pebbledb|memdb)")
	cmd.Flags().StringVar(&authority, "authority", "", "Identity allowed to update ledger params")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Overwrite an existing config and genesis")
	return cmd
}

func startCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Run the ledger host, the event indexer and the query server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadNodeConfig(v)
			if err != nil {
				return err
			}

			log := logger.New(cfg.LogLevel, cfg.LogFormat, cfg.LogSampler)
			log.Info().
				Str("home", cfg.NodeHome).
				Str("chain_id", cfg.ChainID).
				Str("db_backend", string(cfg.DBBackend)).
				Msg("starting daicd")

			readDB, err := indexer.OpenFileDB(cfg.IndexerDBPath())
			if err != nil {
				return fmt.Errorf("failed to open indexer database: %w", err)
			}
			defer readDB.Close()

			readModel := indexer.NewStore(readDB.Client(), log)

			host, err := app.NewHost(cfg, log)
			if err != nil {
				return fmt.Errorf("failed to open ledger state: %w", err)
			}
			defer host.Close()

			if err := bootstrapNode(cmd.Context(), host, readModel, app.GenesisFilePath(cfg.NodeHome), log); err != nil {
				return err
			}
			host.AddSink(readModel)
			host.AddSink(metrics.NewLedgerSink())

			server := api.NewServer(log, cfg.QueryServerPort, host, readModel, cfg.MetricsEnabled)
			if err := server.Start(); err != nil {
				return fmt.Errorf("failed to start query server: %w", err)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			<-ctx.Done()

			log.Info().Msg("shutting down")
			if err := server.Stop(); err != nil {
				log.Error().Err(err).Msg("failed to stop query server")
			}
			return nil
		},
	}
}

func exportCmd(v *viper.Viper) *cobra.Command {
	var outputDocument string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the committed ledger state as genesis JSON (node must be stopped)",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadNodeConfig(v)
			if err != nil {
				return err
			}

			log := logger.New(cfg.LogLevel, cfg.LogFormat, cfg.LogSampler)
			host, err := app.NewHost(cfg, log)
			if err != nil {
				return fmt.Errorf("failed to open ledger state: %w", err)
			}
			defer host.Close()

			genesis, err := host.ExportGenesis()
			if err != nil {
				return err
			}

			if outputDocument != "" {
				return app.SaveGenesisFile(genesis, outputDocument)
			}

			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			return encoder.Encode(genesis)
		},
	}

	cmd.Flags().StringVar(&outputDocument, "output-document", "", "Write the exported genesis to this file instead of stdout")
	return cmd
}
