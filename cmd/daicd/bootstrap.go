package main

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/daic-network/daic-node/app"
	"github.com/daic-network/daic-node/indexer"
	"github.com/daic-network/daic-node/metrics"
)

// bootstrapNode aligns the read model and the ledger gauges with committed
// ledger state, applying genesis first when the ledger is empty. A read model
// ahead of the ledger is cleared; one behind it is seeded with a proposal
// snapshot. Sinks must be attached to host only after it returns.
func bootstrapNode(ctx context.Context, host *app.Host, readModel *indexer.Store, genesisPath string, log zerolog.Logger) error {
	indexed, err := readModel.LastHeight()
	if err != nil {
		return err
	}
	if indexed > host.Height() {
		log.Warn().
			Int64("indexed_height", indexed).
			Int64("ledger_height", host.Height()).
			Msg("read model is ahead of the ledger; rebuilding it")
		if err := readModel.Reset(ctx); err != nil {
			return fmt.Errorf("failed to reset read model: %w", err)
		}
		indexed = 0
	}

	if !host.IsInitialized() {
		genesis, err := app.LoadGenesisFile(genesisPath)
		if err != nil {
			return err
		}
		if err := host.InitGenesis(genesis); err != nil {
			return fmt.Errorf("failed to apply genesis: %w", err)
		}
	}

	height := host.Height()
	if indexed < height {
		proposals, err := host.GetAllProposals()
		if err != nil {
			return err
		}
		if indexed > 0 {
			log.Warn().
				Int64("indexed_height", indexed).
				Int64("ledger_height", height).
				Msg("read model is behind the ledger; contributions of the missing blocks will not be listed")
		}
		if err := readModel.SeedProposals(ctx, height, proposals); err != nil {
			return fmt.Errorf("failed to seed read model: %w", err)
		}
		log.Info().Int64("height", height).Int("proposals", len(proposals)).Msg("read model seeded from ledger state")
	}

	pool, err := host.GetMatchingPool()
	if err != nil {
		return err
	}
	count, err := host.GetProposalCount()
	if err != nil {
		return err
	}
	metrics.SeedLedgerGauges(height, pool, count)
	return nil
}
